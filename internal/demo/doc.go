// Package demo hosts the grouped picker in a small Bubble Tea program used to
// preview it.
//
// The demo model owns the state the picker treats as external: the forest,
// the current selection and the deselect list. It hands the latest values to
// the picker whenever they change and receives the user's choice back as a
// picker.SelectedMsg, which is the only way the selection is mutated from
// inside the program.
//
// Messages are routed through a typed handler registry in the same way for
// key presses, window resizes, picker results and tree reloads. Reloads come
// from a source.Watcher; waitForSourceEvent blocks on its channel inside a
// tea.Cmd so the forest is only ever swapped on the update loop.
package demo
