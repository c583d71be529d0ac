package picker

// popup tracks the open list's cursor and viewport. The cursor only rests on
// enabled rows; -1 means there is nothing to rest on.
type popup struct {
	open   bool
	cursor int
	offset int
}

// moveStep moves to the next enabled row in the given direction, wrapping at
// either end.
func (p *popup) moveStep(rows []Row, dir int) bool {
	n := len(rows)
	if n == 0 || dir == 0 {
		return false
	}
	start := p.cursor
	if start < 0 || start >= n {
		start = -1
		if dir < 0 {
			start = n
		}
	}
	for i := 1; i <= n; i++ {
		idx := ((start+dir*i)%n + n) % n
		if rows[idx].Enabled {
			old := p.cursor
			p.cursor = idx
			return old != idx
		}
	}
	return false
}

// movePage jumps by a page and settles on the nearest enabled row, preferring
// the direction of travel.
func (p *popup) movePage(rows []Row, maxVisible, dir int) bool {
	n := len(rows)
	if n == 0 {
		return false
	}
	size := pageSize(n, maxVisible)
	target := p.cursor
	if target < 0 {
		target = 0
	}
	target += dir * size
	if target < 0 {
		target = 0
	}
	if target >= n {
		target = n - 1
	}
	idx := nearestEnabled(rows, target, dir)
	if idx < 0 {
		return false
	}
	old := p.cursor
	p.cursor = idx
	return old != idx
}

func (p *popup) moveHome(rows []Row) bool {
	idx := nearestEnabled(rows, 0, 1)
	if idx < 0 {
		return false
	}
	old := p.cursor
	p.cursor = idx
	return old != idx
}

func (p *popup) moveEnd(rows []Row) bool {
	idx := nearestEnabled(rows, len(rows)-1, -1)
	if idx < 0 {
		return false
	}
	old := p.cursor
	p.cursor = idx
	return old != idx
}

func nearestEnabled(rows []Row, from, dir int) int {
	if dir == 0 {
		dir = 1
	}
	for i := from; i >= 0 && i < len(rows); i += dir {
		if rows[i].Enabled {
			return i
		}
	}
	for i := from - dir; i >= 0 && i < len(rows); i -= dir {
		if rows[i].Enabled {
			return i
		}
	}
	return -1
}

func pageSize(total, maxVisible int) int {
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// ensureVisible adjusts the viewport offset so the cursor stays on screen.
func (p *popup) ensureVisible(total, maxVisible int) {
	if total == 0 || maxVisible <= 0 {
		p.offset = 0
		return
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.offset > maxOffset {
		p.offset = maxOffset
	}
	if p.offset < 0 {
		p.offset = 0
	}
	if p.cursor < 0 {
		return
	}
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if upper := p.offset + maxVisible - 1; p.cursor > upper {
		p.offset = p.cursor - maxVisible + 1
		if p.offset > maxOffset {
			p.offset = maxOffset
		}
	}
}
