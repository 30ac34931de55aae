package landscape

// evaluate computes the next value of (x, y) under the active rule family.
func (l *Landscape) evaluate(x, y int) {
	if l.family == Elementary {
		l.evaluateElementary(x, y)
		return
	}
	l.evaluateLifeLike(x, y)
}

// evaluateLifeLike reads the survive field for live cells and the birth
// field for dead ones, indexed by the live neighbour count.
func (l *Landscape) evaluateLifeLike(x, y int) {
	n := l.countLiveNeighbors(x, y)
	bit := BirthBit(n)
	if l.get(x, y) != 0 {
		bit = SurviveBit(n)
	}
	var next uint8
	if l.rule&bit != 0 {
		next = 1
	}
	l.setNext(x, y, next)
}

// evaluateElementary looks up the (NW, N, NE) parent pattern in the low byte
// of the rule. The first row and both side columns are frozen.
func (l *Landscape) evaluateElementary(x, y int) {
	if y == 0 || x == 0 || x == l.size.W-1 {
		l.setNext(x, y, l.get(x, y))
		return
	}
	pattern := l.get(x-1, y-1)<<2 | l.get(x, y-1)<<1 | l.get(x+1, y-1)
	bit := (l.rule & elementaryMask) >> pattern
	l.setNext(x, y, uint8(bit&1))
}
