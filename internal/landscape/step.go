package landscape

import "golang.org/x/sync/errgroup"

// Step advances the landscape one generation. Every cell is evaluated against
// the current buffer and written to scratch; the buffers then swap roles.
// A step always runs to completion.
func (l *Landscape) Step() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.step()
}

func (l *Landscape) step() {
	if l.workers > 1 && l.size.H > 1 {
		l.passBanded(l.workers)
	} else {
		l.pass(0, l.size.H)
	}
	l.cur ^= 1
	l.gen++
}

// pass evaluates rows [y0, y1) in row-major order.
func (l *Landscape) pass(y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < l.size.W; x++ {
			l.evaluate(x, y)
		}
	}
}

// passBanded splits the rows into contiguous bands, one goroutine each.
// Bands write disjoint scratch cells and only read the current buffer, so the
// result matches the sequential pass byte for byte.
func (l *Landscape) passBanded(workers int) {
	h := l.size.H
	if workers > h {
		workers = h
	}
	rows := (h + workers - 1) / workers

	var eg errgroup.Group
	for y0 := 0; y0 < h; y0 += rows {
		y1 := min(y0+rows, h)
		eg.Go(func() error {
			l.pass(y0, y1)
			return nil
		})
	}
	_ = eg.Wait()
}
