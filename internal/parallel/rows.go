package parallel

// Rows splits the row interval [0, rows) into contiguous bands and calls fn
// once per band, distributing the calls over p. It returns when every band
// is done. Bands never overlap, so fn may write per-row output without
// locking.
func Rows(p *WorkerPool, rows int, fn func(lo, hi int)) {
	if rows <= 0 {
		return
	}
	n := min(p.Workers()*2, rows)
	if n <= 1 {
		fn(0, rows)
		return
	}

	work := make([]func(), 0, n)
	for i := 0; i < n; i++ {
		lo, hi := i*rows/n, (i+1)*rows/n
		if lo == hi {
			continue
		}
		work = append(work, func() { fn(lo, hi) })
	}
	p.ExecuteAll(work)
}
