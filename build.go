package pathdsl

// Build folds the segments into one finished path. Segments are
// appended left to right with Buffer.Push semantics, with two
// optimizations:
//
// Runs of consecutive Lit segments are folded into one contiguous
// write into pre-sized storage, content-equivalent to pushing a single
// separator-joined literal.
//
// If the first segment owns its storage (Own or Bytes), that storage
// is adopted as the result's initial buffer instead of allocating a
// fresh one and copying. A single owned segment is returned with no
// copy at all. Owned segments are consumed regardless of position.
//
// Build() with no arguments returns the empty path.
func Build(segs ...Segment) Path {
	if len(segs) == 0 {
		return ""
	}

	var b Buffer
	rest := segs
	switch first := segs[0]; first.kind {
	case segOwn:
		b.buf = first.buf.detach()
		rest = segs[1:]
	case segBytes:
		b.buf = first.raw
		rest = segs[1:]
	}
	b.Grow(segmentsLen(rest))

	for i := 0; i < len(rest); i++ {
		seg := rest[i]
		if seg.kind == segLit {
			// Consume the whole literal run in one go.
			for {
				b.Push(seg.text)
				if i+1 >= len(rest) || rest[i+1].kind != segLit {
					break
				}
				i++
				seg = rest[i]
			}
			continue
		}
		b.Push(seg.pathText())
		if seg.kind == segOwn {
			seg.buf.detach()
		}
	}
	return b.Path()
}

// Join builds a path from plain string segments. It is shorthand for
// Build with every argument wrapped in Lit.
func Join(elems ...string) Path {
	b := Buffer{}
	b.Grow(joinedLen(elems))
	for _, e := range elems {
		b.Push(e)
	}
	return b.Path()
}

// segmentsLen returns an upper bound on the bytes the segments will
// contribute, separators included.
func segmentsLen(segs []Segment) int {
	n := 0
	for _, s := range segs {
		n += s.size()
	}
	return n
}
