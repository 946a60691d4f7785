package pathdsl

import "unsafe"

type segmentKind uint8

const (
	segLit segmentKind = iota
	segStr
	segPath
	segOwn
	segBytes
)

// Segment is one argument to Build: a unit of path text plus how Build
// may treat its storage. Construct segments with Lit, Str, Value, Own,
// or Bytes.
type Segment struct {
	kind segmentKind
	text string
	buf  *Buffer
	raw  []byte
}

// Lit wraps literal text known at the call site. Consecutive Lit
// segments are merged into a single contiguous write.
func Lit(s string) Segment {
	return Segment{kind: segLit, text: s}
}

// Str wraps borrowed text. The string is appended and never merged or
// adopted; the caller keeps it.
func Str(s string) Segment {
	return Segment{kind: segStr, text: s}
}

// Value wraps a path value to append as one segment.
func Value(p Path) Segment {
	return Segment{kind: segPath, text: string(p)}
}

// Own transfers a buffer into Build. In first position its storage is
// adopted as the result's initial storage; otherwise its contents are
// appended. Either way the buffer is consumed: Build detaches it and
// the caller sees it empty afterwards.
func Own(b *Buffer) Segment {
	return Segment{kind: segOwn, buf: b}
}

// Bytes transfers raw storage into Build. In first position the slice
// is adopted as the result's initial storage; otherwise its contents
// are appended. The caller must not use the slice afterwards.
func Bytes(b []byte) Segment {
	return Segment{kind: segBytes, raw: b}
}

// pathText returns the segment's contents as a string view. For Own
// and Bytes this aliases the underlying storage without copying.
func (s Segment) pathText() string {
	switch s.kind {
	case segOwn:
		return s.buf.view()
	case segBytes:
		if len(s.raw) == 0 {
			return ""
		}
		return unsafe.String(&s.raw[0], len(s.raw))
	default:
		return s.text
	}
}

// size returns an upper bound on the bytes this segment contributes,
// separator included.
func (s Segment) size() int {
	switch s.kind {
	case segOwn:
		return s.buf.Len() + 1
	case segBytes:
		return len(s.raw) + 1
	default:
		return len(s.text) + 1
	}
}
