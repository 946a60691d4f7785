package pathdsl

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/prettymuchbryce/pathdsl/internal/pathutil"
)

// Path is an immutable filesystem path value. It is a plain string
// underneath, so conversions to and from string are free and two paths
// compare with ==.
//
// A Path carries no validation: it holds whatever segments were
// appended to it, separators included, exactly as given.
type Path string

// String returns the path as a string.
func (p Path) String() string {
	return string(p)
}

// Len returns the length of the path in bytes.
func (p Path) Len() int {
	return len(p)
}

// IsEmpty reports whether the path has no contents.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// IsAbs reports whether the path is absolute.
func (p Path) IsAbs() bool {
	return filepath.IsAbs(string(p))
}

// Join appends each element as one segment and returns the result.
// The receiver is not modified. Appending an absolute element replaces
// everything accumulated so far, mirroring Buffer.Push.
func (p Path) Join(elems ...string) Path {
	b := p.Buffer()
	b.Grow(joinedLen(elems))
	for _, e := range elems {
		b.Push(e)
	}
	return b.Path()
}

// JoinPath appends each path value as one segment and returns the
// result. The receiver is not modified.
func (p Path) JoinPath(ps ...Path) Path {
	b := p.Buffer()
	for _, q := range ps {
		b.PushPath(q)
	}
	return b.Path()
}

// Buffer converts the path to a mutable buffer. Go strings are
// immutable, so this copies once; the round trip back through
// Buffer.Path is free.
func (p Path) Buffer() *Buffer {
	return NewBufferString(string(p))
}

// Compare orders two paths byte-wise.
func (p Path) Compare(q Path) int {
	return strings.Compare(string(p), string(q))
}

// EqualBuffer reports whether the path equals the buffer's contents.
func (p Path) EqualBuffer(b *Buffer) bool {
	return b.EqualPath(p)
}

// Match reports whether the path matches a doublestar glob pattern,
// using the platform separator. Pattern errors are surfaced unchanged.
func (p Path) Match(pattern string) (bool, error) {
	return doublestar.PathMatch(pattern, string(p))
}

// ExpandUser expands a leading ~ to the user's home directory. Paths
// without a leading ~ are returned unchanged, as are paths for which
// the home directory cannot be determined.
func (p Path) ExpandUser() Path {
	return Path(pathutil.ExpandTilde(string(p)))
}

// joinedLen returns an upper bound on the bytes needed to append each
// element with a separator in front.
func joinedLen(elems []string) int {
	n := 0
	for _, e := range elems {
		n += len(e) + 1
	}
	return n
}
