package pathdsl

import (
	"bytes"
	"os"
	"path/filepath"
	"unsafe"
)

// Separator is the platform path separator byte.
const Separator = os.PathSeparator

// Sep is the platform path separator as a string, for joining literals.
const Sep = string(os.PathSeparator)

// Buffer is a mutable path buffer. It accumulates segments with
// separator-aware appends and converts to a Path without copying.
//
// A Buffer is owned by a single user at a time; it is not safe for
// concurrent mutation. After calling Path, the buffer shares storage
// with the returned value and must not be mutated again.
type Buffer struct {
	buf []byte
}

// NewBuffer returns an empty path buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferString returns a buffer initialized with a copy of s.
func NewBufferString(s string) *Buffer {
	return &Buffer{buf: append([]byte(nil), s...)}
}

// NewBufferPath returns a buffer initialized with a copy of p.
func NewBufferPath(p Path) *Buffer {
	return NewBufferString(string(p))
}

// NewBufferBytes returns a buffer that adopts b as its storage.
// The caller must not use b afterwards.
func NewBufferBytes(b []byte) *Buffer {
	return &Buffer{buf: b}
}

// Push appends one segment. A separator byte is written first unless
// the buffer is empty or already ends in a separator. An absolute
// segment replaces the buffer contents entirely. An empty segment on a
// non-empty buffer leaves a trailing separator.
func (b *Buffer) Push(seg string) {
	if filepath.IsAbs(seg) {
		b.buf = append(b.buf[:0], seg...)
		return
	}
	if n := len(b.buf); n > 0 && b.buf[n-1] != Separator {
		b.buf = append(b.buf, Separator)
	}
	b.buf = append(b.buf, seg...)
}

// PushPath appends a path value as one segment.
func (b *Buffer) PushPath(p Path) {
	b.Push(string(p))
}

// PushBuffer appends another buffer's contents as one segment.
// The other buffer is not modified.
func (b *Buffer) PushBuffer(other *Buffer) {
	b.Push(other.view())
}

// Path returns the accumulated path. The returned value shares the
// buffer's storage; the buffer must not be pushed to or reset while
// the value is in use.
func (b *Buffer) Path() Path {
	return Path(b.view())
}

// String returns a copy of the accumulated path.
func (b *Buffer) String() string {
	return string(b.buf)
}

// view reinterprets the backing bytes as a string without copying.
// Safe as long as the bytes are not mutated afterwards.
func (b *Buffer) view() string {
	if len(b.buf) == 0 {
		return ""
	}
	return unsafe.String(&b.buf[0], len(b.buf))
}

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Cap returns the capacity of the underlying storage.
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

// Reset truncates the buffer to empty, retaining storage.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}

// Grow ensures capacity for at least n more bytes.
func (b *Buffer) Grow(n int) {
	if cap(b.buf)-len(b.buf) < n {
		grown := make([]byte, len(b.buf), 2*cap(b.buf)+n)
		copy(grown, b.buf)
		b.buf = grown
	}
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{buf: append([]byte(nil), b.buf...)}
}

// Compare orders two buffers byte-wise, like bytes.Compare.
func (b *Buffer) Compare(other *Buffer) int {
	return bytes.Compare(b.buf, other.buf)
}

// Equal reports whether two buffers hold identical contents.
func (b *Buffer) Equal(other *Buffer) bool {
	return bytes.Equal(b.buf, other.buf)
}

// EqualPath reports whether the buffer's contents equal p.
func (b *Buffer) EqualPath(p Path) bool {
	return string(b.buf) == string(p)
}

// detach takes ownership of the buffer's storage, leaving it empty.
func (b *Buffer) detach() []byte {
	taken := b.buf
	b.buf = nil
	return taken
}
