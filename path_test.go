package pathdsl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prettymuchbryce/pathdsl/internal/testutil"
)

func TestPathJoin(t *testing.T) {
	abs := testutil.Abs("tmp")

	tests := []struct {
		name  string
		base  Path
		elems []string
		want  Path
	}{
		{
			name:  "empty base",
			base:  "",
			elems: []string{"a", "b"},
			want:  Path("a" + Sep + "b"),
		},
		{
			name:  "nonempty base",
			base:  "a",
			elems: []string{"b", "c"},
			want:  Path("a" + Sep + "b" + Sep + "c"),
		},
		{
			name:  "no elements returns base",
			base:  "a",
			elems: nil,
			want:  "a",
		},
		{
			name:  "empty element adds trailing separator",
			base:  "a",
			elems: []string{""},
			want:  Path("a" + Sep),
		},
		{
			name:  "absolute element replaces",
			base:  "a",
			elems: []string{abs},
			want:  Path(abs),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.base.Join(tt.elems...)
			if got != tt.want {
				t.Errorf("%q.Join(%q) = %q, want %q", tt.base, tt.elems, got, tt.want)
			}
		})
	}
}

func TestPathJoinPath(t *testing.T) {
	base := Path("srv")
	got := base.JoinPath(Path("media"), Path("inbox"))
	want := Path("srv" + Sep + "media" + Sep + "inbox")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPathBufferRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		path Path
	}{
		{"empty", ""},
		{"single segment", "a"},
		{"multiple segments", Path("a" + Sep + "b" + Sep + "c.txt")},
		{"trailing separator", Path("a" + Sep)},
		{"absolute", Path(testutil.Abs("tmp"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.path.Buffer().Path()
			if got != tt.path {
				t.Errorf("round trip of %q gave %q", tt.path, got)
			}
		})
	}
}

func TestPathBufferEquality(t *testing.T) {
	p := Path("a" + Sep + "b")
	q := Path("a" + Sep + "b")
	b := p.Buffer()

	if p != p || p != q || q != p {
		t.Error("Path equality is not reflexive and symmetric")
	}
	if !p.EqualBuffer(b) {
		t.Error("path does not equal its own buffer")
	}
	if !b.EqualPath(p) {
		t.Error("buffer does not equal its source path")
	}
	if Path("other").EqualBuffer(b) || b.EqualPath(Path("other")) {
		t.Error("unequal values compare equal across types")
	}
}

func TestPathCompare(t *testing.T) {
	if got := Path("a").Compare(Path("b")); got != -1 {
		t.Errorf("Compare(a, b) = %d, want -1", got)
	}
	if got := Path("a").Compare(Path("a")); got != 0 {
		t.Errorf("Compare(a, a) = %d, want 0", got)
	}
	if !(Path("a") < Path("b")) {
		t.Error("ordering via < disagrees with Compare")
	}
}

func TestPathIsAbs(t *testing.T) {
	if !Path(testutil.Abs("tmp")).IsAbs() {
		t.Errorf("%q should be absolute", testutil.Abs("tmp"))
	}
	if Path("relative").IsAbs() {
		t.Error("relative path reported absolute")
	}
}

func TestPathIsEmpty(t *testing.T) {
	if !Path("").IsEmpty() {
		t.Error("empty path not reported empty")
	}
	if Path("a").IsEmpty() {
		t.Error("nonempty path reported empty")
	}
}

func TestPathMatch(t *testing.T) {
	tests := []struct {
		name    string
		path    Path
		pattern string
		want    bool
		wantErr bool
	}{
		{
			name:    "exact match",
			path:    Join("dir1", "file.txt"),
			pattern: filepath.Join("dir1", "file.txt"),
			want:    true,
		},
		{
			name:    "single star",
			path:    Join("dir1", "file.txt"),
			pattern: filepath.Join("dir1", "*.txt"),
			want:    true,
		},
		{
			name:    "double star",
			path:    Join("dir1", "dir2", "file.txt"),
			pattern: filepath.Join("dir1", "**", "*.txt"),
			want:    true,
		},
		{
			name:    "no match",
			path:    Join("dir1", "file.txt"),
			pattern: filepath.Join("dir1", "*.log"),
			want:    false,
		},
		{
			name:    "bad pattern",
			path:    "file.txt",
			pattern: "[",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.path.Match(tt.pattern)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Match(%q) succeeded, want error", tt.pattern)
				}
				return
			}
			if err != nil {
				t.Fatalf("Match(%q): %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("%q.Match(%q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestPathExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot get home directory")
	}

	got := Path("~/dir1").ExpandUser()
	want := Path(filepath.Join(home, "dir1"))
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if p := Path("no" + Sep + "tilde").ExpandUser(); p != Path("no"+Sep+"tilde") {
		t.Errorf("path without tilde changed: %q", p)
	}
}
