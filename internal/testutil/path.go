package testutil

import (
	"path/filepath"
	"runtime"
)

// Abs joins parts into a platform-appropriate absolute path. Use this
// in tests instead of hardcoded paths like "/tmp/file.txt" so the
// expectations hold on Windows.
//
// On Unix, Abs("tmp", "file.txt") returns "/tmp/file.txt".
// On Windows it returns "C:\\tmp\\file.txt" (C: alone is relative).
func Abs(parts ...string) string {
	if runtime.GOOS == "windows" {
		return `C:\` + filepath.Join(parts...)
	}
	return string(filepath.Separator) + filepath.Join(parts...)
}
