// Package pathdsl builds filesystem paths without the allocation churn
// of repeated filepath.Join calls.
//
// It provides three things: Path, an immutable string-backed path value;
// Buffer, a mutable path buffer with separator-aware append; and Build,
// a variadic constructor that folds tagged segment values into one
// finished path. Build merges adjacent literal segments into a single
// contiguous write and, when its first argument owns its storage
// (an Own or Bytes segment), adopts that storage instead of allocating
// a fresh buffer.
//
//	p := pathdsl.Build(
//		pathdsl.Lit("srv"),
//		pathdsl.Lit("media"),
//		pathdsl.Str(userDir),
//		pathdsl.Lit("inbox"),
//	)
//
// For the common all-literal case, Join("srv", "media", "inbox") is
// equivalent and shorter.
//
// The package performs no filesystem I/O and no path normalization:
// segments are appended exactly as given, with the platform separator
// inserted between them. Cleaning, parsing, and querying belong to
// path/filepath.
package pathdsl
