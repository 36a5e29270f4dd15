// Package safename validates user-supplied filenames before they are joined
// with a base directory. It is a leaf package with no dependencies, used by
// the download handlers and the artifact store.
package safename

import (
	"path/filepath"
	"strings"
)

// allowed is the strict allow-list for cleaned filenames: ASCII letters,
// digits, dash, underscore, dot. Everything else is rejected.
const allowed = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_."

// Clean returns a filename that is safe to join with a known base directory,
// or the empty string to signal rejection.
//
// Two independent guards must both pass:
//  1. the canonical form of the input must already be a bare basename —
//     anything with directory components, separators, or dot-dot is rejected
//     rather than transformed;
//  2. every rune of the result must be on the allow-list.
//
// Invariant: any non-empty return value resolves inside the base directory
// it is joined with. It can never escape via "..", absolute paths, or
// separator characters.
func Clean(raw string) string {
	s := strings.Join(strings.Fields(raw), "_")
	if s == "" || s == "." || s == ".." {
		return ""
	}
	if strings.ContainsAny(s, `/\`) {
		return ""
	}
	if s != filepath.Base(filepath.Clean(s)) {
		return ""
	}
	for _, r := range s {
		if !strings.ContainsRune(allowed, r) {
			return ""
		}
	}
	return s
}
