package internal

import "sync/atomic"

var lastFontKey atomic.Uint64

// Returns a process-unique key for a font, to be used with the
// [DefaultCache]. Keys are never zero.
func NewFontKey() uint64 {
	return lastFontKey.Add(1)
}
