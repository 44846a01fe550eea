// Package cache exposes the configuration of the glyph mask cache
// shared by all the font backends in mtxt/font.
//
// Layout operations only need advances and never touch this cache.
// Masks are only rasterized and cached when drawing (e.g. through
// mtxt/matrix), so most programs can ignore this package entirely.
package cache

import "github.com/tinne26/mtxt/internal"

// Default cache size value, in bytes.
const DefaultSize = 8*1024*1024 // 8 MiB

// cache size constant verification
func init() {
	if DefaultSize != internal.DefaultCacheSize {
		panic("DefaultSize != internal.DefaultCacheSize")
	}
}

// Returns the current cache capacity. It's either [DefaultSize] or
// the last value set by the user through [SetCapacity]().
func GetCapacity() int {
	return internal.DefaultCache.Capacity()
}

// Sets the maximum cache size, in bytes. The default value is [DefaultSize].
// Values above 1GiB are clamped. Setting the capacity to zero clears the
// cache and disables it until a positive capacity is set again.
//
// Bitmap glyph masks for LED-matrix sized fonts are tiny (a few dozen
// bytes each), so the default is generous for almost any use-case.
func SetCapacity(bytes int) {
	internal.DefaultCache.SetCapacity(bytes)
}

// Returns the number of bytes currently attributed to the cached masks.
// Each mask counts as its pixel count plus a fixed overhead.
func GetCurrentSize() int {
	return internal.DefaultCache.CurrentSize()
}

// Returns the maximum number of bytes that the cache has been filled
// with at any point of its life.
func GetPeakSize() int {
	return int(internal.DefaultCache.PeakSize())
}

// Returns the number of glyph masks currently cached.
func GetNumEntries() int {
	return internal.DefaultCache.NumEntries()
}
