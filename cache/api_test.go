package cache

import "image"
import "testing"

import "github.com/tinne26/mtxt/internal"

func TestCapacity(t *testing.T) {
	defer SetCapacity(DefaultSize)

	if GetCapacity() != DefaultSize {
		t.Fatalf("expected default capacity %d, got %d", DefaultSize, GetCapacity())
	}

	key := internal.NewFontKey()
	internal.DefaultCache.SetGlyphMask(key, 'A', image.NewAlpha(image.Rect(0, 0, 4, 4)))
	if GetNumEntries() < 1 || GetCurrentSize() <= 0 || GetPeakSize() < GetCurrentSize() {
		t.Fatal("expected cache stats to reflect the stored mask")
	}

	SetCapacity(0)
	if GetNumEntries() != 0 || GetCurrentSize() != 0 {
		t.Fatal("expected zero capacity to clear the cache")
	}
	SetCapacity(DefaultSize)
	if GetCapacity() != DefaultSize {
		t.Fatal("expected capacity to be restored")
	}
}
