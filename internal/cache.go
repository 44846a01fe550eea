package internal

import "fmt"
import "image"
import "sync"

// Default cache size value, in bytes.
const DefaultCacheSize = 8*1024*1024 // 8 MiB

// Upper limit for cache capacities, in bytes.
const MaxCacheSize = 1*1024*1024*1024 // 1 GiB

// Fixed overhead that we attribute to each cached mask, in bytes.
const constMaskSizeFactor = 56

// Package level cache shared by all font backends. Masks are keyed by
// font key and code point, so different fonts never collide as long as
// they get their keys from [NewFontKey]().
var DefaultCache *Cache = NewCache(DefaultCacheSize)

const noEntry32 uint32 = 0xFFFF_FFFF

type cacheKey struct {
	fontKey uint64
	codePoint rune
}

type cachedMaskEntry struct {
	key cacheKey
	mask *image.Alpha // nil entries are allowed (glyphs without pixels)
	byteSize uint32
	prev uint32 // towards lru. noEntry32 if none. also links free entries
	next uint32 // towards mru. noEntry32 if none
}

// An LRU cache for glyph masks. Entries live in a slice and are linked
// by index, with freed slots being reused before the slice grows.
//
// Safe for concurrent use.
type Cache struct {
	masksMap map[cacheKey]uint32
	entries []cachedMaskEntry
	mruIndex uint32
	lruIndex uint32
	nextFreeIndex uint32

	mutex sync.RWMutex
	capacity uint64
	currentSize uint64
	peakSize uint64 // (max ever size)
}

func NewCache(capacity int) *Cache {
	if capacity < 0 { panic("can't create cache with negative capacity") }
	if capacity > MaxCacheSize {
		capacity = MaxCacheSize
		fmt.Print("[mtxt.cache] Excessive cache capacity requested, limited to 1GiB\n")
	}
	return &Cache{
		capacity: uint64(capacity),
		masksMap: make(map[cacheKey]uint32, 64),
		entries: make([]cachedMaskEntry, 0, 64),
		mruIndex: noEntry32,
		lruIndex: noEntry32,
		nextFreeIndex: noEntry32,
	}
}

// Returns the approximate number of bytes that a mask takes
// in the cache.
func MaskByteSize(mask *image.Alpha) uint32 {
	if mask == nil { return constMaskSizeFactor }
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	return uint32(w*h) + constMaskSizeFactor
}

func (self *Cache) Capacity() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return int(self.capacity)
}

// Sets the cache capacity, evicting entries if necessary. Setting
// the capacity to zero clears the cache.
func (self *Cache) SetCapacity(bytes int) {
	if bytes < 0 { panic("can't cache.SetCapacity(bytes) with bytes < 0") }
	if bytes > MaxCacheSize { bytes = MaxCacheSize }
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if bytes == 0 {
		clear(self.masksMap)
		self.entries = self.entries[ : 0]
		self.mruIndex, self.lruIndex = noEntry32, noEntry32
		self.nextFreeIndex = noEntry32
		self.currentSize = 0
	} else {
		for self.currentSize > uint64(bytes) {
			self.removeOldestEntry()
		}
	}
	self.capacity = uint64(bytes)
}

func (self *Cache) CurrentSize() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return int(self.currentSize)
}

func (self *Cache) PeakSize() uint64 {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.peakSize
}

// Returns the number of cached masks currently in the cache.
func (self *Cache) NumEntries() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.masksMap)
}

// Returns the cached mask for the given font and code point, if any.
// Lookups don't refresh the entry's recency, so the policy is closer
// to FIFO for entries that are set once and read many times. Glyph
// masks are only set once per eviction, which makes this good enough.
func (self *Cache) GetGlyphMask(fontKey uint64, codePoint rune) (*image.Alpha, bool) {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	index, found := self.masksMap[cacheKey{fontKey, codePoint}]
	if !found { return nil, false }
	return self.entries[index].mask, true
}

// Stores the mask for the given font and code point. Masks bigger
// than the cache capacity are silently dropped.
func (self *Cache) SetGlyphMask(fontKey uint64, codePoint rune, mask *image.Alpha) {
	key := cacheKey{fontKey, codePoint}
	maskSize := MaskByteSize(mask)

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if uint64(maskSize) > self.capacity { return }

	// replace existing entry, if any
	if index, found := self.masksMap[key]; found {
		self.unlink(index)
		self.release(index)
	}

	// ensure free space
	for self.currentSize + uint64(maskSize) > self.capacity {
		self.removeOldestEntry()
	}

	// store new entry as mru
	var index uint32
	entry := cachedMaskEntry{ key: key, mask: mask, byteSize: maskSize, prev: noEntry32, next: noEntry32 }
	if self.nextFreeIndex == noEntry32 {
		index = uint32(len(self.entries))
		self.entries = append(self.entries, entry)
	} else {
		index = self.nextFreeIndex
		self.nextFreeIndex = self.entries[index].prev
		self.entries[index] = entry
	}
	self.masksMap[key] = index
	self.currentSize += uint64(maskSize)
	self.linkAsMRU(index)

	// update peak size if necessary
	if self.currentSize > self.peakSize {
		self.peakSize = self.currentSize
	}
}

// --- internal helpers (all must be called with the cache locked) ---

func (self *Cache) linkAsMRU(index uint32) {
	entry := &self.entries[index]
	entry.prev = self.mruIndex
	entry.next = noEntry32
	if self.mruIndex != noEntry32 {
		self.entries[self.mruIndex].next = index
	}
	self.mruIndex = index
	if self.lruIndex == noEntry32 { self.lruIndex = index }
}

func (self *Cache) unlink(index uint32) {
	entry := &self.entries[index]
	if entry.prev != noEntry32 {
		self.entries[entry.prev].next = entry.next
	} else {
		self.lruIndex = entry.next
	}
	if entry.next != noEntry32 {
		self.entries[entry.next].prev = entry.prev
	} else {
		self.mruIndex = entry.prev
	}
}

// Precondition: the entry has already been unlinked.
func (self *Cache) release(index uint32) {
	entry := &self.entries[index]
	delete(self.masksMap, entry.key)
	self.currentSize -= uint64(entry.byteSize)
	entry.mask = nil // allow mask to be GC'd
	entry.byteSize = 0
	entry.next = noEntry32
	entry.prev = self.nextFreeIndex
	self.nextFreeIndex = index
}

// Precondition: the cache is not empty.
func (self *Cache) removeOldestEntry() {
	index := self.lruIndex
	if index == noEntry32 { panic("broken code") } // discretionary safety check
	self.unlink(index)
	self.release(index)
}
