package font

import "os"
import "path/filepath"
import "sort"
import "unicode"

// Returned by [LoadDir]() when no fonts could be loaded.
const ErrNoFonts errMsg = "no fonts were loaded"

// A registry of fonts indexed by name, typically loaded from
// a directory with [LoadDir]().
type Registry struct {
	fonts map[string]Font
	names []string // sorted
}

// Creates a registry with the given fonts. Fonts with repeated
// names replace the previous ones.
func NewRegistry(fonts ...Font) *Registry {
	registry := &Registry{ fonts: make(map[string]Font, len(fonts)) }
	for _, font := range fonts {
		registry.Add(font)
	}
	return registry
}

// Loads all the supported fonts in the given directory (not recursive).
// Files whose name starts with a digit are skipped, as these are
// typically size variants or auxiliary files.
//
// Fonts that fail to load are reported through onError (which can be
// nil) and skipped. If no font can be loaded at all, [ErrNoFonts] is
// returned.
func LoadDir(dir string, onError func(path string, err error)) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil { return nil, err }

	registry := NewRegistry()
	for _, entry := range entries {
		if entry.IsDir() { continue }
		name := entry.Name()
		if !IsSupported(name) { continue }
		if startsWithDigit(name) { continue }

		path := filepath.Join(dir, name)
		font, err := Load(path)
		if err != nil {
			if onError != nil { onError(path, err) }
			continue
		}
		registry.Add(font)
	}

	if registry.Len() == 0 { return nil, ErrNoFonts }
	return registry, nil
}

func startsWithDigit(name string) bool {
	for _, r := range name {
		return unicode.IsDigit(r)
	}
	return false
}

// Adds a font to the registry, replacing any font with the same name.
func (self *Registry) Add(font Font) {
	if font == nil { panic("nil font") }
	name := font.Name()
	if _, found := self.fonts[name]; !found {
		index := sort.SearchStrings(self.names, name)
		self.names = append(self.names, "")
		copy(self.names[index + 1 : ], self.names[index : ])
		self.names[index] = name
	}
	self.fonts[name] = font
}

// Returns the font with the given name, if present.
func (self *Registry) Get(name string) (Font, bool) {
	font, found := self.fonts[name]
	return font, found
}

// Returns the names of all fonts in the registry, sorted.
// The returned slice must not be modified.
func (self *Registry) Names() []string { return self.names }

// Returns the number of fonts in the registry.
func (self *Registry) Len() int { return len(self.names) }
