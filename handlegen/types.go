package handlegen

// Type describes one handle type to generate. Name is the tag: a type
// named Texture generates TextureHandle and TextureHandleParts.
type Type struct {
	Name      string `toml:"name"`
	IndexBits uint   `toml:"index_bits"`
	CycleBits uint   `toml:"cycle_bits"`
	Doc       string `toml:"doc,omitempty"`
}

// Total returns the packed width of the type.
func (t Type) Total() uint {
	return t.IndexBits + t.CycleBits
}

// Wide reports whether the type packs into a word wider than uint64.
func (t Type) Wide() bool {
	return t.Total() > 64
}

// File is one generation unit: a target package and its handle types.
type File struct {
	Package string `toml:"package"`
	Types   []Type `toml:"type"`
}

func (f File) needsWideWords() bool {
	for _, t := range f.Types {
		if t.Wide() {
			return true
		}
	}
	return false
}
