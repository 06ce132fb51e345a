package handlegen

import (
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/giusdp/gamekit/errors"
)

// LoadManifest reads and validates a TOML manifest describing a generation
// unit:
//
//	package = "gfx"
//
//	[[type]]
//	name = "Texture"
//	index_bits = 22
//	cycle_bits = 10
//
//	[[type]]
//	name = "Buffer"
//	index_bits = 12
//	cycle_bits = 4
func LoadManifest(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.New(errors.PhaseConfig, errors.KindIO).
			File(path).
			Cause(err).
			Detail("read manifest").
			Build()
	}

	f, err := ParseManifest(data)
	if err != nil {
		if e, ok := err.(*errors.Error); ok && e.File == "" {
			e.File = path
		}
		return File{}, err
	}

	Logger().Debug("loaded manifest",
		zap.String("path", path),
		zap.String("package", f.Package),
		zap.Int("types", len(f.Types)))
	return f, nil
}

// ParseManifest parses and validates manifest bytes held in memory.
func ParseManifest(data []byte) (File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, errors.ManifestFailed("", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}
