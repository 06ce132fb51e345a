package handlegen

import (
	"fmt"
	"go/token"
	"unicode"
	"unicode/utf8"

	"go.uber.org/multierr"

	"github.com/giusdp/gamekit/errors"
)

// allowedWidths are the packed-word sizes a handle type may total.
var allowedWidths = [...]uint{8, 16, 32, 64, 128, 256}

func widthAllowed(total uint) bool {
	for _, w := range allowedWidths {
		if total == w {
			return true
		}
	}
	return false
}

// Validate checks one handle type description. All problems are reported,
// not just the first.
func (t Type) Validate() error {
	var errs error
	if !isExportedIdentifier(t.Name) {
		errs = multierr.Append(errs, errors.InvalidIdentifier(t.Name))
	}
	if t.IndexBits == 0 {
		errs = multierr.Append(errs, zeroBits(t.Name, "index"))
	}
	if t.CycleBits == 0 {
		errs = multierr.Append(errs, zeroBits(t.Name, "cycle"))
	}
	if t.IndexBits > 0 && t.CycleBits > 0 && !widthAllowed(t.Total()) {
		err := errors.UnsupportedWidth(t.Total())
		err.Type = t.Name
		errs = multierr.Append(errs, err)
	}
	return errs
}

// Validate checks the whole generation unit, collecting every problem so a
// manifest author sees them all in one run.
func (f File) Validate() error {
	var errs error
	if !token.IsIdentifier(f.Package) {
		errs = multierr.Append(errs, errors.InvalidInput(errors.PhaseConfig,
			fmt.Sprintf("package name %q is not a valid Go identifier", f.Package)))
	}
	if len(f.Types) == 0 {
		errs = multierr.Append(errs, errors.InvalidInput(errors.PhaseConfig, "no handle types declared"))
	}

	seen := make(map[string]bool, len(f.Types))
	for _, t := range f.Types {
		errs = multierr.Append(errs, t.Validate())
		if seen[t.Name] {
			errs = multierr.Append(errs, errors.DuplicateType(t.Name))
		}
		seen[t.Name] = true
	}
	return errs
}

func isExportedIdentifier(name string) bool {
	if !token.IsIdentifier(name) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

func zeroBits(typeName, field string) *errors.Error {
	err := errors.ZeroBits(errors.PhaseConfig, field)
	err.Type = typeName
	return err
}
