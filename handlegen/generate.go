package handlegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/giusdp/gamekit/errors"
)

// Generate renders the handle types of f as one Go source file. The output
// is deterministic (types appear in declaration order) and gofmt-clean. An
// invalid File fails here, before any code is written.
func Generate(f File) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by handlegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", f.Package)
	buf.WriteString("import (\n\t\"fmt\"\n")
	if f.needsWideWords() {
		buf.WriteString("\n\t\"github.com/giusdp/gamekit/handle\"\n")
	}
	buf.WriteString(")\n")

	for _, t := range f.Types {
		m := buildModel(t)
		tmpl := narrowTmpl
		if t.Wide() {
			tmpl = wideTmpl
		}
		if err := tmpl.Execute(&buf, m); err != nil {
			return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "render handle type "+t.Name)
		}
		Logger().Debug("rendered handle type",
			zap.String("name", t.Name),
			zap.Uint("index_bits", t.IndexBits),
			zap.Uint("cycle_bits", t.CycleBits),
			zap.String("word", m.Word))
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "format generated source")
	}
	return src, nil
}

// GenerateFile renders f and writes the result to path.
func GenerateFile(f File, path string) error {
	src, err := Generate(f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return errors.WriteFailed(errors.PhaseGenerate, path, err)
	}
	Logger().Info("wrote generated handles",
		zap.String("path", path),
		zap.Int("types", len(f.Types)),
		zap.Int("bytes", len(src)))
	return nil
}

// typeModel carries one handle type plus the expression strings the
// templates splice in. Building the expressions here keeps the templates
// free of type dispatch.
type typeModel struct {
	Name       string
	HandleType string
	PartsType  string
	Doc        string
	IndexBits  uint
	CycleBits  uint
	Word       string
	IndexPart  string
	CyclePart  string

	// Wide layouts only.
	MaxIndexDecl string
	MaxCycleDecl string
	MaskVar      string
	OnesFunc     string
	PackExpr     string
	ExtractIndex string
	ExtractCycle string
}

func buildModel(t Type) typeModel {
	m := typeModel{
		Name:       t.Name,
		HandleType: t.Name + "Handle",
		PartsType:  t.Name + "HandleParts",
		Doc:        t.Doc,
		IndexBits:  t.IndexBits,
		CycleBits:  t.CycleBits,
		Word:       wordFor(t.Total()),
		IndexPart:  partFor(t.IndexBits),
		CyclePart:  partFor(t.CycleBits),
	}
	if !t.Wide() {
		return m
	}

	indexBitsConst := m.HandleType + "IndexBits"
	maxIndex := "Max" + m.HandleType + "Index"
	maxCycle := "Max" + m.HandleType + "Cycle"

	m.MaskVar = unexport(m.HandleType) + "IndexMask"
	m.OnesFunc = "handle.OnesU128"
	if t.Total() == 256 {
		m.OnesFunc = "handle.OnesU256"
	}
	m.MaxIndexDecl = maxDecl(maxIndex, m.IndexPart, indexBitsConst)
	m.MaxCycleDecl = maxDecl(maxCycle, m.CyclePart, m.HandleType+"CycleBits")

	maskedCycle := fmt.Sprintf("cycle & %s", maxCycle)
	if isWideType(m.CyclePart) {
		maskedCycle = fmt.Sprintf("cycle.And(%s)", maxCycle)
	}
	m.PackExpr = fmt.Sprintf("%s.Shl(%s).Or(%s.And(%s))",
		widen(maskedCycle, m.CyclePart, m.Word), indexBitsConst,
		widen("index", m.IndexPart, m.Word), m.MaskVar)
	m.ExtractIndex = narrowTo(fmt.Sprintf("h.bits.And(%s)", m.MaskVar), m.IndexPart, m.Word)
	m.ExtractCycle = narrowTo(fmt.Sprintf("h.bits.Shr(%s)", indexBitsConst), m.CyclePart, m.Word)
	return m
}

// wordFor maps a total width to the Go type backing the packed handle.
func wordFor(total uint) string {
	switch total {
	case 8:
		return "uint8"
	case 16:
		return "uint16"
	case 32:
		return "uint32"
	case 64:
		return "uint64"
	case 128:
		return "handle.U128"
	default:
		return "handle.U256"
	}
}

// partFor maps a field width to the smallest standard unsigned type that
// holds it, for the addressable form.
func partFor(bits uint) string {
	switch {
	case bits <= 8:
		return "uint8"
	case bits <= 16:
		return "uint16"
	case bits <= 32:
		return "uint32"
	case bits <= 64:
		return "uint64"
	case bits <= 128:
		return "handle.U128"
	default:
		return "handle.U256"
	}
}

func isWideType(name string) bool {
	return name == "handle.U128" || name == "handle.U256"
}

// maxDecl builds the var declaration for a field's largest value, typed in
// the field's own domain.
func maxDecl(name, part, bitsConst string) string {
	switch part {
	case "handle.U128":
		return fmt.Sprintf("%s = handle.OnesU128(%s)", name, bitsConst)
	case "handle.U256":
		return fmt.Sprintf("%s = handle.OnesU256(%s)", name, bitsConst)
	default:
		return fmt.Sprintf("%s %s = 1<<%s - 1", name, part, bitsConst)
	}
}

// widen builds an expression converting a part-typed value to the word.
func widen(expr, part, word string) string {
	if part == word {
		return expr
	}
	if word == "handle.U128" {
		return fmt.Sprintf("handle.U128FromUint64(uint64(%s))", expr)
	}
	if part == "handle.U128" {
		return fmt.Sprintf("handle.U256FromU128(%s)", expr)
	}
	return fmt.Sprintf("handle.U256FromUint64(uint64(%s))", expr)
}

// narrowTo builds an expression converting a word-typed value to the part.
func narrowTo(expr, part, word string) string {
	if part == word {
		return expr
	}
	if part == "handle.U128" {
		return expr + ".U128()"
	}
	return fmt.Sprintf("%s(%s.Uint64())", part, expr)
}

func unexport(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}
