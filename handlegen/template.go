package handlegen

import "text/template"

// narrowTmpl renders handle types whose packed word is a native uint. The
// typeModel pre-builds every type-dependent expression, so the template is
// plain splicing.
var narrowTmpl = template.Must(template.New("narrow").Parse(`
// {{.HandleType}} identifies a {{.Name}} resource slot: a {{.IndexBits}}-bit
// slot index and a {{.CycleBits}}-bit reuse cycle packed into a {{.Word}}.
{{- if .Doc}}
//
// {{.Doc}}
{{- end}}
//
// The zero value is the nil handle. Handles compare with ==; equal means
// same slot, same cycle.
type {{.HandleType}} struct {
	bits {{.Word}}
}

const (
	// {{.HandleType}}IndexBits is the width of the index field.
	{{.HandleType}}IndexBits = {{.IndexBits}}
	// {{.HandleType}}CycleBits is the width of the cycle field.
	{{.HandleType}}CycleBits = {{.CycleBits}}

	// Max{{.HandleType}}Index is the largest representable slot index.
	Max{{.HandleType}}Index = 1<<{{.HandleType}}IndexBits - 1
	// Max{{.HandleType}}Cycle is the largest representable cycle.
	Max{{.HandleType}}Cycle = 1<<{{.HandleType}}CycleBits - 1
	// Max{{.HandleType}}Count is the number of usable slots; index 0 is
	// reserved for the nil handle.
	Max{{.HandleType}}Count = Max{{.HandleType}}Index
)

// Nil{{.HandleType}} is the "no {{.Name}}" handle, the all-zero pattern.
var Nil{{.HandleType}} = {{.HandleType}}{}

// Pack{{.HandleType}} builds a handle from a slot index and a reuse cycle.
// Both arguments are masked to their field widths.
func Pack{{.HandleType}}(index {{.IndexPart}}, cycle {{.CyclePart}}) {{.HandleType}} {
	return {{.HandleType}}{bits: ({{.Word}}(cycle)&Max{{.HandleType}}Cycle)<<{{.HandleType}}IndexBits | {{.Word}}(index)&Max{{.HandleType}}Index}
}

// {{.HandleType}}FromBits reconstitutes a handle from its packed bits.
func {{.HandleType}}FromBits(bits {{.Word}}) {{.HandleType}} {
	return {{.HandleType}}{bits: bits}
}

// Bits returns the packed representation.
func (h {{.HandleType}}) Bits() {{.Word}} {
	return h.bits
}

// IsNil reports whether h is the nil handle.
func (h {{.HandleType}}) IsNil() bool {
	return h.bits == 0
}

// Index returns the slot index carried by h.
func (h {{.HandleType}}) Index() {{.IndexPart}} {
	return {{.IndexPart}}(h.bits & Max{{.HandleType}}Index)
}

// Cycle returns the reuse cycle carried by h.
func (h {{.HandleType}}) Cycle() {{.CyclePart}} {
	return {{.CyclePart}}(h.bits >> {{.HandleType}}IndexBits)
}

// String renders h as {{.Name}}[index#cycle].
func (h {{.HandleType}}) String() string {
	return fmt.Sprintf("{{.Name}}[%d#%d]", h.Index(), h.Cycle())
}

// {{.PartsType}} is the addressable form of {{.HandleType}}: index and
// cycle in separate fields, each the smallest unsigned type that fits.
type {{.PartsType}} struct {
	Index {{.IndexPart}}
	Cycle {{.CyclePart}}
}

// Addressable unpacks h into separately addressable fields.
func (h {{.HandleType}}) Addressable() {{.PartsType}} {
	return {{.PartsType}}{Index: h.Index(), Cycle: h.Cycle()}
}

// Handle packs p back into compact form, masking fields to their widths.
func (p {{.PartsType}}) Handle() {{.HandleType}} {
	return Pack{{.HandleType}}(p.Index, p.Cycle)
}
`))

// wideTmpl renders handle types packed into handle.U128 or handle.U256.
// Field masks become package vars and the bit arithmetic goes through the
// word's methods.
var wideTmpl = template.Must(template.New("wide").Parse(`
// {{.HandleType}} identifies a {{.Name}} resource slot: a {{.IndexBits}}-bit
// slot index and a {{.CycleBits}}-bit reuse cycle packed into a {{.Word}}.
{{- if .Doc}}
//
// {{.Doc}}
{{- end}}
//
// The zero value is the nil handle. Handles compare with ==; equal means
// same slot, same cycle.
type {{.HandleType}} struct {
	bits {{.Word}}
}

const (
	// {{.HandleType}}IndexBits is the width of the index field.
	{{.HandleType}}IndexBits = {{.IndexBits}}
	// {{.HandleType}}CycleBits is the width of the cycle field.
	{{.HandleType}}CycleBits = {{.CycleBits}}
)

var (
	// Nil{{.HandleType}} is the "no {{.Name}}" handle, the all-zero pattern.
	Nil{{.HandleType}} = {{.HandleType}}{}

	// Max{{.HandleType}}Index is the largest representable slot index.
	{{.MaxIndexDecl}}

	// Max{{.HandleType}}Cycle is the largest representable cycle.
	{{.MaxCycleDecl}}

	// Max{{.HandleType}}Count is the number of usable slots; index 0 is
	// reserved for the nil handle.
	Max{{.HandleType}}Count = Max{{.HandleType}}Index

	{{.MaskVar}} = {{.OnesFunc}}({{.HandleType}}IndexBits) // index-field mask
)

// Pack{{.HandleType}} builds a handle from a slot index and a reuse cycle.
// Both arguments are masked to their field widths.
func Pack{{.HandleType}}(index {{.IndexPart}}, cycle {{.CyclePart}}) {{.HandleType}} {
	return {{.HandleType}}{bits: {{.PackExpr}}}
}

// {{.HandleType}}FromBits reconstitutes a handle from its packed bits.
func {{.HandleType}}FromBits(bits {{.Word}}) {{.HandleType}} {
	return {{.HandleType}}{bits: bits}
}

// Bits returns the packed representation.
func (h {{.HandleType}}) Bits() {{.Word}} {
	return h.bits
}

// IsNil reports whether h is the nil handle.
func (h {{.HandleType}}) IsNil() bool {
	return h.bits.IsZero()
}

// Index returns the slot index carried by h.
func (h {{.HandleType}}) Index() {{.IndexPart}} {
	return {{.ExtractIndex}}
}

// Cycle returns the reuse cycle carried by h.
func (h {{.HandleType}}) Cycle() {{.CyclePart}} {
	return {{.ExtractCycle}}
}

// String renders h as {{.Name}}[index#cycle].
func (h {{.HandleType}}) String() string {
	return fmt.Sprintf("{{.Name}}[%v#%v]", h.Index(), h.Cycle())
}

// {{.PartsType}} is the addressable form of {{.HandleType}}: index and
// cycle in separate fields, each the smallest unsigned type that fits.
type {{.PartsType}} struct {
	Index {{.IndexPart}}
	Cycle {{.CyclePart}}
}

// Addressable unpacks h into separately addressable fields.
func (h {{.HandleType}}) Addressable() {{.PartsType}} {
	return {{.PartsType}}{Index: h.Index(), Cycle: h.Cycle()}
}

// Handle packs p back into compact form, masking fields to their widths.
func (p {{.PartsType}}) Handle() {{.HandleType}} {
	return Pack{{.HandleType}}(p.Index, p.Cycle)
}
`))
