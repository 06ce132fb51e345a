package handle

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"strings"
	"testing"
)

func TestTagTypesAreDistinct(t *testing.T) {
	tex := reflect.TypeOf(Handle[uint32, Texture]{})
	buf := reflect.TypeOf(Handle[uint32, Buffer]{})

	if tex == buf {
		t.Error("Handle[uint32, Texture] and Handle[uint32, Buffer] should be distinct types")
	}
	if tex.Size() != buf.Size() {
		t.Error("distinct tags should not change the layout")
	}
}

// A cross-tag assignment cannot appear in compiled test code, so this test
// type-checks a snippet with the same shape as Handle and expects the
// checker to reject it.
func TestCrossTagAssignmentFailsTypeCheck(t *testing.T) {
	const bad = `package probe

type word interface{ ~uint8 | ~uint16 | ~uint32 | ~uint64 }

type hdl[W word, T any] struct{ bits W }

type texture struct{}
type buffer struct{}

var th hdl[uint32, texture]
var bh hdl[uint32, buffer]

func cross() {
	th = bh
}
`
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "probe.go", bad, 0)
	if err != nil {
		t.Fatalf("parse probe: %v", err)
	}

	var typeErrs []error
	conf := types.Config{Error: func(err error) { typeErrs = append(typeErrs, err) }}
	_, err = conf.Check("probe", fset, []*ast.File{file}, nil)
	if err == nil && len(typeErrs) == 0 {
		t.Fatal("cross-tag assignment type-checked, want a type error")
	}

	found := false
	for _, e := range typeErrs {
		if strings.Contains(e.Error(), "cannot use") {
			found = true
		}
	}
	if err != nil && strings.Contains(err.Error(), "cannot use") {
		found = true
	}
	if !found {
		t.Errorf("type errors %v do not mention the assignment mismatch", typeErrs)
	}
}

func TestSameTagAssignmentTypeChecks(t *testing.T) {
	const good = `package probe

type word interface{ ~uint8 | ~uint16 | ~uint32 | ~uint64 }

type hdl[W word, T any] struct{ bits W }

type texture struct{}

var dst hdl[uint32, texture]
var src hdl[uint32, texture]

func same() {
	dst = src
}
`
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "probe.go", good, 0)
	if err != nil {
		t.Fatalf("parse probe: %v", err)
	}

	conf := types.Config{}
	if _, err := conf.Check("probe", fset, []*ast.File{file}, nil); err != nil {
		t.Errorf("same-tag assignment failed to type-check: %v", err)
	}
}
