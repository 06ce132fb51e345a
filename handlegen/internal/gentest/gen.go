//go:generate go run github.com/giusdp/gamekit/cmd/handlegen -manifest handles.toml -o handles_gen.go

// Package gentest exercises handlegen end to end: the checked-in
// generated source must stay in sync with the generator, and the
// generated API must hold the same packing properties as the runtime
// handle package.
package gentest
