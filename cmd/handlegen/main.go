package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/giusdp/gamekit/handlegen"
)

func main() {
	var (
		manifest    = flag.String("manifest", "", "Path to TOML manifest describing handle types")
		typeName    = flag.String("type", "", "Single handle type name (alternative to -manifest)")
		indexBits   = flag.Uint("index-bits", 0, "Index field width for -type")
		cycleBits   = flag.Uint("cycle-bits", 0, "Cycle field width for -type")
		pkg         = flag.String("pkg", "", "Target package name for -type")
		doc         = flag.String("doc", "", "Doc line for -type (optional)")
		out         = flag.String("o", "", "Output file (default stdout)")
		verbose     = flag.Bool("v", false, "Verbose generation logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			handlegen.SetLogger(logger)
		}
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *manifest == "" && *typeName == "" {
		fmt.Fprintln(os.Stderr, "Usage: handlegen -manifest <handles.toml> [-o file.go]")
		fmt.Fprintln(os.Stderr, "       handlegen -type <Name> -index-bits <n> -cycle-bits <n> -pkg <name> [-o file.go]")
		fmt.Fprintln(os.Stderr, "       handlegen -i [-o file.go]  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*manifest, *typeName, *pkg, *doc, *out, *indexBits, *cycleBits); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(manifest, typeName, pkg, doc, out string, indexBits, cycleBits uint) error {
	f, err := describe(manifest, typeName, pkg, doc, indexBits, cycleBits)
	if err != nil {
		return err
	}

	// Without -o the source goes to stdout so it can be piped.
	if out == "" {
		src, err := handlegen.Generate(f)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(src)
		return err
	}

	if err := handlegen.GenerateFile(f, out); err != nil {
		return err
	}

	fmt.Printf("Package: %s\n", f.Package)
	for _, t := range f.Types {
		fmt.Printf("  %sHandle: %d-bit index, %d-bit cycle (%d-bit word)\n",
			t.Name, t.IndexBits, t.CycleBits, t.Total())
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}

func describe(manifest, typeName, pkg, doc string, indexBits, cycleBits uint) (handlegen.File, error) {
	if manifest != "" {
		return handlegen.LoadManifest(manifest)
	}
	return handlegen.File{
		Package: pkg,
		Types: []handlegen.Type{
			{Name: typeName, IndexBits: indexBits, CycleBits: cycleBits, Doc: doc},
		},
	}, nil
}
