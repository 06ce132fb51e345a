package handlegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleManifest = `package = "gfx"

[[type]]
name = "Texture"
index_bits = 22
cycle_bits = 10

[[type]]
name = "Atlas"
index_bits = 96
cycle_bits = 32
doc = "Atlas pages are addressed by content hash."
`

func TestParseManifest(t *testing.T) {
	f, err := ParseManifest([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("ParseManifest() error: %v", err)
	}
	if f.Package != "gfx" {
		t.Errorf("Package = %q, want %q", f.Package, "gfx")
	}
	if len(f.Types) != 2 {
		t.Fatalf("len(Types) = %d, want 2", len(f.Types))
	}
	first := f.Types[0]
	if first.Name != "Texture" || first.IndexBits != 22 || first.CycleBits != 10 {
		t.Errorf("Types[0] = %+v, want Texture 22/10", first)
	}
	if f.Types[1].Doc != "Atlas pages are addressed by content hash." {
		t.Errorf("Types[1].Doc = %q", f.Types[1].Doc)
	}
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name:     "broken toml",
			manifest: `package = `,
			wantErr:  "parse manifest",
		},
		{
			name:     "unsupported width",
			manifest: "package = \"gfx\"\n\n[[type]]\nname = \"Texture\"\nindex_bits = 20\ncycle_bits = 10\n",
			wantErr:  "(got 30)",
		},
		{
			name:     "missing name",
			manifest: "package = \"gfx\"\n\n[[type]]\nindex_bits = 22\ncycle_bits = 10\n",
			wantErr:  "not an exported Go identifier",
		},
		{
			name:     "no types",
			manifest: "package = \"gfx\"\n",
			wantErr:  "no handle types declared",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.manifest))
			if err == nil {
				t.Fatal("ParseManifest() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q missing %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handles.toml")
	if err := os.WriteFile(path, []byte(sampleManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error: %v", err)
	}
	if len(f.Types) != 2 {
		t.Errorf("len(Types) = %d, want 2", len(f.Types))
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("LoadManifest() = nil, want error for a missing file")
	}
	if !strings.Contains(err.Error(), "absent.toml") {
		t.Errorf("error %q does not name the file", err.Error())
	}
}

func TestLoadManifestAttributesParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handles.toml")
	if err := os.WriteFile(path, []byte("package = \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadManifest(path)
	if err == nil {
		t.Fatal("LoadManifest() = nil, want error for broken TOML")
	}
	if !strings.Contains(err.Error(), "handles.toml") {
		t.Errorf("error %q does not name the manifest file", err.Error())
	}
}
