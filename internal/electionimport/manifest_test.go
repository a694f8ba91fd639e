package electionimport_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OctopusVote/OV-Backend/internal/electionimport"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regions.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

// TestLoadManifest verifies regions parse and the default CEC filename is
// derived from the region name unless overridden.
func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
regions:
  - name: 臺北市
  - name: 高雄市
    file: kaohsiung.csv
`)

	m, err := electionimport.LoadManifest(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(m.Regions))
	}

	want := "總統-A05-4-候選人得票數一覽表-各投開票所(臺北市).csv"
	if got := m.Regions[0].SourceFile(); got != want {
		t.Errorf("expected default filename %q, got %q", want, got)
	}
	if got := m.Regions[1].SourceFile(); got != "kaohsiung.csv" {
		t.Errorf("expected override filename, got %q", got)
	}
}

// TestLoadManifest_Empty verifies that a manifest without regions is
// rejected.
func TestLoadManifest_Empty(t *testing.T) {
	path := writeManifest(t, "regions: []\n")

	if _, err := electionimport.LoadManifest(path); err == nil {
		t.Fatal("expected an error for an empty manifest")
	}
}

// TestLoadManifest_MissingName verifies that a region without a name is
// rejected.
func TestLoadManifest_MissingName(t *testing.T) {
	path := writeManifest(t, `
regions:
  - file: somewhere.csv
`)

	if _, err := electionimport.LoadManifest(path); err == nil {
		t.Fatal("expected an error for a nameless region")
	}
}
