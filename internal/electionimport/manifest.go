package electionimport

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Region is one entry of the region manifest. File overrides the default
// export filename when a county's file was renamed by hand.
type Region struct {
	Name string `yaml:"name"`
	File string `yaml:"file,omitempty"`
}

type Manifest struct {
	Regions []Region `yaml:"regions"`
}

// SourceFile returns the CSV filename for the region, defaulting to the CEC
// export naming scheme.
func (r Region) SourceFile() string {
	if r.File != "" {
		return r.File
	}
	return fmt.Sprintf("總統-A05-4-候選人得票數一覽表-各投開票所(%s).csv", r.Name)
}

func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(m.Regions) == 0 {
		return nil, fmt.Errorf("manifest %s lists no regions", path)
	}
	for i, r := range m.Regions {
		if r.Name == "" {
			return nil, fmt.Errorf("manifest %s: region %d has no name", path, i+1)
		}
	}
	return &m, nil
}
