package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rook-computer/cdupanel/internal/render/layout"
)

// labelEntry is one legend in a labels file:
//
//	- group: main
//	  row: 0
//	  col: 0
//	  text: "INIT\nREF"
//	  font: main
type labelEntry struct {
	Group string `yaml:"group"`
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Text  string `yaml:"text"`
	Font  string `yaml:"font"`
}

var labelGroups = map[string]layout.Group{
	string(layout.GroupMain):    layout.GroupMain,
	string(layout.GroupLetter):  layout.GroupLetter,
	string(layout.GroupNumeric): layout.GroupNumeric,
	string(layout.GroupExec):    layout.GroupExec,
}

// LoadLabels reads a YAML label set from path.
func LoadLabels(path string) ([]layout.Label, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels %s: %w", path, err)
	}
	return ParseLabels(data)
}

// ParseLabels decodes a YAML label set. Entries keep file order; matching
// them to slots is left to layout.Bind.
func ParseLabels(data []byte) ([]layout.Label, error) {
	var entries []labelEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse labels: %w", err)
	}
	labels := make([]layout.Label, 0, len(entries))
	for i, e := range entries {
		group, ok := labelGroups[e.Group]
		if !ok {
			return nil, fmt.Errorf("label %d: unknown group %q", i, e.Group)
		}
		role, err := layout.ParseFontRole(e.Font)
		if err != nil {
			return nil, fmt.Errorf("label %d: %w", i, err)
		}
		labels = append(labels, layout.NewLabel(layout.SlotID{Group: group, Row: e.Row, Col: e.Col}, e.Text, role))
	}
	return labels, nil
}
