package batch

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-equalize/equalize"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	want := []string{equalize.NameCLAHE, equalize.NameHE, equalize.NameDQHEPL, equalize.NameBHEPLD}
	if diff := cmp.Diff(want, c.Methods); diff != "" {
		t.Errorf("methods mismatch (-want +got):\n%s", diff)
	}
	if c.Limit != 5 {
		t.Errorf("Limit = %d, want 5", c.Limit)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "equalize.yaml", `
dataset: images
workers: 2
methods: [dqhepl, bhepl-d, DQHEPL]
log:
  level: debug
`)
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := &Config{
		Dataset:      "images",
		OutputDir:    "processed",
		HistogramDir: "histograms",
		Workers:      2,
		Limit:        5,
		Methods:      []string{equalize.NameDQHEPL, equalize.NameBHEPLD},
		Log:          LogConfig{Level: "debug"},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "dataset: [unclosed"},
		{"unknown method", "methods: [gamma]"},
		{"negative workers", "workers: -1"},
		{"negative limit", "limit: -3"},
		{"empty dataset", `dataset: ""`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, "c.yaml", tc.content)
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig should fail")
			}
		})
	}

	if _, err := LoadConfig(dir + "/missing.yaml"); err == nil {
		t.Error("LoadConfig of a missing file should fail")
	}
}
