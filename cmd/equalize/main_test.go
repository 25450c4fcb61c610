package main

import (
	"bytes"
	stdimage "image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for i, name := range []string{"one.png", "two.png"} {
		img := stdimage.NewGray(stdimage.Rect(0, 0, 6, 4))
		for j := range img.Pix {
			img.Pix[j] = uint8(30*i + 7*j)
		}
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}
	return dir
}

func TestSummaryCommand(t *testing.T) {
	dataset := writeDataset(t)
	out, err := execute(t, "summary", "--dataset", dataset, "--methods", "dqhepl,he", "--log-level", "error")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	for _, want := range []string{"2 images processed, 0 failed", "== DQHEPL ==", "== HE =="} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "== CLAHE ==") {
		t.Error("unselected method reported")
	}
}

func TestHistogramsCommand_Config(t *testing.T) {
	dataset := writeDataset(t)
	root := t.TempDir()
	cfgPath := filepath.Join(root, "equalize.yaml")
	cfg := "dataset: " + dataset + "\nhistogram_dir: " + filepath.Join(root, "plots") + "\nlimit: 1\nmethods: [bhepl-d]\nlog:\n  level: error\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "histograms", "--config", cfgPath)
	if err != nil {
		t.Fatalf("histograms: %v", err)
	}
	if !strings.Contains(out, "1 images written") {
		t.Errorf("unexpected output %q", out)
	}
	if _, err := os.Stat(filepath.Join(root, "plots", "one", "bhepl_d_histogram.png")); err != nil {
		t.Error(err)
	}
}

func TestCommandErrors(t *testing.T) {
	dataset := writeDataset(t)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown method", []string{"summary", "--dataset", dataset, "--methods", "gamma"}},
		{"missing dataset", []string{"summary", "--dataset", filepath.Join(dataset, "nope")}},
		{"missing config", []string{"images", "--config", filepath.Join(dataset, "none.yaml")}},
		{"bad log level", []string{"summary", "--dataset", dataset, "--log-level", "loud"}},
		{"extra args", []string{"info", "now"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := execute(t, tc.args...); err == nil {
				t.Errorf("%v should fail", tc.args)
			}
		})
	}
}

func TestInfoCommand(t *testing.T) {
	out, err := execute(t, "info")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if !strings.Contains(out, "SIMD level:") || !strings.Contains(out, "Vector width:") {
		t.Errorf("unexpected output %q", out)
	}
}
