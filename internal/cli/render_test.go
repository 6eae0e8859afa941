package cli

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Tato14/Ped-eeg-position/pkg/config"
	"github.com/Tato14/Ped-eeg-position/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{pipeline.FormatSVG}},
		{"png", []string{"png"}},
		{"svg,png,pdf", []string{"svg", "png", "pdf"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"", defaultOutputBase},
		{"head", "head"},
		{"head.svg", "head"},
		{"head.png", "head"},
		{"out/head.pdf", "out/head"},
		{"head.txt", "head.txt"}, // unknown extension kept
	}

	for _, tt := range tests {
		if got := basePath(tt.output); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}

func TestApplyRenderConfig(t *testing.T) {
	rc := config.RenderConfig{Style: "print", Width: 900, Labels: false, Scale: 3.0}

	c := New(io.Discard, log.InfoLevel)

	// No flags set: config wins everywhere.
	cmd := c.renderCommand()
	opts := pipeline.Options{}
	setCLIDefaults(&opts)
	applyRenderConfig(cmd, &opts, rc)

	if opts.Style != "print" {
		t.Errorf("Style = %q, want print", opts.Style)
	}
	if opts.Width != 900 {
		t.Errorf("Width = %v, want 900", opts.Width)
	}
	if opts.Scale != 3.0 {
		t.Errorf("Scale = %v, want 3.0", opts.Scale)
	}
	if !opts.NoLabels {
		t.Error("labels=false in config should hide labels")
	}

	// Explicit flags override the config file.
	cmd = c.renderCommand()
	if err := cmd.Flags().Set("style", "clinical"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := cmd.Flags().Set("width", "600"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	opts = pipeline.Options{}
	setCLIDefaults(&opts)
	opts.Style = "clinical"
	opts.Width = 600
	applyRenderConfig(cmd, &opts, rc)

	if opts.Style != "clinical" {
		t.Errorf("Style = %q, flag should override config", opts.Style)
	}
	if opts.Width != 600 {
		t.Errorf("Width = %v, flag should override config", opts.Width)
	}
	if opts.Scale != 3.0 {
		t.Errorf("Scale = %v, unset flag should take config value", opts.Scale)
	}
}

func TestWriteArtifactsSingleFormat(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "scan.svg")

	artifacts := map[string][]byte{"svg": []byte("<svg/>")}
	paths, err := writeArtifacts(artifacts, []string{"svg"}, out)
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	if len(paths) != 1 || paths[0] != out {
		t.Fatalf("paths = %v, want [%s]", paths, out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("output content = %q", data)
	}
}

func TestWriteArtifactsMultipleFormats(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "scan.svg") // extension should be stripped

	artifacts := map[string][]byte{
		"svg": []byte("<svg/>"),
		"dot": []byte("graph montage {}"),
	}
	paths, err := writeArtifacts(artifacts, []string{"svg", "dot"}, base)
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "scan.svg"),
		filepath.Join(dir, "scan.dot"),
	}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for _, p := range want {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing output %s: %v", p, err)
		}
	}
}
