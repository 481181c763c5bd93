package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	_ "blockgol/internal/sims/life"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TargetCells != 20000 {
		t.Errorf("expected 20000 target cells, got %d", cfg.TargetCells)
	}
	if !cfg.Windowed || cfg.WindowWidth != 600 || cfg.WindowHeight != 600 {
		t.Errorf("expected a 600x600 window, got windowed=%v %dx%d", cfg.Windowed, cfg.WindowWidth, cfg.WindowHeight)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TargetCells = 0
	cfg.Engine = "fft"
	cfg.AliveColor = "white"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}
	for _, want := range []string{"target_cells", "unknown engine", "alive_color"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestColors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AliveColor = "#00ff00"
	alive, dead := cfg.Colors()
	if got := color.NRGBAModel.Convert(alive).(color.NRGBA); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("alive color = %+v", got)
	}
	if got := color.NRGBAModel.Convert(dead).(color.NRGBA); got != (color.NRGBA{A: 255}) {
		t.Errorf("dead color = %+v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gol.yaml")
	cfg := DefaultConfig()
	cfg.TargetCells = 400
	cfg.Engine = "convolution"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *cfg {
		t.Fatalf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("target_cells: 900\nwindowed: false\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TargetCells != 900 || cfg.Windowed {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.GenerationRate != DefaultGenerationRate || cfg.Engine != DefaultEngine {
		t.Fatalf("defaults not kept: %+v", cfg)
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gol.yaml")
	if err := os.WriteFile(path, []byte("target_cells: 900\nengine: convolution\ngeneration_rate: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	flags := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bind(fs)
	if err := fs.Parse([]string{"--cells", "100", "--seed", "9"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Resolve(path, flags, fs)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.TargetCells != 100 || cfg.Seed != 9 {
		t.Errorf("explicit flags should win: %+v", cfg)
	}
	if cfg.Engine != "convolution" || cfg.GenerationRate != 3 {
		t.Errorf("file values should survive when the flag is unset, got %+v", cfg)
	}
}

func TestResolveWithoutFile(t *testing.T) {
	flags := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bind(fs)
	if err := fs.Parse([]string{"--engine", "nope"}); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve("", flags, fs); err == nil {
		t.Fatal("expected an unknown engine to fail validation")
	}
}
