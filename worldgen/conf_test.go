package worldgen

import (
	"path/filepath"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	c := Config{}.withDefaults()
	if c.Log == nil {
		t.Error("no default logger applied")
	}
	if c.SeaLevel != 62 {
		t.Errorf("default sea level %d, want 62", c.SeaLevel)
	}
	if c.RelaxPasses != 3 {
		t.Errorf("default relax passes %d, want 3", c.RelaxPasses)
	}
}

func TestConfigDefaultsKeepExplicitValues(t *testing.T) {
	c := Config{SeaLevel: 48, RelaxPasses: 5}.withDefaults()
	if c.SeaLevel != 48 || c.RelaxPasses != 5 {
		t.Errorf("explicit values overwritten: %+v", c)
	}
}

func TestConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.toml")
	want := Config{Seed: -912, SeaLevel: 70, RelaxPasses: 2}
	if err := WriteConfig(want, path); err != nil {
		t.Fatalf("write config: %v", err)
	}
	got, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if got.Seed != want.Seed || got.SeaLevel != want.SeaLevel || got.RelaxPasses != want.RelaxPasses {
		t.Fatalf("config round trip: got %+v, want %+v", got, want)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := ReadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("no error for a missing config file")
	}
}
