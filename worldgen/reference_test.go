package worldgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/df-mc/terragen/worldgen/biome"
	"github.com/pelletier/go-toml"
)

// referenceRecord pins the generated state of one well-known column so any
// change to the pipeline that shifts world output fails loudly instead of
// drifting silently. The record is written to testdata on the first run and
// compared against on every run after; delete the file to re-record after
// an intentional output change.
type referenceRecord struct {
	Digest int64  `toml:"digest"`
	Water  bool   `toml:"water"`
	Height int    `toml:"height"`
	Biome  string `toml:"biome"`
}

func TestSeed42ReferenceColumn(t *testing.T) {
	c := testGenerator(42).GenerateChunk(0, 0)
	i := columnIndex(8, 8)
	got := referenceRecord{
		Digest: int64(c.Digest()),
		Water:  c.WaterDepth[i] > 0,
		Height: c.Heights[i],
		Biome:  biome.Name(c.Biomes[i]),
	}

	path := filepath.Join("testdata", "seed42_chunk_0_0.toml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		recorded, err := toml.Marshal(got)
		if err != nil {
			t.Fatalf("encode reference: %v", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("create testdata: %v", err)
		}
		if err := os.WriteFile(path, recorded, 0644); err != nil {
			t.Fatalf("write reference: %v", err)
		}
		t.Skipf("recorded new reference at %s", path)
	}
	if err != nil {
		t.Fatalf("read reference: %v", err)
	}

	var want referenceRecord
	if err := toml.Unmarshal(data, &want); err != nil {
		t.Fatalf("decode reference: %v", err)
	}
	if got != want {
		t.Fatalf("seed 42 chunk (0,0) column (8,8) drifted from the recorded reference:\n got %+v\nwant %+v", got, want)
	}
}
