package cache

import (
	"testing"

	"github.com/df-mc/terragen/worldgen"
)

func openTestCache(t *testing.T, seed int64) *Cache {
	t.Helper()
	g := worldgen.New(worldgen.Config{Seed: seed, Metrics: worldgen.NewMetrics()})
	c, err := New(t.TempDir(), g, nil)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCacheRoundTrip(t *testing.T) {
	c := openTestCache(t, 42)
	fresh, err := c.GenerateChunk(3, -2)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	cached, err := c.GenerateChunk(3, -2)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fresh.Digest() != cached.Digest() {
		t.Fatal("cached chunk differs from the generated one")
	}
	if hits := c.g.Metrics().CacheHits(); hits != 1 {
		t.Fatalf("cache hits = %d, want 1", hits)
	}
}

func TestCacheMatchesGenerator(t *testing.T) {
	c := openTestCache(t, 42)
	got, err := c.GenerateChunk(8, 8)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := worldgen.New(worldgen.Config{Seed: 42}).GenerateChunk(8, 8)
	if got.Digest() != want.Digest() {
		t.Fatal("cache changed generator output")
	}
}

func TestCacheEncodeRoundTrip(t *testing.T) {
	chunk := worldgen.New(worldgen.Config{Seed: 7}).GenerateChunk(1, 1)
	data, err := encodeChunk(chunk)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := decodeChunk(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Digest() != chunk.Digest() {
		t.Fatal("digest changed across encode/decode")
	}
	if len(decoded.Trees) != len(chunk.Trees) {
		t.Fatalf("tree count changed: %d != %d", len(decoded.Trees), len(chunk.Trees))
	}
}

func TestCacheRejectsCorruptEntry(t *testing.T) {
	chunk := worldgen.New(worldgen.Config{Seed: 7}).GenerateChunk(1, 1)
	data, err := encodeChunk(chunk)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// Flip a byte somewhere in the middle of the payload.
	data[len(data)/2] ^= 0xFF
	if _, err := decodeChunk(data); err == nil {
		t.Fatal("corrupt entry decoded without error")
	}
}

func TestCacheKeyIncludesSeed(t *testing.T) {
	a := chunkKey(1, 4, 4)
	b := chunkKey(2, 4, 4)
	if string(a) == string(b) {
		t.Fatal("chunk keys collide across seeds")
	}
}
