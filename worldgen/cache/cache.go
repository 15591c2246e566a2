// Package cache persists generated chunks in a LevelDB store so repeated
// queries of the same world skip the noise pipeline. Entries carry the
// chunk digest; anything that fails validation on load is regenerated, so
// the cache can never change what a generator produces, only how fast.
package cache

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/terragen/worldgen"
	"github.com/df-mc/terragen/worldgen/biome"
	"github.com/df-mc/terragen/worldgen/block"
	"github.com/df-mc/terragen/worldgen/vegetation"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// Cache wraps a Generator with a persistent chunk store.
type Cache struct {
	g   *worldgen.Generator
	db  *leveldb.DB
	log *slog.Logger
}

// New opens or creates the chunk store in the directory passed and wraps
// the generator with it.
func New(dir string, g *worldgen.Generator, log *slog.Logger) (*Cache, error) {
	if log == nil {
		log = slog.Default()
	}
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("open chunk cache: %w", err)
	}
	return &Cache{g: g, db: db, log: log.With("seed", g.Seed())}, nil
}

// GenerateChunk returns the chunk at (cx, cz), from the store when a valid
// entry exists and from the generator otherwise. Freshly generated chunks
// are stored before returning.
func (c *Cache) GenerateChunk(cx, cz int32) (*worldgen.ChunkData, error) {
	key := chunkKey(c.g.Seed(), cx, cz)

	data, err := c.db.Get(key, nil)
	switch {
	case err == nil:
		if chunk, decodeErr := decodeChunk(data); decodeErr == nil {
			c.g.Metrics().IncCacheHits()
			return chunk, nil
		} else {
			c.log.Warn("discarding corrupt cache entry", "cx", cx, "cz", cz, "err", decodeErr)
			_ = c.db.Delete(key, nil)
		}
	case errors.Is(err, leveldb.ErrNotFound):
	default:
		return nil, fmt.Errorf("read chunk cache: %w", err)
	}

	chunk := c.g.GenerateChunk(cx, cz)
	encoded, err := encodeChunk(chunk)
	if err != nil {
		return nil, fmt.Errorf("encode chunk for cache: %w", err)
	}
	if err := c.db.Put(key, encoded, nil); err != nil {
		return nil, fmt.Errorf("write chunk cache: %w", err)
	}
	return chunk, nil
}

// Close closes the underlying store.
func (c *Cache) Close() error {
	return c.db.Close()
}

// chunkKey builds the store key of a chunk. The seed is part of the key so
// one store directory can hold multiple worlds.
func chunkKey(seed int64, cx, cz int32) []byte {
	key := make([]byte, 17)
	key[0] = 'c'
	binary.LittleEndian.PutUint64(key[1:], uint64(seed))
	binary.LittleEndian.PutUint32(key[9:], uint32(cx))
	binary.LittleEndian.PutUint32(key[13:], uint32(cz))
	return key
}

// The NBT shapes below flatten ChunkData into types the codec handles
// natively. Digest stores the hash of the chunk at encode time and is
// checked against the rebuilt chunk on decode.

type chunkEntry struct {
	X          int32        `nbt:"x"`
	Z          int32        `nbt:"z"`
	Heights    []int32      `nbt:"heights"`
	Biomes     []int32      `nbt:"biomes"`
	TopBlocks  []int32      `nbt:"top_blocks"`
	Floors     []int32      `nbt:"floors"`
	WaterDepth []int32      `nbt:"water_depth"`
	BorderX    []int32      `nbt:"border_x"`
	BorderZ    []int32      `nbt:"border_z"`
	Trees      []treeEntry  `nbt:"trees"`
	Digest     int64        `nbt:"digest"`
}

type treeEntry struct {
	Kind          int32            `nbt:"kind"`
	X             int32            `nbt:"x"`
	Y             int32            `nbt:"y"`
	Z             int32            `nbt:"z"`
	TrunkHeight   int32            `nbt:"trunk_height"`
	FoliageRadius int32            `nbt:"foliage_radius"`
	Blocks        []treeBlockEntry `nbt:"blocks"`
}

type treeBlockEntry struct {
	X    int32 `nbt:"x"`
	Y    int32 `nbt:"y"`
	Z    int32 `nbt:"z"`
	Role int32 `nbt:"role"`
}

func encodeChunk(c *worldgen.ChunkData) ([]byte, error) {
	e := chunkEntry{
		X: c.X, Z: c.Z,
		Heights:    make([]int32, 256),
		Biomes:     make([]int32, 256),
		TopBlocks:  make([]int32, 256),
		Floors:     make([]int32, 256),
		WaterDepth: make([]int32, 256),
		BorderX:    make([]int32, 16),
		BorderZ:    make([]int32, 16),
		Digest:     int64(c.Digest()),
	}
	for i := 0; i < 256; i++ {
		e.Heights[i] = int32(c.Heights[i])
		e.Biomes[i] = int32(c.Biomes[i])
		e.TopBlocks[i] = int32(c.TopBlocks[i])
		e.Floors[i] = int32(c.Floors[i])
		e.WaterDepth[i] = int32(c.WaterDepth[i])
	}
	for i := 0; i < 16; i++ {
		e.BorderX[i] = int32(c.BorderX[i])
		e.BorderZ[i] = int32(c.BorderZ[i])
	}
	for _, t := range c.Trees {
		te := treeEntry{
			Kind: int32(t.Kind),
			X:    int32(t.X), Y: int32(t.Y), Z: int32(t.Z),
			TrunkHeight:   int32(t.TrunkHeight),
			FoliageRadius: int32(t.FoliageRadius),
		}
		for _, b := range t.Blocks {
			te.Blocks = append(te.Blocks, treeBlockEntry{
				X: int32(b.X), Y: int32(b.Y), Z: int32(b.Z), Role: int32(b.Role),
			})
		}
		e.Trees = append(e.Trees, te)
	}

	buf := bytes.NewBuffer(nil)
	if err := nbt.NewEncoderWithEncoding(buf, nbt.LittleEndian).Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeChunk(data []byte) (*worldgen.ChunkData, error) {
	var e chunkEntry
	if err := nbt.NewDecoderWithEncoding(bytes.NewBuffer(data), nbt.LittleEndian).Decode(&e); err != nil {
		return nil, err
	}
	if len(e.Heights) != 256 || len(e.Biomes) != 256 || len(e.TopBlocks) != 256 ||
		len(e.Floors) != 256 || len(e.WaterDepth) != 256 ||
		len(e.BorderX) != 16 || len(e.BorderZ) != 16 {
		return nil, errors.New("chunk entry has truncated arrays")
	}

	c := &worldgen.ChunkData{X: e.X, Z: e.Z}
	for i := 0; i < 256; i++ {
		c.Heights[i] = int(e.Heights[i])
		c.Biomes[i] = biome.ID(e.Biomes[i])
		c.TopBlocks[i] = block.Type(e.TopBlocks[i])
		c.Floors[i] = block.Type(e.Floors[i])
		c.WaterDepth[i] = int(e.WaterDepth[i])
	}
	for i := 0; i < 16; i++ {
		c.BorderX[i] = int(e.BorderX[i])
		c.BorderZ[i] = int(e.BorderZ[i])
	}
	for _, te := range e.Trees {
		t := vegetation.Tree{
			Kind: vegetation.Kind(te.Kind),
			X:    int(te.X), Y: int(te.Y), Z: int(te.Z),
			TrunkHeight:   int(te.TrunkHeight),
			FoliageRadius: int(te.FoliageRadius),
		}
		for _, b := range te.Blocks {
			t.Blocks = append(t.Blocks, vegetation.TreeBlock{
				X: int(b.X), Y: int(b.Y), Z: int(b.Z), Role: vegetation.Role(b.Role),
			})
		}
		c.Trees = append(c.Trees, t)
	}

	if c.Digest() != uint64(e.Digest) {
		return nil, errors.New("chunk entry failed digest validation")
	}
	return c, nil
}
