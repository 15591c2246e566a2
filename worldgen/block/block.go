// Package block holds the static block-property table the terrain pipeline
// resolves surface and underground blocks against. Definitions are
// flyweights: one immutable record per block type, shared by reference,
// never copied per block instance.
package block

// Type identifies a block type.
type Type int32

const (
	Air Type = iota
	Grass
	Dirt
	Stone
	Sand
	Sandstone
	Gravel
	Water
	Ice
	Snow
	Terracotta
	Mud
	Podzol
	Log
	Leaves
	Cactus
	maxType
)

// Definition is the immutable property record of a block type.
type Definition struct {
	Name string
	// Underground is the pair of layer blocks found beneath a surface of
	// this type, nearest first. The column resolver reads it to pick the
	// floor under standing water.
	Underground [2]Type
	// BiomeTinted marks blocks whose rendered colour follows the biome
	// grass tint.
	BiomeTinted bool
}

// definitions is built once and read-only afterwards; Lookup hands out
// pointers into it.
var definitions = [maxType]Definition{
	Air:        {Name: "air"},
	Grass:      {Name: "grass", Underground: [2]Type{Dirt, Stone}, BiomeTinted: true},
	Dirt:       {Name: "dirt", Underground: [2]Type{Dirt, Stone}},
	Stone:      {Name: "stone", Underground: [2]Type{Stone, Stone}},
	Sand:       {Name: "sand", Underground: [2]Type{Sand, Sandstone}},
	Sandstone:  {Name: "sandstone", Underground: [2]Type{Sandstone, Stone}},
	Gravel:     {Name: "gravel", Underground: [2]Type{Gravel, Stone}},
	Water:      {Name: "water"},
	Ice:        {Name: "ice", Underground: [2]Type{Gravel, Stone}},
	Snow:       {Name: "snow", Underground: [2]Type{Dirt, Stone}},
	Terracotta: {Name: "terracotta", Underground: [2]Type{Terracotta, Stone}},
	Mud:        {Name: "mud", Underground: [2]Type{Mud, Stone}},
	Podzol:     {Name: "podzol", Underground: [2]Type{Dirt, Stone}},
	Log:        {Name: "log"},
	Leaves:     {Name: "leaves", BiomeTinted: true},
	Cactus:     {Name: "cactus"},
}

// Lookup returns the shared Definition of the block type, or the air
// definition for types outside the table.
func Lookup(t Type) *Definition {
	if t < 0 || t >= maxType {
		return &definitions[Air]
	}
	return &definitions[t]
}

// Name returns the lowercase name of the block type.
func Name(t Type) string {
	return Lookup(t).Name
}
