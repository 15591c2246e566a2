// Command mapview renders a top-down biome map of a generated world to a
// PNG file. Chunks are generated across a worker pool; the colour of each
// column is the biome map colour shaded by terrain height, with water
// rendered darker the deeper it is.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/df-mc/terragen/worldgen"
	"github.com/df-mc/terragen/worldgen/biome"
	"github.com/df-mc/terragen/worldgen/block"
	"github.com/google/uuid"
)

func main() {
	var (
		confPath = flag.String("config", "", "path to a TOML world config; flags below override it")
		seed     = flag.Int64("seed", 0, "world seed")
		radius   = flag.Int("radius", 16, "map radius in chunks around the origin")
		workers  = flag.Int("workers", 8, "concurrent chunk generation workers")
		out      = flag.String("out", "map.png", "output PNG path")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("run", uuid.New().String())

	conf := worldgen.Config{Log: log, Seed: *seed, Metrics: worldgen.NewMetrics()}
	if *confPath != "" {
		fileConf, err := worldgen.ReadConfig(*confPath)
		if err != nil {
			log.Error("read config", "err", err)
			os.Exit(1)
		}
		fileConf.Log, fileConf.Metrics = log, conf.Metrics
		conf = fileConf
	}

	g := worldgen.New(conf)
	start := time.Now()
	img := render(g, *radius, *workers)

	f, err := os.Create(*out)
	if err != nil {
		log.Error("create output", "err", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Error("encode png", "err", err)
		os.Exit(1)
	}

	log.Info("map rendered",
		"out", *out,
		"chunks", conf.Metrics.Chunks(),
		"columns", conf.Metrics.Columns(),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	for kind, n := range conf.Metrics.TreeCounts() {
		log.Debug("trees placed", "kind", kind, "count", n)
	}
}

// render generates all chunks within radius of the origin on a worker pool
// and paints them into one image.
func render(g *worldgen.Generator, radius, workers int) *image.RGBA {
	side := 2 * radius * 16
	img := image.NewRGBA(image.Rect(0, 0, side, side))

	jobs := make(chan [2]int32)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				paintChunk(img, g.GenerateChunk(job[0], job[1]), radius)
			}
		}()
	}
	for cz := int32(-radius); cz < int32(radius); cz++ {
		for cx := int32(-radius); cx < int32(radius); cx++ {
			jobs <- [2]int32{cx, cz}
		}
	}
	close(jobs)
	wg.Wait()
	return img
}

// paintChunk writes one generated chunk into the image. Chunks never
// overlap in the image, so no locking is needed around Set.
func paintChunk(img *image.RGBA, c *worldgen.ChunkData, radius int) {
	for z := 0; z < 16; z++ {
		for x := 0; x < 16; x++ {
			px := (int(c.X)+radius)*16 + x
			pz := (int(c.Z)+radius)*16 + z
			img.Set(px, pz, columnColor(c, x, z))
		}
	}
}

func columnColor(c *worldgen.ChunkData, x, z int) color.RGBA {
	i := x + z*16
	rgb := biome.Color(c.Biomes[i])
	r := uint8(rgb >> 16)
	g := uint8(rgb >> 8)
	b := uint8(rgb)

	if block.Lookup(c.TopBlocks[i]).BiomeTinted {
		// Tinted surfaces mix the biome's grass colour into the map colour.
		tint := biome.GrassColor(c.Biomes[i])
		r = uint8((uint32(r) + uint32(tint>>16&0xFF)) / 2)
		g = uint8((uint32(g) + uint32(tint>>8&0xFF)) / 2)
		b = uint8((uint32(b) + uint32(tint&0xFF)) / 2)
	}

	if depth := c.WaterDepth[i]; depth > 0 {
		// Deep water fades towards black.
		f := 1.0 - min(float64(depth), 24)/32
		return color.RGBA{R: uint8(float64(r) * f), G: uint8(float64(g) * f), B: uint8(float64(b) * f), A: 255}
	}

	// Shade land by height: sea level renders the base colour, peaks
	// brighten and lowlands darken.
	f := 0.7 + float64(c.Heights[i]-62)/160
	if f > 1.3 {
		f = 1.3
	}
	return color.RGBA{R: scale(r, f), G: scale(g, f), B: scale(b, f), A: 255}
}

func scale(v uint8, f float64) uint8 {
	s := float64(v) * f
	if s > 255 {
		return 255
	}
	return uint8(s)
}
