// Command msdftext lays out a line of text with an MSDF font and prints the
// resulting glyph instances.
//
//	msdftext -dir Assets/Fonts -font Inter -text "Hello" -size 32
//	msdftext -font Inter -variant "Bold Normal Bold Normal" -json
//	msdftext -font Inter -text "Hello" -preview hello.png
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/msdftext"
	"github.com/gogpu/msdftext/atlas"
	"github.com/gogpu/msdftext/font"
	"github.com/gogpu/msdftext/layout"
)

func main() {
	var (
		root    = flag.String("root", ".", "root directory fonts are resolved against")
		dir     = flag.String("dir", "Assets/Fonts", "font directory inside root")
		name    = flag.String("font", "", "font name (file name without extension)")
		variant = flag.String("variant", font.Regular, "variant key")
		text    = flag.String("text", "Hello, World!", "text to lay out")
		size    = flag.Float64("size", 32, "font size in pixels")
		x       = flag.Float64("x", 0, "start X")
		y       = flag.Float64("y", 0, "start Y (baseline)")
		kerning = flag.Bool("kerning", false, "apply kerning pairs")
		asJSON  = flag.Bool("json", false, "print instances as JSON")
		preview = flag.String("preview", "", "write a PNG preview to this file")
		verbose = flag.Bool("v", false, "log loader activity")
	)
	flag.Parse()

	if *name == "" {
		log.Fatal("missing -font")
	}
	if *verbose {
		msdftext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := atlas.DefaultConfig()
	cfg.FS = os.DirFS(*root)
	cfg.Dir = *dir

	cache, err := atlas.New(cfg, nil)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	defer cache.Close()

	if err := cache.Load(*name); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	engine := layout.NewEngine(cache).WithOptions(layout.Options{Kerning: *kerning})
	start := layout.Vec2{X: float32(*x), Y: float32(*y)}
	instances, err := engine.Layout(*name, *variant, *text, start, float32(*size))
	if err != nil {
		log.Fatalf("Layout failed: %v", err)
	}
	end, _ := engine.Measure(*name, *variant, *text, start, float32(*size))

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(instances); err != nil {
			log.Fatalf("Failed to encode: %v", err)
		}
	} else {
		printInstances(instances, end.X-start.X)
	}

	if *preview != "" {
		lineHeight, _ := engine.LineHeight(*name, *variant, float32(*size))
		tex, err := cache.Texture(*name)
		if err != nil {
			log.Fatalf("No atlas: %v", err)
		}
		mem, ok := tex.(*atlas.MemoryTexture)
		if !ok || len(mem.Levels) == 0 {
			log.Fatal("Atlas is not in host memory")
		}
		if err := writePreview(*preview, mem.Levels[0], instances, end, lineHeight); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
		log.Printf("Preview saved to %s\n", *preview)
	}
}

func printInstances(instances []layout.GlyphInstance, width float32) {
	for i, inst := range instances {
		fmt.Printf("%3d pos=(%.2f, %.2f) size=(%.2f, %.2f) uv=(%.4f, %.4f, %.4f, %.4f)\n",
			i, inst.Position.X, inst.Position.Y, inst.Size.X, inst.Size.Y,
			inst.UV.UMin, inst.UV.VMin, inst.UV.UMax, inst.UV.VMax)
	}
	fmt.Printf("%d instances, width %.2f\n", len(instances), width)
}
