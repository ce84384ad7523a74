package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/loaders"
	"github.com/eternalStudent/RayTracer/pkg/renderer"
	"github.com/eternalStudent/RayTracer/pkg/scene"
)

// scenesDir is where scene files are looked up by bare name
const scenesDir = "scenes"

// Config holds the parsed command line
type Config struct {
	Scene   string
	Width   int
	Height  int
	Output  string
	Workers int
	Seed    int64
}

func main() {
	sceneType := flag.String("scene", "default", "Built-in scene name, scene file name in scenes/, or path to a .txt scene file")
	width := flag.Int("width", 500, "Image width in pixels")
	height := flag.Int("height", 500, "Image height in pixels")
	output := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	seed := flag.Int64("seed", renderer.DefaultRenderOptions().Seed, "Base random seed")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	logger := renderer.NewDefaultLogger()

	if *list {
		if err := listScenes(logger); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	config := Config{
		Scene:   *sceneType,
		Width:   *width,
		Height:  *height,
		Output:  *output,
		Workers: *workers,
		Seed:    *seed,
	}

	// Ctrl-C stops the workers between rows
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, config, logger); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Ray Tracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	for _, id := range scene.BuiltinSceneIDs() {
		fmt.Printf("  %s\n", id)
	}
	fmt.Println()
	fmt.Println("Scene files use the records cam, set, mtl, sph, pln, box and lgt.")
}

func listScenes(logger core.Logger) error {
	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}
	for _, info := range scenes {
		if info.Description != "" {
			logger.Printf("%-20s %-8s %s - %s\n", info.ID, info.Type, info.Name, info.Description)
		} else {
			logger.Printf("%-20s %-8s %s\n", info.ID, info.Type, info.Name)
		}
	}
	return nil
}

// run renders the configured scene and writes it as a PNG
func run(ctx context.Context, config Config, logger core.Logger) error {
	selectedScene, err := createScene(config.Scene, logger)
	if err != nil {
		return err
	}

	options := renderer.DefaultRenderOptions()
	options.NumWorkers = config.Workers
	options.Seed = config.Seed

	buffer, stats, err := renderer.Render(ctx, selectedScene, config.Width, config.Height, options, logger)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	filename := config.Output
	if filename == "" {
		filename = defaultOutputPath(config.Scene, time.Now())
	}
	if err := savePNG(filename, buffer); err != nil {
		return err
	}

	logger.Printf("Rendered %d pixels with %d workers in %v\n", stats.TotalPixels, stats.Workers, stats.Duration)
	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene resolves a built-in scene name, a scene file name in scenes/
// or a path to a scene file
func createScene(sceneType string, logger core.Logger) (*scene.Scene, error) {
	return loaders.LoadNamedScene(sceneType, scenesDir, logger)
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneType string, now time.Time) string {
	name := strings.TrimSuffix(filepath.Base(sceneType), filepath.Ext(sceneType))
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", timestamp))
}

func savePNG(filename string, buffer *renderer.PixelBuffer) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %v", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, buffer.ToImage()); err != nil {
		return fmt.Errorf("error saving PNG: %v", err)
	}
	return nil
}
