package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mc-skin-statue/internal/batch"
	"mc-skin-statue/internal/config"
	"mc-skin-statue/internal/logger"
	"mc-skin-statue/internal/palette"
	"mc-skin-statue/internal/pose"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.yaml file")
	poseName := flag.String("pose", "", "Pose name (see -list-poses)")
	model := flag.String("model", "", "Model variant: classic, slim, or auto")
	paletteName := flag.String("palette", "", "Builtin palette name or path to a YAML palette file")
	solid := flag.Bool("solid", false, "Keep interior blocks (skip hollowing)")
	dither := flag.Bool("dither", false, "Ordered dithering before color matching")
	outputDir := flag.String("output", "", "Output directory")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	noPreview := flag.Bool("no-preview", false, "Skip WebP preview rendering")
	listPoses := flag.Bool("list-poses", false, "List available poses and exit")
	flag.Parse()

	if *listPoses {
		for _, name := range pose.Names() {
			fmt.Println(name)
		}
		return
	}

	// Load config, CLI flags override file settings
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{
		Pose:      *poseName,
		Model:     *model,
		Palette:   *paletteName,
		Solid:     *solid,
		Dither:    *dither,
		OutputDir: *outputDir,
		Workers:   *workers,
	})
	if *noPreview {
		cfg.Preview = false
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.File)
	defer logger.Sync()

	sources := expandSources(flag.Args())
	if len(sources) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: statue [flags] <skin.png | directory | URL | username> ...")
		flag.PrintDefaults()
		os.Exit(1)
	}

	pal, err := loadPalette(cfg.Palette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading palette: %v\n", err)
		os.Exit(1)
	}
	matcher, err := palette.NewMatcher(pal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p, err := pose.Resolve(cfg.Pose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Skin → Statue Converter\n")
	fmt.Printf("Skins: %d, Pose: %s, Palette: %s, Workers: %d\n",
		len(sources), p.Name, pal.Name, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Matcher:     matcher,
		Pose:        p,
		Model:       cfg.Model,
		Solid:       cfg.Solid,
		Dither:      cfg.Dither,
		Preview:     cfg.Preview,
		PreviewSize: cfg.PreviewSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
	}, sources)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	manifest, err := batch.WriteManifest(cfg.OutputDir, results)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	}

	fmt.Printf("Converted: %d/%d\n", manifest.Success, manifest.Total)

	if manifest.Failed > 0 {
		fmt.Printf("\nFailed (%d):\n", manifest.Failed)
		shown := 0
		for _, r := range results {
			if r.Success {
				continue
			}
			fmt.Printf("  %s: %s\n", r.Source, r.Error)
			shown++
			if shown == 20 {
				break
			}
		}
		os.Exit(1)
	}
}

// expandSources replaces directory arguments with the PNG and TGA files they
// contain; everything else (files, URLs, usernames) passes through.
func expandSources(args []string) []string {
	var sources []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			sources = append(sources, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			sources = append(sources, arg)
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(e.Name())) {
			case ".png", ".tga":
				sources = append(sources, filepath.Join(arg, e.Name()))
			}
		}
	}
	return sources
}

// loadPalette resolves a builtin palette name, falling back to a YAML file
// path for custom palettes.
func loadPalette(name string) (palette.Palette, error) {
	if pal, err := palette.Builtin(name); err == nil {
		return pal, nil
	}
	if _, err := os.Stat(name); err == nil {
		return palette.Load(name)
	}
	return palette.Palette{}, fmt.Errorf("unknown palette %q (builtin: %s)",
		name, strings.Join(palette.BuiltinNames(), ", "))
}
