// Package batch converts many skins concurrently. Each skin runs its whole
// pipeline independently; the only shared state is the read-only palette and
// the concurrency-safe color cache inside the matcher, so one bad skin never
// disturbs its siblings.
package batch

import (
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"mc-skin-statue/internal/export"
	"mc-skin-statue/internal/logger"
	"mc-skin-statue/internal/palette"
	"mc-skin-statue/internal/pose"
	"mc-skin-statue/internal/preview"
	"mc-skin-statue/internal/rig"
	"mc-skin-statue/internal/skin"
	"mc-skin-statue/internal/voxel"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Matcher     *palette.Matcher
	Pose        pose.Pose
	Model       string // classic, slim, or auto
	Solid       bool
	Dither      bool
	Preview     bool
	PreviewSize int
	Supersample int
	Workers     int
}

// Result holds the outcome of processing one skin.
type Result struct {
	Source  string `json:"source"`
	Name    string `json:"name"`
	Output  string `json:"output,omitempty"`
	Blocks  int    `json:"blocks,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Run processes all sources using a worker pool. Failures are collected in
// the results, never propagated as a whole-batch fault.
func Run(cfg Config, sources []string) []Result {
	total := len(sources)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logger.Log.Info("progress",
						zap.Int64("done", p),
						zap.Int("total", total),
						zap.Float64("skins_per_sec", rate))
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	taskChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range taskChan {
				results[idx] = processSkin(cfg, sources[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range sources {
		taskChan <- i
	}
	close(taskChan)

	wg.Wait()
	close(done)

	return results
}

func processSkin(cfg Config, source string) Result {
	name := statueName(source)
	res := Result{Source: source, Name: name}

	tex, err := skin.Acquire(source)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	variant, err := skin.ResolveVariant(cfg.Model, tex)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	r, err := rig.New(variant)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	set, err := voxel.Build(tex, r, cfg.Pose, cfg.Matcher, voxel.Options{
		Solid:  cfg.Solid,
		Dither: cfg.Dither,
	})
	if err != nil {
		res.Error = err.Error()
		return res
	}

	outPath := filepath.Join(cfg.OutputDir, name+export.Ext)
	doc := export.NewDocument(set, cfg.Matcher.Palette(), source, string(variant), cfg.Pose.Name, !cfg.Solid)
	if err := export.Write(outPath, doc); err != nil {
		res.Error = err.Error()
		return res
	}

	if cfg.Preview {
		ss := cfg.Supersample
		if ss < 1 {
			ss = 1
		}
		img := preview.Render(set, cfg.Matcher.Palette(), blockPx(set, cfg.PreviewSize)*ss)
		img = preview.Downsample(img, cfg.PreviewSize)
		previewPath := filepath.Join(cfg.OutputDir, name+".webp")
		if err := preview.WriteWebP(previewPath, img); err != nil {
			// A failed preview does not invalidate the statue itself.
			logger.Log.Warn("preview failed", zap.String("skin", name), zap.Error(err))
		}
	}

	res.Output = outPath
	res.Blocks = set.Len()
	res.Success = true
	return res
}

func blockPx(s *voxel.Set, target int) int {
	min, max, ok := s.Bounds()
	if !ok {
		return 1
	}
	longest := max.X - min.X + 1
	if dy := max.Y - min.Y + 1; dy > longest {
		longest = dy
	}
	px := target / longest
	if px < 1 {
		px = 1
	}
	return px
}

// statueName derives the output base name from the source: file stem for
// paths, sanitized tail for URLs, the name itself for usernames.
func statueName(source string) string {
	base := filepath.Base(source)
	if strings.Contains(source, "://") {
		if i := strings.IndexAny(base, "?#"); i >= 0 {
			base = base[:i]
		}
		if base == "" || base == "." || base == "/" {
			return "downloaded_skin"
		}
	}
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" {
		return "skin"
	}
	return base
}
