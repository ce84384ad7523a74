package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/geometry"
	"github.com/eternalStudent/RayTracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderOptions contains configuration for a parallel render
type RenderOptions struct {
	NumWorkers  int   // Number of parallel workers (0 = use CPU count)
	RowsPerTask int   // Rows per task handed to a worker
	Seed        int64 // Base seed; task i uses Seed+i
}

// DefaultRenderOptions returns sensible default values
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		NumWorkers:  0,
		RowsPerTask: 16,
		Seed:        42,
	}
}

// MergeRenderOptions fills zero-valued fields of options from the defaults
func MergeRenderOptions(options RenderOptions) RenderOptions {
	defaults := DefaultRenderOptions()
	if options.RowsPerTask <= 0 {
		options.RowsPerTask = defaults.RowsPerTask
	}
	if options.NumWorkers < 0 {
		options.NumWorkers = defaults.NumWorkers
	}
	return options
}

// Render traces every pixel of a width x height image of the scene.
// The scene is validated before any work starts. Rows are split into tasks
// rendered by a worker pool; a cancelled ctx stops workers between rows and
// Render returns ctx.Err() together with the partially filled buffer.
func Render(ctx context.Context, s *scene.Scene, width, height int, options RenderOptions, logger core.Logger) (*PixelBuffer, RenderStats, error) {
	if s == nil {
		return nil, RenderStats{}, fmt.Errorf("scene is nil")
	}
	if logger == nil {
		logger = core.NopLogger()
	}
	if err := s.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid scene: %w", err)
	}
	camera, err := geometry.NewCamera(s.Camera, width, height)
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid camera: %w", err)
	}

	options = MergeRenderOptions(options)
	start := time.Now()

	buffer := NewPixelBuffer(width, height)
	tasks := SplitRows(height, options.RowsPerTask, options.Seed)

	pool := NewWorkerPool(s, camera, len(tasks), options.NumWorkers)
	stats := RenderStats{
		Tasks:   len(tasks),
		Workers: pool.GetNumWorkers(),
	}

	logger.Printf("Rendering %dx%d: %d primitives, %d lights, %d tasks on %d workers\n",
		width, height, s.GetPrimitiveCount(), len(s.Lights), len(tasks), pool.GetNumWorkers())

	pool.Start(ctx)
	for i, rows := range tasks {
		pool.SubmitTask(RowTask{Rows: rows, TaskID: i, Buffer: buffer})
	}

	// Collect every result before stopping so workers never block on send
	var renderErr error
	for i := 0; i < len(tasks); i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		stats.Merge(result.Stats)
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		logger.Printf("Rows %d-%d done (%d/%d)\n", result.Rows.StartY, result.Rows.EndY-1, i+1, len(tasks))
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	if renderErr != nil {
		logger.Printf("Render stopped after %d of %d rows: %v\n", stats.RowsRendered, height, renderErr)
		return buffer, stats, renderErr
	}

	logger.Printf("Render completed in %v (%.1f samples/pixel)\n", stats.Duration, stats.AverageSamples())
	return buffer, stats, nil
}
