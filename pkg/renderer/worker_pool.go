package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/geometry"
	"github.com/eternalStudent/RayTracer/pkg/scene"
)

// RowTask represents a row range rendering task for the worker pool
type RowTask struct {
	Rows   *RowRange
	TaskID int          // For deterministic ordering
	Buffer *PixelBuffer // Shared output buffer to write to
}

// RowResult contains the result from rendering a row range
type RowResult struct {
	TaskID int
	Rows   *RowRange
	Stats  RenderStats
	Error  error
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row range tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks sizes the queues so submitting never blocks.
func NewWorkerPool(s *scene.Scene, camera *geometry.Camera, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, maxTasks),
		resultQueue: make(chan RowResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   NewRaytracer(s, camera),
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers. Workers stop taking on rows once ctx is done.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		stats, err := w.renderRows(ctx, task)
		w.resultQueue <- RowResult{
			TaskID: task.TaskID,
			Rows:   task.Rows,
			Stats:  stats,
			Error:  err,
		}
	}
}

// renderRows renders every pixel of the task's rows into the shared buffer.
// Cancellation is checked before each row, never inside one.
func (w *Worker) renderRows(ctx context.Context, task RowTask) (RenderStats, error) {
	var stats RenderStats
	sampler := core.NewRandomSampler(task.Rows.Random)
	samplesPerPixel := w.raytracer.SamplesPerPixel()

	for y := task.Rows.StartY; y < task.Rows.EndY; y++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		for x := 0; x < task.Buffer.Width; x++ {
			task.Buffer.Set(x, y, w.raytracer.PixelColor(x, y, sampler))
		}
		stats.RowsRendered++
		stats.TotalPixels += task.Buffer.Width
		stats.TotalSamples += task.Buffer.Width * samplesPerPixel
	}
	return stats, nil
}
