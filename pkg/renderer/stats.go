package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera rays traced
	RowsRendered int           // Rows completed before the render finished or stopped
	Tasks        int           // Number of row-range tasks the image was split into
	Workers      int           // Number of workers that rendered the tasks
	Duration     time.Duration // Wall time of the render
}

// Merge adds the counters of a finished task to the totals
func (rs *RenderStats) Merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
	rs.RowsRendered += other.RowsRendered
}

// AverageSamples returns the average number of camera rays per pixel
func (rs RenderStats) AverageSamples() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.TotalSamples) / float64(rs.TotalPixels)
}
