package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"time"

	"github.com/eternalStudent/RayTracer/pkg/renderer"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	SceneRequest
	Workers int   `json:"workers"` // Number of parallel workers (0 = CPU count)
	Seed    int64 `json:"seed"`    // Base random seed
}

// RenderResult is the final SSE payload of a render
type RenderResult struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	Tasks          int     `json:"tasks"`
	Workers        int     `json:"workers"`
}

// renderOutcome carries the result of the background render to the handler
type renderOutcome struct {
	buffer *renderer.PixelBuffer
	stats  renderer.RenderStats
	err    error
}

// handleRender renders a scene, streaming console output and the final
// image via SSE. A client disconnect cancels the render.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan := make(chan ConsoleMessage, 100)
	logger := NewWebLogger(req.Scene, consoleChan)

	sceneObj, err := s.loadScene(req.Scene, logger)
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}

	options := renderer.DefaultRenderOptions()
	options.NumWorkers = req.Workers
	options.Seed = req.Seed

	// Use request context to detect client disconnection
	ctx := r.Context()
	startTime := time.Now()

	done := make(chan renderOutcome, 1)
	go func() {
		buffer, stats, err := renderer.Render(ctx, sceneObj, req.Width, req.Height, options, logger)
		done <- renderOutcome{buffer: buffer, stats: stats, err: err}
	}()

	var outcome renderOutcome
	for waiting := true; waiting; {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(w, msg)
		case outcome = <-done:
			waiting = false
		}
	}

	// Flush whatever the render logged before finishing
	for drained := false; !drained; {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(w, msg)
		default:
			drained = true
		}
	}

	if outcome.err != nil {
		s.sendSSEError(w, fmt.Sprintf("Render error: %v", outcome.err))
		return
	}

	imageData, err := imageToBase64PNG(outcome.buffer.ToImage())
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	result := RenderResult{
		ImageData: imageData,
		Stats: Stats{
			TotalPixels:    outcome.stats.TotalPixels,
			TotalSamples:   outcome.stats.TotalSamples,
			AverageSamples: outcome.stats.AverageSamples(),
			Tasks:          outcome.stats.Tasks,
			Workers:        outcome.stats.Workers,
		},
		ElapsedMs: time.Since(startTime).Milliseconds(),
	}
	data, err := json.Marshal(result)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("failed to encode result: %v", err))
		return
	}

	s.sendSSEEvent(w, "result", string(data))
	s.sendSSEEvent(w, "complete", "Rendering completed")
}

// parseRenderRequest parses request parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	values := r.URL.Query()

	sceneReq, err := parseSceneRequest(values)
	if err != nil {
		return nil, err
	}
	req := &RenderRequest{
		SceneRequest: sceneReq,
		Seed:         renderer.DefaultRenderOptions().Seed,
	}

	if req.Workers, err = parseIntParam(values, "workers", 0, 0, 256); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(values, "seed", int(req.Seed), 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	return req, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// sendConsoleMessage forwards a logged line as a console event
func (s *Server) sendConsoleMessage(w http.ResponseWriter, msg ConsoleMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, "console", string(data))
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}
