package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/loaders"
	"github.com/eternalStudent/RayTracer/pkg/scene"
)

// Image size limits accepted by the render and inspect endpoints
const (
	minImageSize     = 1
	maxImageSize     = 2000
	defaultImageSize = 400
)

// Server handles web requests for the ray tracer
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server that finds scene files in scenesDir
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// SceneRequest holds the scene parameters shared by every endpoint
type SceneRequest struct {
	Scene  string `json:"scene"`  // Built-in scene ID or scene file name
	Width  int    `json:"width"`  // Image width
	Height int    `json:"height"` // Image height
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenes": scenes})
}

// handleSceneConfig returns the settings of a scene with the request limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := s.loadScene(sceneName, core.NopLogger())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	settings := sceneObj.Settings
	response := map[string]interface{}{
		"scene": sceneName,
		"settings": map[string]interface{}{
			"background":   colorArray(settings.Background),
			"maxDepth":     settings.MaxDepth,
			"shadowRays":   settings.ShadowRays,
			"antiAliasing": settings.AntiAliasing,
			"samples":      settings.Samples,
		},
		"counts": map[string]int{
			"materials":  len(sceneObj.Materials),
			"primitives": sceneObj.GetPrimitiveCount(),
			"lights":     len(sceneObj.Lights),
		},
		"limits": map[string]interface{}{
			"width":  map[string]int{"min": minImageSize, "max": maxImageSize},
			"height": map[string]int{"min": minImageSize, "max": maxImageSize},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

// parseSceneRequest reads scene, width and height from the query
func parseSceneRequest(values url.Values) (SceneRequest, error) {
	req := SceneRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", defaultImageSize, minImageSize, maxImageSize); err != nil {
		return req, err
	}
	if req.Height, err = parseIntParam(values, "height", defaultImageSize, minImageSize, maxImageSize); err != nil {
		return req, err
	}
	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// loadScene resolves a scene name or a "file:" scene ID through the
// built-ins and the scenes directory. Paths outside scenesDir are refused.
func (s *Server) loadScene(name string, logger core.Logger) (*scene.Scene, error) {
	return loaders.LoadSceneInDir(strings.TrimPrefix(name, "file:"), s.scenesDir, logger)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func colorArray(c core.Color) [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
