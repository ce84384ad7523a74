package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/geometry"
	"github.com/eternalStudent/RayTracer/pkg/lights"
	"github.com/eternalStudent/RayTracer/pkg/material"
	"github.com/eternalStudent/RayTracer/pkg/renderer"
	"github.com/eternalStudent/RayTracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"` // Traced color of the pixel
	Material     map[string]interface{} `json:"material"`
	Properties   map[string]interface{} `json:"properties"`
}

// InspectResult is the first surface seen through a pixel
type InspectResult struct {
	Hit      bool
	Info     geometry.Hit
	Distance float64 // From the camera position to the hit point
	Color    core.Color
}

// inspectPixel traces the camera ray through pixel (x, y) once
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) (InspectResult, error) {
	camera, err := geometry.NewCamera(sceneObj.Camera, width, height)
	if err != nil {
		return InspectResult{}, err
	}

	raytracer := renderer.NewRaytracer(sceneObj, camera)
	ray := raytracer.PixelRay(pixelX, pixelY)
	color := raytracer.Trace(ray, 0, core.NewSeededSampler(0))

	hit, isHit := geometry.ClosestHit(sceneObj.Primitives, ray.Advance(lights.Epsilon))
	result := InspectResult{Hit: isHit, Info: hit, Color: color}
	if isHit {
		result.Distance = hit.Point.Subtract(ray.Origin).Length()
	}
	return result, nil
}

// extractMaterialInfo lists the shading coefficients of a material
func extractMaterialInfo(mat *material.Material) map[string]interface{} {
	return map[string]interface{}{
		"diffuse":      colorArray(mat.Diffuse),
		"specular":     colorArray(mat.Specular),
		"reflection":   colorArray(mat.Reflection),
		"phong":        mat.Phong,
		"transparency": mat.Transparency,
		"color": fmt.Sprintf("#%02x%02x%02x",
			int(min(mat.Diffuse.R, 1)*255), int(min(mat.Diffuse.G, 1)*255), int(min(mat.Diffuse.B, 1)*255)),
	}
}

func extractGeometryInfo(primitive geometry.Primitive) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := primitive.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["normal"] = vecArray(geom.Normal)
		properties["offset"] = geom.Offset
		return "plane", properties

	case *geometry.Box:
		properties["min"] = vecArray(geom.Min)
		properties["max"] = vecArray(geom.Max)
		return "box", properties

	default:
		return "unknown", properties
	}
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	req, err := parseSceneRequest(values)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	pixelX, err := strconv.Atoi(values.Get("x"))
	if err != nil || pixelX < 0 || pixelX >= req.Width {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
		return
	}
	pixelY, err := strconv.Atoi(values.Get("y"))
	if err != nil || pixelY < 0 || pixelY >= req.Height {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
		return
	}

	sceneObj, err := s.loadScene(req.Scene, core.NopLogger())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := sceneObj.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result, err := inspectPixel(sceneObj, req.Width, req.Height, pixelX, pixelY)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	response := InspectResponse{
		Hit:   result.Hit,
		Color: colorArray(result.Color),
	}
	if result.Hit {
		response.GeometryType, response.Properties = extractGeometryInfo(result.Info.Primitive)
		response.Point = vecArray(result.Info.Point)
		response.Normal = vecArray(result.Info.Normal)
		response.Distance = result.Distance
		response.Material = extractMaterialInfo(result.Info.Material())
	}

	writeJSON(w, http.StatusOK, response)
}
