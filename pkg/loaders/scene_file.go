package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/geometry"
	"github.com/eternalStudent/RayTracer/pkg/lights"
	"github.com/eternalStudent/RayTracer/pkg/material"
	"github.com/eternalStudent/RayTracer/pkg/scene"
)

// recordHandler applies one parsed record to the scene under construction
type recordHandler func(p *SceneParser, params []string) error

// records maps the three-letter record codes to their handlers
var records = map[string]recordHandler{
	"cam": (*SceneParser).parseCamera,
	"set": (*SceneParser).parseSettings,
	"mtl": (*SceneParser).parseMaterial,
	"sph": (*SceneParser).parseSphere,
	"pln": (*SceneParser).parsePlane,
	"box": (*SceneParser).parseBox,
	"lgt": (*SceneParser).parseLight,
}

// SceneParser encapsulates the state and logic for parsing scene files
type SceneParser struct {
	scene     *scene.Scene
	logger    core.Logger
	lineNum   int
	hasCamera bool
}

// NewSceneParser creates a parser that reports progress through logger
func NewSceneParser(logger core.Logger) *SceneParser {
	if logger == nil {
		logger = core.NopLogger()
	}
	return &SceneParser{
		scene:  scene.NewScene(geometry.CameraConfig{}, scene.DefaultSettings()),
		logger: logger,
	}
}

// ParseScene parses scene file content from an io.Reader
func ParseScene(reader io.Reader, logger core.Logger) (*scene.Scene, error) {
	parser := NewSceneParser(logger)

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		parser.lineNum++
		if err := parser.processLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %v", err)
	}

	if !parser.hasCamera {
		return nil, fmt.Errorf("scene has no camera (cam) record")
	}
	return parser.scene, nil
}

// LoadScene loads and parses a scene file
func LoadScene(filename string, logger core.Logger) (*scene.Scene, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %v", err)
	}
	defer file.Close()

	if logger == nil {
		logger = core.NopLogger()
	}
	logger.Printf("Started parsing scene file %s\n", filename)
	s, err := ParseScene(file, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	logger.Printf("Finished parsing scene file %s\n", filename)
	return s, nil
}

// processLine parses one line. Blank lines and '#' comments are skipped,
// unknown records are logged and ignored.
func (p *SceneParser) processLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	fields := strings.Fields(line)
	code := strings.ToLower(fields[0])
	if len(code) > 3 {
		code = code[:3]
	}

	handler, ok := records[code]
	if !ok {
		p.logger.Printf("Did not recognize object: %s (line %d)\n", fields[0], p.lineNum)
		return nil
	}
	if err := handler(p, fields[1:]); err != nil {
		return fmt.Errorf("line %d: %s: %w", p.lineNum, code, err)
	}
	return nil
}

func (p *SceneParser) parseCamera(params []string) error {
	v, err := parseFloats(params, 11, 11)
	if err != nil {
		return err
	}
	p.scene.Camera = geometry.CameraConfig{
		Position:       core.NewVec3(v[0], v[1], v[2]),
		LookAt:         core.NewVec3(v[3], v[4], v[5]),
		Up:             core.NewVec3(v[6], v[7], v[8]),
		ScreenDistance: v[9],
		ScreenWidth:    v[10],
	}
	p.hasCamera = true
	p.logger.Printf("Parsed camera parameters (line %d)\n", p.lineNum)
	return nil
}

func (p *SceneParser) parseSettings(params []string) error {
	v, err := parseFloats(params[:min(3, len(params))], 3, 3)
	if err != nil {
		return err
	}
	counts, err := parseInts(params[3:], 2, 3)
	if err != nil {
		return err
	}

	settings := scene.DefaultSettings()
	settings.Background = core.NewColor(v[0], v[1], v[2])
	settings.ShadowRays = counts[0]
	settings.MaxDepth = counts[1]
	if len(counts) == 3 {
		settings.Samples = counts[2]
		settings.AntiAliasing = counts[2] > 1
	}
	p.scene.Settings = settings
	p.logger.Printf("Parsed general settings (line %d)\n", p.lineNum)
	return nil
}

func (p *SceneParser) parseMaterial(params []string) error {
	v, err := parseFloats(params, 11, 11)
	if err != nil {
		return err
	}
	p.scene.AddMaterial(material.NewMaterial(
		core.NewColor(v[0], v[1], v[2]),
		core.NewColor(v[3], v[4], v[5]),
		core.NewColor(v[6], v[7], v[8]),
		v[9],
		v[10],
	))
	p.logger.Printf("Parsed material (line %d)\n", p.lineNum)
	return nil
}

func (p *SceneParser) parseSphere(params []string) error {
	v, mat, err := p.parseShape(params, 4)
	if err != nil {
		return err
	}
	p.scene.AddPrimitive(geometry.NewSphere(core.NewVec3(v[0], v[1], v[2]), v[3], mat))
	p.logger.Printf("Parsed sphere (line %d)\n", p.lineNum)
	return nil
}

func (p *SceneParser) parsePlane(params []string) error {
	v, mat, err := p.parseShape(params, 4)
	if err != nil {
		return err
	}
	p.scene.AddPrimitive(geometry.NewPlane(core.NewVec3(v[0], v[1], v[2]), v[3], mat))
	p.logger.Printf("Parsed plane (line %d)\n", p.lineNum)
	return nil
}

func (p *SceneParser) parseBox(params []string) error {
	v, mat, err := p.parseShape(params, 6)
	if err != nil {
		return err
	}
	p.scene.AddPrimitive(geometry.NewBox(core.NewVec3(v[0], v[1], v[2]), core.NewVec3(v[3], v[4], v[5]), mat))
	p.logger.Printf("Parsed box (line %d)\n", p.lineNum)
	return nil
}

func (p *SceneParser) parseLight(params []string) error {
	v, err := parseFloats(params, 9, 9)
	if err != nil {
		return err
	}
	p.scene.AddLight(lights.NewLight(
		core.NewVec3(v[0], v[1], v[2]),
		core.NewColor(v[3], v[4], v[5]),
		v[6], v[7], v[8],
	))
	p.logger.Printf("Parsed light (line %d)\n", p.lineNum)
	return nil
}

// parseShape reads n numbers followed by a 1-based index into the
// materials defined so far
func (p *SceneParser) parseShape(params []string, n int) ([]float64, *material.Material, error) {
	if len(params) != n+1 {
		return nil, nil, fmt.Errorf("expected %d values, got %d", n+1, len(params))
	}
	v, err := parseFloats(params[:n], n, n)
	if err != nil {
		return nil, nil, err
	}
	index, err := strconv.Atoi(params[n])
	if err != nil {
		return nil, nil, fmt.Errorf("invalid material index %q", params[n])
	}
	if index < 1 || index > len(p.scene.Materials) {
		return nil, nil, fmt.Errorf("material index %d out of range (%d materials defined)", index, len(p.scene.Materials))
	}
	return v, p.scene.Materials[index-1], nil
}

// parseFloats converts between minCount and maxCount fields to float64
func parseFloats(params []string, minCount, maxCount int) ([]float64, error) {
	if len(params) < minCount || len(params) > maxCount {
		return nil, countError(len(params), minCount, maxCount)
	}
	values := make([]float64, len(params))
	for i, param := range params {
		value, err := strconv.ParseFloat(param, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", param)
		}
		values[i] = value
	}
	return values, nil
}

// parseInts converts between minCount and maxCount fields to int
func parseInts(params []string, minCount, maxCount int) ([]int, error) {
	if len(params) < minCount || len(params) > maxCount {
		return nil, countError(len(params), minCount, maxCount)
	}
	values := make([]int, len(params))
	for i, param := range params {
		value, err := strconv.Atoi(param)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", param)
		}
		values[i] = value
	}
	return values, nil
}

func countError(got, minCount, maxCount int) error {
	if minCount == maxCount {
		return fmt.Errorf("expected %d values, got %d", minCount, got)
	}
	return fmt.Errorf("expected %d to %d values, got %d", minCount, maxCount, got)
}

// validateFilePath rejects paths that cannot name a scene file
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}
	if !strings.EqualFold(filepath.Ext(filename), ".txt") {
		return fmt.Errorf("invalid file type: only .txt scene files are allowed")
	}
	return nil
}
