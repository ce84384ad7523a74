package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/scene"
)

// LoadNamedScene resolves name to a built-in scene, a scene file called
// <name>.txt in scenesDir, or a path to a .txt scene file, in that order
func LoadNamedScene(name, scenesDir string, logger core.Logger) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("scene name cannot be empty")
	}
	if logger == nil {
		logger = core.NopLogger()
	}

	if s, err := scene.NewBuiltinScene(name); err == nil {
		logger.Printf("Using built-in scene %s...\n", name)
		return s, nil
	}

	path := name
	if !strings.EqualFold(filepath.Ext(name), ".txt") {
		path = filepath.Join(scenesDir, name+".txt")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("unknown scene %q: not a built-in scene and %s does not exist", name, path)
	}

	return LoadScene(path, logger)
}

// LoadSceneInDir resolves name to a built-in scene or to a scene file inside
// scenesDir. Unlike LoadNamedScene it never opens a file outside scenesDir:
// absolute paths, directory components and ".." are rejected.
func LoadSceneInDir(name, scenesDir string, logger core.Logger) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("scene name cannot be empty")
	}
	if logger == nil {
		logger = core.NopLogger()
	}

	if s, err := scene.NewBuiltinScene(name); err == nil {
		logger.Printf("Using built-in scene %s...\n", name)
		return s, nil
	}

	path, err := containedScenePath(name, scenesDir)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("unknown scene %q: not a built-in scene and not in the scenes directory", name)
	}

	return LoadScene(path, logger)
}

// containedScenePath maps a bare scene name to scenesDir/<name>.txt
func containedScenePath(name, scenesDir string) (string, error) {
	if strings.Contains(name, "\x00") {
		return "", fmt.Errorf("invalid scene name: null bytes not allowed")
	}
	if filepath.IsAbs(name) || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid scene name %q: must be a file name in the scenes directory", name)
	}

	if !strings.EqualFold(filepath.Ext(name), ".txt") {
		name += ".txt"
	}

	root := filepath.Clean(scenesDir)
	path := filepath.Join(root, name)
	rel, err := filepath.Rel(root, path)
	if err != nil || rel != filepath.Base(path) {
		return "", fmt.Errorf("invalid scene name %q: directory traversal not allowed", name)
	}
	return path, nil
}
