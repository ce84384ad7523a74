package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"mirror-room", "Mirror Room"},
		{"glass_spheres", "Glass Spheres"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

// writeSceneFile creates name in dir with the given content
func writeSceneFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestParseSceneMetadata(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		file        string
		content     string
		name        string
		description string
	}{
		{
			file: "complete.txt",
			content: `# Scene: Mirror Room
# Description: Two mirrors facing each other

cam 0 0 0 0 0 -1 0 1 0 1 1`,
			name:        "Mirror Room",
			description: "Two mirrors facing each other",
		},
		{
			file:    "no_metadata.txt",
			content: `cam 0 0 0 0 0 -1 0 1 0 1 1`,
			name:    "No Metadata",
		},
		{
			file: "late_comment.txt",
			content: `cam 0 0 0 0 0 -1 0 1 0 1 1
# Scene: Ignored`,
			name: "Late Comment",
		},
		{
			file: "empty_name.txt",
			content: `#Scene:
#Description:   Extra spaces  `,
			name:        "Empty Name",
			description: "Extra spaces",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			path := writeSceneFile(t, dir, tc.file, tc.content)

			info, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata() error: %v", err)
			}
			if info.Name != tc.name {
				t.Errorf("Name = %q, want %q", info.Name, tc.name)
			}
			if info.Description != tc.description {
				t.Errorf("Description = %q, want %q", info.Description, tc.description)
			}
			if info.Type != "file" || info.FilePath != path {
				t.Errorf("Expected file scene at %s, got type %q path %q", path, info.Type, info.FilePath)
			}
		})
	}
}

func TestParseSceneMetadata_MissingFile(t *testing.T) {
	if _, err := ParseSceneMetadata(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "zeta.txt", "# Scene: Alpha\n")
	writeSceneFile(t, dir, "beta.txt", "")
	writeSceneFile(t, dir, "notes.md", "# Scene: Not a scene\n")

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scene files, got %d", len(scenes))
	}
	// Sorted by display name, not file name
	if scenes[0].Name != "Alpha" || scenes[1].Name != "Beta" {
		t.Errorf("Unexpected order: %q, %q", scenes[0].Name, scenes[1].Name)
	}
	if scenes[0].ID != "file:zeta" {
		t.Errorf("ID = %q, want %q", scenes[0].ID, "file:zeta")
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Errorf("ListSceneFiles() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected an empty list, got %v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "extra.txt", "")

	scenes, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	builtins := BuiltinSceneIDs()
	if len(scenes) != len(builtins)+1 {
		t.Fatalf("Expected %d scenes, got %d", len(builtins)+1, len(scenes))
	}
	for i, id := range builtins {
		if scenes[i].ID != id || scenes[i].Type != "builtin" {
			t.Errorf("Scene %d: expected built-in %q, got %+v", i, id, scenes[i])
		}
	}
	if last := scenes[len(scenes)-1]; last.Type != "file" {
		t.Errorf("Expected scene files after built-ins, got %+v", last)
	}
}
