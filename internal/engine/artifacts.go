package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Artifacts are the resolved on-disk inputs for one model: ONNX graphs keyed
// by base name, a tokenizer file and a metadata file.
type Artifacts struct {
	Dir       string
	Graphs    map[string]string
	Tokenizer string
	Metadata  string
}

// ResolveArtifacts scans <modelsDir>/<model> for the files the runtime needs.
// Every *.onnx file is a graph. tokenizer.json and a *_meta.json (or
// meta.json) are required.
func ResolveArtifacts(modelsDir, model string) (Artifacts, error) {
	var a Artifacts
	base, err := expandHome(modelsDir)
	if err != nil {
		return a, err
	}
	dir, err := filepath.Abs(filepath.Join(base, model))
	if err != nil {
		return a, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return a, ErrArtifactsMissing(fmt.Sprintf("model directory %s: %v", dir, err))
	}
	a.Dir = dir
	a.Graphs = map[string]string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		lower := strings.ToLower(name)
		p := filepath.Join(dir, name)
		switch {
		case strings.HasSuffix(lower, ".onnx"):
			a.Graphs[strings.TrimSuffix(name, filepath.Ext(name))] = p
		case lower == "tokenizer.json":
			a.Tokenizer = p
		case lower == "meta.json" || strings.HasSuffix(lower, "_meta.json"):
			a.Metadata = p
		}
	}
	if len(a.Graphs) == 0 {
		return a, ErrArtifactsMissing("no .onnx graphs in " + dir)
	}
	if a.Tokenizer == "" {
		return a, ErrArtifactsMissing("tokenizer.json not found in " + dir)
	}
	if a.Metadata == "" {
		return a, ErrArtifactsMissing("model metadata not found in " + dir)
	}
	return a, nil
}

// expandHome expands a leading '~' to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
