package prompt

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// MaxFiles bounds the working-tree snapshot embedded in prompts.
const MaxFiles = 20

// sourceExts are the extensions considered source-like for the snapshot.
var sourceExts = map[string]bool{
	".go":   true,
	".py":   true,
	".js":   true,
	".ts":   true,
	".html": true,
	".css":  true,
	".yaml": true,
	".yml":  true,
	".sql":  true,
	".sh":   true,
}

// skipDirs are dependency-manager and VCS directories excluded from the
// snapshot.
var skipDirs = map[string]bool{
	"node_modules": true,
	"__pycache__":  true,
	"vendor":       true,
	".git":         true,
	"venv":         true,
	".venv":        true,
}

// RelevantFiles returns up to limit source-like file paths under root,
// in lexical walk order. Errors are best-effort: an unreadable subtree
// yields whatever was collected before it.
func RelevantFiles(root string, limit int) []string {
	var files []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fs.SkipDir
		}
		if d.IsDir() {
			if path != root && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return fs.SkipDir
			}
			return nil
		}
		if len(files) >= limit {
			return fs.SkipAll
		}
		if sourceExts[filepath.Ext(path)] {
			files = append(files, path)
		}
		return nil
	})

	return files
}
