package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
)

// JavaFiles matches Java source files and skips build output and hidden directories
func JavaFiles(info os.FileInfo) bool {
	name := info.Name()
	if info.IsDir() {
		switch name {
		case "target", "build", "out":
			return false
		}
		return !strings.HasPrefix(name, ".")
	}
	return filepath.Ext(name) == ".java"
}

// Sources returns the paths of Java files under root in lexical order
func Sources(ctx context.Context, fs afs.Service, root string) ([]string, error) {
	var result []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if !JavaFiles(info) {
			return false, nil
		}
		if info.IsDir() {
			return true, nil
		}
		result = append(result, filepath.Join(root, filepath.FromSlash(parent), info.Name()))
		return true, nil
	}
	if err := fs.Walk(ctx, root, visitor); err != nil {
		return nil, fmt.Errorf("failed to walk %v: %w", root, err)
	}
	sort.Strings(result)
	return result, nil
}
