// Package listfiles provides the list_files capability: it lists the entries
// of a local directory as a bracketed, comma-separated line the model can
// read back as an observation.
package listfiles

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/leofalp/reactor/providers/tool"
)

// Input holds the parameters passed by the language model.
type Input struct {
	// DirectoryPath is the directory to list. Defaults to "." when empty.
	DirectoryPath string `json:"directory_path"`
}

// New returns the list_files capability.
func New() *tool.Tool[Input, string] {
	return tool.New("list_files", List,
		tool.WithDescription("Lists the entries of a directory. Directories are suffixed with a slash."),
	)
}

// List returns the directory entries of in.DirectoryPath, sorted by name and
// formatted as "[a.txt, b.txt]". Directories carry a trailing slash.
func List(_ context.Context, in Input) (string, error) {
	dir := strings.TrimSpace(in.DirectoryPath)
	if dir == "" {
		dir = "."
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return "[" + strings.Join(names, ", ") + "]", nil
}
