package filesystem

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/custodia-labs/legible/internal/core/domain"
)

// Expand turns arguments into file paths. Glob patterns (including **)
// are expanded and sorted; plain paths and "-" pass through. Duplicates
// are dropped, keeping first-seen order across arguments.
func Expand(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, arg := range args {
		if arg == StdinPath || !isPattern(arg) {
			add(ResolvePath(arg))
			continue
		}

		if !doublestar.ValidatePathPattern(arg) {
			return nil, fmt.Errorf("%w: invalid glob pattern %q", domain.ErrInvalidInput, arg)
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: no files match %q", domain.ErrNotFound, arg)
		}

		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}
	return paths, nil
}

func isPattern(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
