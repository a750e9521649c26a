package runner

import (
	"os"
	"path/filepath"

	"github.com/awwright/grammarswiki-sub003/abnf"
)

// FilesystemLoader returns a catalog.Loader that resolves import filenames
// relative to baseDir, the directory containing the root catalog file.
func FilesystemLoader(baseDir string) func(filename string) (abnf.Rulelist, error) {
	return func(filename string) (abnf.Rulelist, error) {
		bin, err := os.ReadFile(filepath.Join(baseDir, filename))
		if err != nil {
			return abnf.Rulelist{}, err
		}
		return abnf.ParseRulelist(abnf.Normalize(bin))
	}
}
