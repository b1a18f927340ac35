// Package exporter writes rendered notebooks to disk.
package exporter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aretw0/espalier/pkg/schema"
)

// Save writes content into dir under name with a .txt extension,
// refusing to clobber existing files: a taken name gets a numeric
// suffix, first name0.txt, then name1.txt, and so on. It returns the
// path actually written.
func Save(dir, name, content string) (string, error) {
	if err := schema.NonEmpty("name", name); err != nil {
		return "", err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("save path: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("save path is not a directory: %s", dir)
	}

	path := filepath.Join(dir, name+".txt")
	for i := 0; ; i++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			_, werr := f.WriteString(content)
			if cerr := f.Close(); werr == nil {
				werr = cerr
			}
			if werr != nil {
				return "", fmt.Errorf("write notebook: %w", werr)
			}
			return path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("create notebook: %w", err)
		}
		path = filepath.Join(dir, name+strconv.Itoa(i)+".txt")
	}
}
