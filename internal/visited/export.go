package visited

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
)

// Export writes the mask to path as a PNG, creating the directory if needed.
func Export(m *Mask, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("visited: %w", err)
	}
	if err := imgio.Save(path, m.Image(), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("visited: export %s: %w", path, err)
	}
	return nil
}
