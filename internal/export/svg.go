package export

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"InkPad/internal/scene"
	"InkPad/internal/state"
)

// SVG writes the serialized vector scene itself, the same document the
// raster export renders from. Returns the written path.
func SVG(strokes []state.Stroke, dir string) (string, error) {
	out := filepath.Join(dir, Filename("svg"))
	if err := os.WriteFile(out, []byte(scene.SVG(strokes)), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	log.Printf("[export] wrote %s (%d strokes)", out, len(strokes))
	return out, nil
}
