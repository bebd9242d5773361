package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"InkPad/internal/scene"
	"InkPad/internal/state"
)

// PNG renders the committed strokes to a raster image sized exactly to the
// logical canvas and writes it under a timestamped name in dir. The scene
// is serialized to SVG and rendered from that, so the file shows exactly
// what a reader of the SVG export sees, composed over opaque white.
// Returns the written path.
func PNG(strokes []state.Stroke, dir string) (string, error) {
	w, h := int(state.CanvasWidth), int(state.CanvasHeight)

	icon, err := oksvg.ReadIconStream(strings.NewReader(scene.SVG(strokes)))
	if err != nil {
		return "", fmt.Errorf("render scene: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	icon.Draw(rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, img, img.Bounds())), 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}

	out := filepath.Join(dir, Filename("png"))
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	log.Printf("[export] wrote %s (%d strokes)", out, len(strokes))
	return out, nil
}
