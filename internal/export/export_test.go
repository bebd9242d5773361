package export

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InkPad/internal/state"
)

var testStrokes = []state.Stroke{
	{
		ID:     "a",
		Points: []state.Point{{X: 100, Y: 100}, {X: 500, Y: 300}, {X: 900, Y: 100}},
		Color:  color.NRGBA{A: 255},
		Width:  8,
	},
	{
		ID:     "b",
		Points: []state.Point{{X: 100, Y: 500}, {X: 900, Y: 500}},
		Color:  color.NRGBA{R: 255, A: 255},
		Width:  4,
	},
}

func TestFilename(t *testing.T) {
	name := Filename("png")
	assert.Regexp(t, regexp.MustCompile(`^sketch_\d{8}_\d{6}\.png$`), name)
}

func TestPNG(t *testing.T) {
	dir := t.TempDir()
	out, err := PNG(testStrokes, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	// Sized exactly to the logical canvas.
	assert.Equal(t, int(state.CanvasWidth), img.Bounds().Dx())
	assert.Equal(t, int(state.CanvasHeight), img.Bounds().Dy())

	// Corners carry no ink, so the white background shows through, opaque.
	for _, p := range [][2]int{{0, 0}, {999, 0}, {0, 599}, {999, 599}} {
		r, g, b, a := img.At(p[0], p[1]).RGBA()
		assert.Equal(t, uint32(0xffff), a, "corner %v alpha", p)
		assert.Equal(t, uint32(0xffff), r, "corner %v red", p)
		assert.Equal(t, uint32(0xffff), g, "corner %v green", p)
		assert.Equal(t, uint32(0xffff), b, "corner %v blue", p)
	}

	// The black stroke starts at (100,100); its ink darkens that spot.
	r, g, b, _ := img.At(100, 100).RGBA()
	assert.Less(t, r+g+b, uint32(3*0x8000), "expected ink at the stroke start")
}

func TestPNGEmptyBoard(t *testing.T) {
	out, err := PNG(nil, t.TempDir())
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, int(state.CanvasWidth), img.Bounds().Dx())

	r, g, b, a := img.At(500, 300).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
}

func TestPNGBadDir(t *testing.T) {
	_, err := PNG(testStrokes, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestPDF(t *testing.T) {
	out, err := PDF(testStrokes, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ".pdf", filepath.Ext(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFEmptyBoard(t *testing.T) {
	// No content still yields a valid single-page document.
	out, err := PDF(nil, t.TempDir())
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestSVGFile(t *testing.T) {
	out, err := SVG(testStrokes, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ".svg", filepath.Ext(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `xmlns="http://www.w3.org/2000/svg"`)
	assert.Contains(t, string(data), "<path")
}
