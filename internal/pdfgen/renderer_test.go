package pdfgen

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < 4; i++ {
		img.Set(i, i, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRenderer_Render(t *testing.T) {
	r, err := NewRenderer(Config{})
	require.NoError(t, err)

	out, err := r.Render(testInvoice(), testCompany(), RenderOptions{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Greater(t, len(out), 1000)
}

func TestRenderer_RenderDeterministic(t *testing.T) {
	r, err := NewRenderer(Config{})
	require.NoError(t, err)

	inv := testInvoice()
	company := testCompany()
	first, err := r.Render(inv, company, RenderOptions{})
	require.NoError(t, err)
	second, err := r.Render(inv, company, RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderer_RenderWithImages(t *testing.T) {
	r, err := NewRenderer(Config{})
	require.NoError(t, err)

	pngBytes := testPNG(t)
	out, err := r.Render(testInvoice(), testCompany(), RenderOptions{
		Logo:      pngBytes,
		Signature: pngBytes,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestNewRenderer_MissingFontFile(t *testing.T) {
	_, err := NewRenderer(Config{FontPath: "testdata/does-not-exist.ttf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading PDF font")
}
