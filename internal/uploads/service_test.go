package uploads

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanari-rv/caravan-configurator/pkg/config"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
)

func testConfig(t *testing.T) config.UploadsConfig {
	t.Helper()
	return config.UploadsConfig{
		Dir:            t.TempDir(),
		MaxUploadMB:    1,
		ImageMaxWidth:  200,
		ImageMaxHeight: 150,
		ThumbMaxSize:   50,
		JPEGQuality:    80,
	}
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSaveImageResizesAndWritesThumb(t *testing.T) {
	cfg := testConfig(t)
	svc := NewService(cfg, nil)

	stored, err := svc.SaveImage(context.Background(), bytes.NewReader(pngBytes(t, 400, 300)), "hero.png", "models")
	require.NoError(t, err)

	assert.LessOrEqual(t, stored.Width, cfg.ImageMaxWidth)
	assert.LessOrEqual(t, stored.Height, cfg.ImageMaxHeight)
	assert.Equal(t, "models", filepath.Dir(stored.Path))

	full := filepath.Join(cfg.Dir, filepath.FromSlash(stored.Path))
	thumb := filepath.Join(cfg.Dir, filepath.FromSlash(stored.ThumbPath))
	_, err = os.Stat(full)
	require.NoError(t, err)
	_, err = os.Stat(thumb)
	require.NoError(t, err)
}

func TestSaveImageKeepsSmallImages(t *testing.T) {
	cfg := testConfig(t)
	svc := NewService(cfg, nil)

	stored, err := svc.SaveImage(context.Background(), bytes.NewReader(pngBytes(t, 80, 60)), "swatch.png", "colors")
	require.NoError(t, err)
	assert.Equal(t, 80, stored.Width)
	assert.Equal(t, 60, stored.Height)
}

func TestSaveImageRejectsUnknownExtension(t *testing.T) {
	svc := NewService(testConfig(t), nil)

	_, err := svc.SaveImage(context.Background(), bytes.NewReader(pngBytes(t, 10, 10)), "layout.svg", "models")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestSaveImageRejectsUndecodableData(t *testing.T) {
	svc := NewService(testConfig(t), nil)

	_, err := svc.SaveImage(context.Background(), bytes.NewReader([]byte("not an image")), "broken.jpg", "models")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestSaveImageRejectsOversizedUpload(t *testing.T) {
	svc := NewService(testConfig(t), nil)

	junk := bytes.Repeat([]byte{0xAB}, 2*1024*1024)
	_, err := svc.SaveImage(context.Background(), bytes.NewReader(junk), "huge.jpg", "models")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestRemoveDeletesImageAndThumb(t *testing.T) {
	cfg := testConfig(t)
	svc := NewService(cfg, nil)
	ctx := context.Background()

	stored, err := svc.SaveImage(ctx, bytes.NewReader(pngBytes(t, 120, 90)), "hero.png", "models")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, stored.Path))
	_, err = os.Stat(filepath.Join(cfg.Dir, filepath.FromSlash(stored.Path)))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(cfg.Dir, filepath.FromSlash(stored.ThumbPath)))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveIgnoresMissingFile(t *testing.T) {
	svc := NewService(testConfig(t), nil)
	require.NoError(t, svc.Remove(context.Background(), "models/gone.jpg"))
}

func TestRemoveRejectsTraversal(t *testing.T) {
	svc := NewService(testConfig(t), nil)

	err := svc.Remove(context.Background(), "../etc/passwd")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
