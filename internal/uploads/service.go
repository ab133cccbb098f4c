package uploads

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/vanari-rv/caravan-configurator/pkg/config"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
)

// StoredImage describes a processed upload on disk. Paths are relative to
// the uploads directory and double as the public URL path under /uploads/.
type StoredImage struct {
	Path      string `json:"path"`
	ThumbPath string `json:"thumb_path"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Service stores catalog images. Every accepted upload is decoded,
// downscaled to the configured bounds, re-encoded as JPEG, and written
// alongside a square thumbnail.
type Service interface {
	SaveImage(ctx context.Context, r io.Reader, fileName, folder string) (*StoredImage, error)
	Remove(ctx context.Context, relPath string) error
}

type service struct {
	cfg config.UploadsConfig
	log *logger.Logger
}

func NewService(cfg config.UploadsConfig, log *logger.Logger) Service {
	if cfg.Dir == "" {
		panic("uploads: directory is required")
	}
	return &service{cfg: cfg, log: log}
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": false, // decoder not linked in
}

func (s *service) SaveImage(ctx context.Context, r io.Reader, fileName, folder string) (*StoredImage, error) {
	if r == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file is required")
	}
	ext := strings.ToLower(path.Ext(path.Base(strings.TrimSpace(fileName))))
	if !allowedExtensions[ext] {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unsupported image extension %q", ext))
	}
	folder = sanitizeFolder(folder)

	maxBytes := int64(s.cfg.MaxUploadMB) * 1024 * 1024
	limited := &limitedReader{r: io.LimitReader(r, maxBytes+1), max: maxBytes}

	img, err := imaging.Decode(limited, imaging.AutoOrientation(true))
	if err != nil {
		if limited.exceeded {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("image exceeds the %d MB upload limit", s.cfg.MaxUploadMB))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "decoding image")
	}
	if limited.exceeded {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("image exceeds the %d MB upload limit", s.cfg.MaxUploadMB))
	}

	bounds := img.Bounds()
	if bounds.Dx() > s.cfg.ImageMaxWidth || bounds.Dy() > s.cfg.ImageMaxHeight {
		img = imaging.Fit(img, s.cfg.ImageMaxWidth, s.cfg.ImageMaxHeight, imaging.Lanczos)
	}
	thumb := imaging.Fit(img, s.cfg.ThumbMaxSize, s.cfg.ThumbMaxSize, imaging.Lanczos)

	name := uuid.NewString() + ".jpg"
	relPath := path.Join(folder, name)
	relThumb := path.Join(folder, "thumbs", name)

	if err := s.writeJPEG(relPath, img); err != nil {
		return nil, err
	}
	if err := s.writeJPEG(relThumb, thumb); err != nil {
		_ = os.Remove(filepath.Join(s.cfg.Dir, filepath.FromSlash(relPath)))
		return nil, err
	}

	stored := &StoredImage{
		Path:      relPath,
		ThumbPath: relThumb,
		Width:     img.Bounds().Dx(),
		Height:    img.Bounds().Dy(),
	}
	if s.log != nil {
		s.log.Info(s.log.WithField(ctx, "path", relPath), "uploads.image_stored")
	}
	return stored, nil
}

// Remove deletes a stored image and its thumbnail. A missing file is not
// an error; the referencing row may already have been cleaned up.
func (s *service) Remove(ctx context.Context, relPath string) error {
	clean, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(clean); err != nil && !os.IsNotExist(err) {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "removing image")
	}
	thumb := filepath.Join(filepath.Dir(clean), "thumbs", filepath.Base(clean))
	if err := os.Remove(thumb); err != nil && !os.IsNotExist(err) {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "removing thumbnail")
	}
	return nil
}

func (s *service) writeJPEG(relPath string, img image.Image) error {
	abs := filepath.Join(s.cfg.Dir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating upload directory")
	}
	if err := imaging.Save(img, abs, imaging.JPEGQuality(s.cfg.JPEGQuality)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "writing image")
	}
	return nil
}

func sanitizeFolder(folder string) string {
	folder = strings.Trim(path.Clean("/"+folder), "/")
	if folder == "" || folder == "." {
		return "misc"
	}
	return folder
}

// resolve joins relPath under the uploads dir and rejects traversal
// outside of it.
func (s *service) resolve(relPath string) (string, error) {
	relPath = strings.TrimPrefix(strings.TrimSpace(relPath), "/")
	if relPath == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "path is required")
	}
	clean := filepath.Clean(filepath.Join(s.cfg.Dir, filepath.FromSlash(relPath)))
	root := filepath.Clean(s.cfg.Dir)
	if clean != root && !strings.HasPrefix(clean, root+string(filepath.Separator)) {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "path escapes the uploads directory")
	}
	return clean, nil
}

type limitedReader struct {
	r        io.Reader
	max      int64
	read     int64
	exceeded bool
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.read > l.max {
		l.exceeded = true
		return n, io.ErrUnexpectedEOF
	}
	return n, err
}
