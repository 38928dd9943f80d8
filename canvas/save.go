package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	// ErrExists is returned by [Canvas.Save] when the target file exists and
	// overwriting is disabled.
	ErrExists = errors.New("canvas: file exists and overwrite is disabled")
	// ErrUnsupportedFormat is returned by [Canvas.Save] when the file
	// extension does not name a known image format.
	ErrUnsupportedFormat = errors.New("canvas: unsupported image format")
)

// SaveOptions controls [Canvas.Save].
type SaveOptions struct {
	// Quality in [0, 100], or negative for the encoder's default. For JPEG it
	// is the encoder quality. For PNG higher values trade file size for
	// encoding speed. Lossless formats without compression settings ignore
	// it.
	Quality int
	// Overwrite allows replacing an existing file.
	Overwrite bool
}

var DefaultSaveOptions = SaveOptions{
	Quality:   100,
	Overwrite: true,
}

type encodeFunc func(w io.Writer, img image.Image) error

// Save encodes the canvas to path. The format is inferred from the file
// extension: .png, .jpg, .jpeg, .gif, .bmp, .tif and .tiff are supported.
// Missing parent directories are created. The file is written to a temporary
// name first and renamed into place, so a failed save never leaves a
// truncated image behind.
func (c *Canvas) Save(path string, opts SaveOptions) error {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoderFor(ext, opts.Quality)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("canvas: create directory: %w", err)
	}
	if !opts.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("canvas: %w", err)
		}
	}

	f, err := os.CreateTemp(dir, ".canvas-*"+ext)
	if err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	tmp := f.Name()
	if err := enc(f, c.img); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("canvas: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("canvas: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("canvas: %w", err)
	}
	return nil
}

func encoderFor(ext string, quality int) (encodeFunc, bool) {
	switch ext {
	case ".png":
		e := png.Encoder{CompressionLevel: pngCompression(quality)}
		return e.Encode, true
	case ".jpg", ".jpeg":
		q := jpeg.DefaultQuality
		if quality >= 0 {
			q = min(max(quality, 1), 100)
		}
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
		}, true
	case ".gif":
		return func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}, true
	case ".bmp":
		return bmp.Encode, true
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
		}, true
	default:
		return nil, false
	}
}

func pngCompression(quality int) png.CompressionLevel {
	switch {
	case quality < 0:
		return png.DefaultCompression
	case quality >= 80:
		return png.BestSpeed
	case quality >= 40:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}
