// Package visual renders filters as grayscale images.
//
// A filter is drawn as a square image of side shape[0], one pixel per value
// in row-major order. Larger values are darker: gray = 255 - round(v*255).
package visual

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/born-ml/convnet/internal/tensor"
)

// FilterImage renders f as a side x side grayscale image, side = f.Shape()[0].
//
// f must hold exactly side*side values. Values outside [0, 1] are not
// clamped; the gray level wraps to 8 bits.
func FilterImage(f *tensor.Tensor) (*image.RGBA, error) {
	if f.Rank() == 0 {
		return nil, fmt.Errorf("filter image: scalar filter: %w", tensor.ErrShapeMismatch)
	}
	side := f.Shape()[0]
	if f.NumElements() != side*side {
		return nil, fmt.Errorf("filter image: filter %v is not square: %w", f.Shape(), tensor.ErrShapeMismatch)
	}

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for p, v := range f.Data() {
		gray := uint8(255 - int(math.Round(v*255)))
		img.SetRGBA(p%side, p/side, color.RGBA{R: gray, G: gray, B: gray, A: 255})
	}
	return img, nil
}

// SaveFilters writes one PNG per filter into dir as filter_<index>.png and
// returns the written paths in filter order.
func SaveFilters(dir string, filters []*tensor.Tensor) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	paths := make([]string, 0, len(filters))
	for i, f := range filters {
		img, err := FilterImage(f)
		if err != nil {
			return paths, fmt.Errorf("filter %d: %w", i, err)
		}

		path := filepath.Join(dir, fmt.Sprintf("filter_%d.png", i))
		if err := writePNG(path, img); err != nil {
			return paths, fmt.Errorf("filter %d: %w", i, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writePNG(path string, img image.Image) (err error) {
	file, err := os.Create(path) //nolint:gosec // path is built from the caller's output directory
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
