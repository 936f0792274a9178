package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // register the PNG decoder for image.Decode
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/morpion/internal/apperror"
)

const (
	CircleFile = "circle.png"
	CrossFile  = "cross.png"
)

type Sprites struct {
	Circle image.Image
	Cross  image.Image
}

// Load - reads both sprites from dir. Any failure is a startup error.
func Load(dir string) (*Sprites, error) {
	circle, err := loadImage(filepath.Join(dir, CircleFile))
	if err != nil {
		return nil, err
	}

	cross, err := loadImage(filepath.Join(dir, CrossFile))
	if err != nil {
		return nil, err
	}

	return &Sprites{Circle: circle, Cross: cross}, nil
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrAssetNotFound, path)
	}

	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}

	return img, nil
}
