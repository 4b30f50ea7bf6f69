// Copyright 2026 The Diorama Authors. All rights reserved.

// Package imgio decodes image files into the pixel layout
// that package driver uploads. It recognizes the formats
// registered below; other formats fail to decode.
package imgio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/diorama-gl/diorama/driver"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedLayout means that an image decoded to a
// pixel layout outside the RGB family.
var ErrUnsupportedLayout = errors.New("imgio: unsupported pixel layout")

// Load decodes the image file at path into tightly packed
// RGBA pixels. The Channels field of the result records the
// color layout of the source: 3 for RGB-family images with
// no alpha, 4 for those with an alpha channel. Sources that
// are not in the RGB family (grayscale, alpha-only) are
// rejected.
func Load(path string) (*driver.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imgio: %w", err)
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imgio: decode %q: %w", path, err)
	}
	channels, err := Channels(src)
	if err != nil {
		return nil, fmt.Errorf("imgio: %q: %w", path, err)
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &driver.Image{
		Pix:      dst.Pix,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels,
	}, nil
}

// Channels reports the RGB-family channel count of a
// decoded image: 3 for RGB without alpha, 4 with alpha.
// Images outside the RGB family yield an error.
func Channels(img image.Image) (int, error) {
	switch img.(type) {
	case *image.YCbCr, *image.CMYK:
		return 3, nil
	case *image.RGBA, *image.RGBA64, *image.NRGBA, *image.NRGBA64, *image.NYCbCrA, *image.Paletted:
		return 4, nil
	}
	return 0, fmt.Errorf("%w %T", ErrUnsupportedLayout, img)
}
