package shapes

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	maxInitialImageWidth  = 20.0
	maxInitialImageHeight = 20.0
)

// Image draws a bitmap scaled into a box.
type Image struct {
	Drawable
	content imageContent
}

// NewImage creates an image drawable from src, sized so its larger excess
// dimension fits 20 model units while keeping the aspect ratio. A nil src
// produces an empty, zero-size image. A non-nil tint draws the bitmap as a
// template: only its alpha is kept and filled with the tint color.
func NewImage(c *Canvas, src *ebiten.Image, tint *Color, mode ContentMode) *Image {
	img := &Image{content: imageContent{src: src, mode: mode, tint: tint}}
	c.engine.immediate(func() {
		img.init(c, KindImage, img)
		img.layer.setImage(&img.content)
		var size Size
		if src != nil {
			b := src.Bounds()
			size = initialImageSize(
				c.ConvertMagnitudeFromScreen(float64(b.Dx())),
				c.ConvertMagnitudeFromScreen(float64(b.Dy())),
			)
		}
		img.SetSize(size)
	})
	return img
}

// NewImageFromFile loads a PNG, JPEG or GIF file and wraps it in an Image.
func NewImageFromFile(c *Canvas, path string, tint *Color, mode ContentMode) (*Image, error) {
	src, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return NewImage(c, src, tint, mode), nil
}

// NewImageFromURL downloads an image and wraps it in an Image.
func NewImageFromURL(c *Canvas, url string, tint *Color, mode ContentMode) (*Image, error) {
	src, _, err := ebitenutil.NewImageFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", url, err)
	}
	return NewImage(c, src, tint, mode), nil
}

// initialImageSize fits a model-space bitmap size to the 20 x 20 default box
// along whichever dimension exceeds it more (or falls short of it less).
func initialImageSize(width, height float64) Size {
	extraWidth := width - maxInitialImageWidth
	extraHeight := height - maxInitialImageHeight
	switch {
	case extraWidth == 0 && extraHeight == 0:
		return Size{width, height}
	case width <= 0 || height <= 0:
		return Size{}
	case extraWidth > extraHeight:
		return Size{maxInitialImageWidth, maxInitialImageWidth * height / width}
	default:
		return Size{maxInitialImageHeight * width / height, maxInitialImageHeight}
	}
}

// Source returns the bitmap, or nil for an empty image.
func (i *Image) Source() *ebiten.Image { return i.content.src }

// Size returns the unscaled box size in model units.
func (i *Image) Size() Size { return i.modelSize }

// SetSize resizes the box about its center.
func (i *Image) SetSize(s Size) {
	i.setModelSize(s)
}

// ContentMode returns how the bitmap fits the box.
func (i *Image) ContentMode() ContentMode { return i.content.mode }

// SetContentMode changes how the bitmap fits the box.
func (i *Image) SetContentMode(m ContentMode) {
	i.content.mode = m
	i.layer.contentDirty = true
}

// Tint returns the template tint, or nil when the bitmap draws in its own
// colors.
func (i *Image) Tint() *Color { return i.content.tint }

// SetTint switches template rendering on (non-nil) or off (nil).
func (i *Image) SetTint(c *Color) {
	i.content.tint = c
	i.layer.contentDirty = true
}
