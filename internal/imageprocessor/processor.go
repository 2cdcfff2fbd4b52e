package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ImageSize - целевой размер изображения
type ImageSize struct {
	Name   string
	Width  int
	Height int
}

var (
	// Размеры изображений каталога залов
	SizeThumbnail = ImageSize{Name: "thumb", Width: 300, Height: 200}
	SizeCard      = ImageSize{Name: "card", Width: 800, Height: 600}
)

// Processor выполняет ресайз и перекодирование изображений
type Processor struct {
	quality int // качество JPEG (1-100)
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{
		quality: quality,
	}
}

// Resize декодирует изображение, вписывает его в заданный размер
// с сохранением пропорций и кодирует обратно в исходный формат
func (p *Processor) Resize(reader io.Reader, size ImageSize) (io.Reader, error) {
	img, imgFormat, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := p.scale(img, size.Width, size.Height)

	var buf bytes.Buffer
	switch imgFormat {
	case "jpeg", "jpg":
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
	case "png":
		if err := png.Encode(&buf, resized); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported image format: %s", imgFormat)
	}

	return &buf, nil
}

// scale вписывает изображение в прямоугольник с сохранением пропорций
func (p *Processor) scale(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}

// IsValidImage проверяет, что reader содержит декодируемое изображение
func IsValidImage(reader io.Reader) bool {
	_, _, err := image.Decode(reader)
	return err == nil
}
