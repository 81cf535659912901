package sharecard

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

// Social cards are 1200x630 (the 1.91:1 ratio summary_large_image expects).
const (
	cardWidth   = 1200
	cardHeight  = 630
	cardQuality = 85
)

// loadCardImage reads the configured source image, crops it to the card
// aspect ratio, scales it to 1200x630, and returns the JPEG bytes. It runs
// once at startup; the handler serves the cached bytes.
func loadCardImage(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open card image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode card image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, cardSourceRect(img.Bounds()), draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: cardQuality}); err != nil {
		return nil, fmt.Errorf("encode card image: %w", err)
	}
	return buf.Bytes(), nil
}

// cardSourceRect returns the largest centered sub-rectangle of b with the
// card's aspect ratio, so scaling never distorts the source.
func cardSourceRect(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	if w*cardHeight > h*cardWidth {
		// Wider than the card: crop the sides.
		cw := h * cardWidth / cardHeight
		x := b.Min.X + (w-cw)/2
		return image.Rect(x, b.Min.Y, x+cw, b.Max.Y)
	}
	// Taller than the card: crop top and bottom.
	ch := w * cardHeight / cardWidth
	y := b.Min.Y + (h-ch)/2
	return image.Rect(b.Min.X, y, b.Max.X, y+ch)
}

// handleCard serves the pre-rendered fallback social card.
func (a *App) handleCard(c echo.Context) error {
	return c.Blob(http.StatusOK, "image/jpeg", a.card)
}
