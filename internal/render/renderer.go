package render

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"

	"github.com/gen2brain/go-fitz"
)

const (
	// PDF page boxes are defined at 72dpi; render at 1.5x that.
	renderDPI   = 108
	jpegQuality = 85

	mimeJPEG = "image/jpeg"
)

// PageImage is one rasterized page: a MIME type tag plus the encoded bytes.
type PageImage struct {
	MIMEType string
	Data     []byte
}

// Renderer rasterizes PDF documents page by page using MuPDF.
type Renderer struct{}

// New constructs a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderPages rasterizes every page of the document, in order, into JPEG
// images. Each page is encoded immediately so no per-page raster surface
// outlives its loop iteration; the document handle is released on return.
func (r *Renderer) RenderPages(ctx context.Context, data []byte) ([]PageImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, classify(err)
	}
	defer doc.Close()

	total := doc.NumPage()
	if total == 0 {
		return nil, fmt.Errorf("%w: document has no pages", ErrCorruptDocument)
	}

	pages := make([]PageImage, 0, total)
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := doc.ImageDPI(i, renderDPI)
		if err != nil {
			return nil, classify(fmt.Errorf("page %d: %w", i+1, err))
		}
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("%w: encode page %d: %v", ErrCorruptDocument, i+1, err)
		}
		pages = append(pages, PageImage{MIMEType: mimeJPEG, Data: buf.Bytes()})
	}

	return pages, nil
}
