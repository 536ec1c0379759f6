package sink

import (
	"bytes"

	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/matzehuels/buttonstrip/pkg/errors"
	"github.com/matzehuels/buttonstrip/pkg/frame"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	title string
}

// WithTitle sets the document title in the PDF metadata.
func WithTitle(title string) PDFOption {
	return func(r *pdfRenderer) { r.title = title }
}

// RenderPDF renders the frame as a single-page PDF sized to the viewport.
func RenderPDF(f frame.Frame, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{title: "Button strip"}
	for _, opt := range opts {
		opt(&r)
	}

	c, err := drawFrame(f)
	if err != nil {
		return nil, err
	}
	w, h := c.Size()

	var buf bytes.Buffer
	writer := pdf.New(&buf, w, h, nil)
	writer.SetInfo(r.title, "", "", "", "buttonstrip")
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write pdf")
	}
	return buf.Bytes(), nil
}
