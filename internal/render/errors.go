package render

import (
	"errors"
	"fmt"

	"github.com/gen2brain/go-fitz"
)

var (
	// ErrUnsupportedDocument marks password-protected PDFs. Surfaced as a
	// distinct, user-actionable condition.
	ErrUnsupportedDocument = errors.New("document is password protected")

	// ErrCorruptDocument marks any other parse or render failure.
	ErrCorruptDocument = errors.New("document could not be parsed")

	// ErrUnavailable marks a rendering capability that is not ready.
	ErrUnavailable = errors.New("pdf renderer is not available")
)

func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fitz.ErrNeedsPassword):
		return fmt.Errorf("%w: %v", ErrUnsupportedDocument, err)
	case errors.Is(err, fitz.ErrCreateContext):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
}
