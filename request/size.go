package request

import (
	"fmt"
	"strconv"
	"strings"
)

// ImageSize is a parsed "WIDTHxHEIGHT" pair. Both dimensions are strictly
// positive; an ImageSize is only ever produced by a successful ParseSize.
type ImageSize struct {
	Width  int
	Height int
}

// String returns the canonical "WIDTHxHEIGHT" form.
func (s ImageSize) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ParseSize parses a "WIDTHxHEIGHT" string with a case-insensitive separator.
// It requires exactly two non-empty segments, both strictly positive
// integers. Any other shape yields nil. ParseSize is pure and total: it never
// panics and never returns an error.
func ParseSize(s string) *ImageSize {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return nil
	}

	width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || width <= 0 {
		return nil
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || height <= 0 {
		return nil
	}

	return &ImageSize{Width: width, Height: height}
}
