package request

import (
	"fmt"
	"strings"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

// Bounds for the numberOfImages argument.
const (
	MinNumberOfImages = 1
	MaxNumberOfImages = 10
)

// ValidationResult accumulates rule violations for one Arguments value.
// A result is valid exactly when Errors is empty; warnings never affect
// validity.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were recorded.
func (r ValidationResult) Valid() bool { return len(r.Errors) == 0 }

func (r *ValidationResult) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Validate runs every rule check against args and reports all violations.
// It never short-circuits and never panics, and is idempotent: validating the
// same value twice yields identical results.
func Validate(args *Arguments) ValidationResult {
	var result ValidationResult
	if args == nil {
		result.addError("arguments are required")
		return result
	}

	if strings.TrimSpace(args.Prompt) == "" && len(args.Conversation) == 0 {
		result.addError("either a prompt or a conversation is required")
	}

	if args.NumberOfImages < MinNumberOfImages || args.NumberOfImages > MaxNumberOfImages {
		result.addError("numberOfImages must be between %d and %d, got %d",
			MinNumberOfImages, MaxNumberOfImages, args.NumberOfImages)
	}

	if args.Size != "" && args.ParsedSize == nil {
		result.addError("invalid size %q: expected WIDTHxHEIGHT, e.g. \"1024x1024\"", args.Size)
	}

	if args.Quality != "" &&
		args.Quality != string(imagegen.ImageQualityStandard) &&
		args.Quality != string(imagegen.ImageQualityHD) {
		result.addError("quality must be %q or %q, got %q",
			imagegen.ImageQualityStandard, imagegen.ImageQualityHD, args.Quality)
	}

	if args.Style != "" &&
		args.Style != string(imagegen.ImageStyleVivid) &&
		args.Style != string(imagegen.ImageStyleNatural) {
		result.addError("style must be %q or %q, got %q",
			imagegen.ImageStyleVivid, imagegen.ImageStyleNatural, args.Style)
	}

	if args.Conversation != nil && len(args.Conversation) == 0 {
		result.addError("conversation must contain at least one message")
	}

	if args.Image != "" && !imagegen.IsImageReference(args.Image) {
		result.addError("image must be a data URL, an absolute http(s) URL, or base64 data")
	}

	return result
}
