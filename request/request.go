package request

import (
	"encoding/json"
	"errors"
	"strconv"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

// ErrNoArguments is returned by Parse when no argument map was supplied.
var ErrNoArguments = errors.New("no arguments provided")

// DefaultNumberOfImages is used when numberOfImages is missing or unreadable.
const DefaultNumberOfImages = 1

// Arguments is the strongly-typed form of an inbound request. Values are
// fully defaulted at construction and never mutated afterwards; a fresh value
// is produced per request and never persisted.
//
// Empty strings mean "not supplied".
type Arguments struct {
	// Prompt is the text description of the desired image.
	Prompt string

	// Provider is the preferred backend name hint.
	Provider string

	// Model is the requested model identifier.
	Model string

	// Size is the raw size string as supplied ("WIDTHxHEIGHT").
	Size string

	// Quality is the requested quality level ("standard" or "hd").
	Quality string

	// Style is the requested visual style ("vivid" or "natural").
	Style string

	// Image is a source image reference for edit and variation operations:
	// a data URL, an absolute http(s) URL, or raw base64 data.
	Image string

	// Mask is an optional mask image reference for edit operations.
	Mask string

	// NumberOfImages is the number of images to produce (defaults to 1).
	NumberOfImages int

	// ParsedSize is the decoded form of Size, or nil when Size was absent
	// or malformed.
	ParsedSize *ImageSize

	// Conversation is the optional decoded transcript from the
	// conversationJson key, or nil when absent or malformed.
	Conversation []imagegen.Message
}

// Parse reads the recognized keys from raw into a fully-defaulted Arguments
// value. Each key is read independently: a value of an unexpected type is
// treated as absent rather than rejected. The only error case is a missing
// map.
func Parse(raw map[string]any) (*Arguments, error) {
	if raw == nil {
		return nil, ErrNoArguments
	}

	args := &Arguments{
		Prompt:         stringValue(raw, "prompt"),
		Provider:       stringValue(raw, "provider"),
		Model:          stringValue(raw, "model"),
		Size:           stringValue(raw, "size"),
		Quality:        stringValue(raw, "quality"),
		Style:          stringValue(raw, "style"),
		Image:          stringValue(raw, "image"),
		Mask:           stringValue(raw, "mask"),
		NumberOfImages: intValue(raw, "numberOfImages", DefaultNumberOfImages),
	}

	args.ParsedSize = ParseSize(args.Size)

	if conv := stringValue(raw, "conversationJson"); conv != "" {
		args.Conversation = ParseConversation(conv)
	}

	return args, nil
}

// stringValue returns the string under key, or "" when missing or not a string.
func stringValue(raw map[string]any, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}

// intValue returns the integer under key. Floating values are truncated;
// numeric strings are parsed. Anything unreadable falls back to def; this is
// a default-and-continue path, not an error path.
func intValue(raw map[string]any, key string, def int) int {
	v, ok := raw[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float32:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
		if f, err := n.Float64(); err == nil {
			return int(f)
		}
		return def
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return int(f)
		}
		return def
	default:
		return def
	}
}
