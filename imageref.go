package imagegen

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Image references accepted throughout the library: a data URL
// ("data:image/png;base64,..."), an absolute http(s) URL, or a raw base64
// payload.

// IsDataURL reports whether s is an image data URL.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:image/")
}

// IsHTTPURL reports whether s is an absolute http or https URL.
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsBase64 reports whether s is a syntactically valid base64 payload
// (standard or raw standard alphabet).
func IsBase64(s string) bool {
	if s == "" {
		return false
	}
	if _, err := base64.StdEncoding.DecodeString(s); err == nil {
		return true
	}
	_, err := base64.RawStdEncoding.DecodeString(s)
	return err == nil
}

// IsImageReference reports whether s is any accepted image reference form.
func IsImageReference(s string) bool {
	return IsDataURL(s) || IsHTTPURL(s) || IsBase64(s)
}

// ImageResolver turns image references into raw bytes for backends that need
// binary uploads. The HTTP client is an explicit dependency so callers own
// connection pooling and tests can substitute a transport.
type ImageResolver struct {
	client *http.Client
}

// NewImageResolver creates an ImageResolver using client for URL fetches.
// A nil client gets a private default.
func NewImageResolver(client *http.Client) *ImageResolver {
	if client == nil {
		client = &http.Client{}
	}
	return &ImageResolver{client: client}
}

// Resolve returns the image bytes and MIME type (when known) for ref.
func (r *ImageResolver) Resolve(ctx context.Context, ref string) ([]byte, string, error) {
	switch {
	case IsDataURL(ref):
		return decodeDataURL(ref)
	case IsHTTPURL(ref):
		return r.fetch(ctx, ref)
	default:
		data, err := base64.StdEncoding.DecodeString(ref)
		if err != nil {
			if raw, rawErr := base64.RawStdEncoding.DecodeString(ref); rawErr == nil {
				return raw, "", nil
			}
			return nil, "", &ImageError{Op: "decode", Ref: "base64", Err: err}
		}
		return data, "", nil
	}
}

func decodeDataURL(ref string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(ref, "data:")
	if !ok {
		return nil, "", &ImageError{Op: "decode", Ref: ref, Err: fmt.Errorf("not a data URL")}
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", &ImageError{Op: "decode", Ref: ref, Err: fmt.Errorf("missing data URL payload")}
	}
	mime := meta
	if m, _, found := strings.Cut(meta, ";"); found {
		mime = m
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", &ImageError{Op: "decode", Ref: mime, Err: err}
	}
	return data, mime, nil
}

func (r *ImageResolver) fetch(ctx context.Context, ref string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, "", &ImageError{Op: "fetch", Ref: ref, Err: err}
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, "", &ImageError{Op: "fetch", Ref: ref, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &ImageError{Op: "fetch", Ref: ref, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &ImageError{Op: "fetch", Ref: ref, Err: err}
	}
	return data, resp.Header.Get("Content-Type"), nil
}
