package imagegen

// ImageOptions contains configuration for an image operation request.
type ImageOptions struct {
	Model   string
	Size    string // "WIDTHxHEIGHT", e.g. "1024x1024"
	Count   int
	Quality ImageQuality
	Style   ImageStyle
	Format  ImageFormat
}

// ImageOption is a functional option for configuring image operation requests.
type ImageOption func(*ImageOptions)

// WithImageModel sets the model to use.
func WithImageModel(model string) ImageOption {
	return func(o *ImageOptions) {
		o.Model = model
	}
}

// WithImageSize sets the dimensions for generated images ("WIDTHxHEIGHT").
func WithImageSize(size string) ImageOption {
	return func(o *ImageOptions) {
		o.Size = size
	}
}

// WithImageCount sets the number of images to generate.
// Note: DALL-E 3 only supports n=1; Google Imagen supports up to 4.
func WithImageCount(n int) ImageOption {
	return func(o *ImageOptions) {
		o.Count = n
	}
}

// WithImageQuality sets the quality level for generated images.
// Supported values: "standard", "hd"
func WithImageQuality(q ImageQuality) ImageOption {
	return func(o *ImageOptions) {
		o.Quality = q
	}
}

// WithImageStyle sets the visual style for generated images.
// Supported values: "vivid", "natural"
// Note: Only supported by DALL-E 3.
func WithImageStyle(s ImageStyle) ImageOption {
	return func(o *ImageOptions) {
		o.Style = s
	}
}

// WithImageFormat sets the output format for generated images.
// Supported values: "url", "b64_json"
func WithImageFormat(f ImageFormat) ImageOption {
	return func(o *ImageOptions) {
		o.Format = f
	}
}

// ApplyImageOptions applies functional options to an ImageOptions struct.
func ApplyImageOptions(opts ...ImageOption) *ImageOptions {
	o := &ImageOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
