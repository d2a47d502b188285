package google

import (
	"context"
	"encoding/base64"
	"strings"

	"google.golang.org/genai"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
	"github.com/AIGeekSquad/image-generator-sub000/model"
	"github.com/AIGeekSquad/image-generator-sub000/request"
)

// GenerateImage generates images from a text prompt. Imagen model identifiers
// route to the dedicated image API; everything else is treated as a Gemini
// multimodal image model.
func (c *Client) GenerateImage(ctx context.Context, prompt string, opts ...imagegen.ImageOption) (*imagegen.ImageResponse, error) {
	options := imagegen.ApplyImageOptions(opts...)
	m := c.resolveModel(options)

	if isImagenModel(m) {
		return c.generateWithImagen(ctx, m, prompt, options)
	}
	return c.generateContent(ctx, m, []*genai.Part{genai.NewPartFromText(prompt)}, options)
}

// EditImage modifies an existing image according to a text prompt using
// Gemini multimodal generation. A mask, when supplied, is attached as an
// additional reference image.
func (c *Client) EditImage(ctx context.Context, prompt, image, mask string, opts ...imagegen.ImageOption) (*imagegen.ImageResponse, error) {
	options := imagegen.ApplyImageOptions(opts...)

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	imagePart, err := c.inlineImagePart(ctx, image)
	if err != nil {
		return nil, err
	}
	parts = append(parts, imagePart)

	if mask != "" {
		maskPart, err := c.inlineImagePart(ctx, mask)
		if err != nil {
			return nil, err
		}
		parts = append(parts,
			genai.NewPartFromText("Apply the edit only inside the white region of this mask:"),
			maskPart,
		)
	}

	return c.generateContent(ctx, c.resolveMultiModalModel(options), parts, options)
}

// CreateVariation produces variations of an existing image using Gemini
// multimodal generation.
func (c *Client) CreateVariation(ctx context.Context, image string, opts ...imagegen.ImageOption) (*imagegen.ImageResponse, error) {
	options := imagegen.ApplyImageOptions(opts...)

	imagePart, err := c.inlineImagePart(ctx, image)
	if err != nil {
		return nil, err
	}
	parts := []*genai.Part{
		genai.NewPartFromText("Generate a variation of this image, preserving its subject and composition."),
		imagePart,
	}

	return c.generateContent(ctx, c.resolveMultiModalModel(options), parts, options)
}

// ContinueConversation generates images from an ordered transcript of prior
// turns. Assistant turns map to the model role; image references in any turn
// are inlined.
func (c *Client) ContinueConversation(ctx context.Context, conversation []imagegen.Message, opts ...imagegen.ImageOption) (*imagegen.ImageResponse, error) {
	options := imagegen.ApplyImageOptions(opts...)

	contents := make([]*genai.Content, 0, len(conversation))
	for _, msg := range conversation {
		var parts []*genai.Part
		if msg.Text != "" {
			parts = append(parts, genai.NewPartFromText(msg.Text))
		}
		for _, ref := range msg.Images {
			part, err := c.inlineImagePart(ctx, ref)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}
		if len(parts) == 0 {
			continue
		}
		var role genai.Role = genai.RoleUser
		if msg.Role == imagegen.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromParts(parts, role))
	}

	return c.callGenerateContent(ctx, c.resolveMultiModalModel(options), contents, options)
}

func (c *Client) generateWithImagen(ctx context.Context, m, prompt string, options *imagegen.ImageOptions) (*imagegen.ImageResponse, error) {
	config := &genai.GenerateImagesConfig{}

	n := options.Count
	if n <= 0 {
		n = 1
	}
	config.NumberOfImages = int32(n)

	if options.Size != "" {
		config.AspectRatio = sizeToAspectRatio(options.Size)
	}

	resp, err := c.client.Models.GenerateImages(ctx, m, prompt, config)
	if err != nil {
		return nil, wrapError(err)
	}

	images := make([]imagegen.GeneratedImage, len(resp.GeneratedImages))
	for i, img := range resp.GeneratedImages {
		gen := imagegen.GeneratedImage{}
		if img.Image != nil && len(img.Image.ImageBytes) > 0 {
			gen.Base64 = base64.StdEncoding.EncodeToString(img.Image.ImageBytes)
			gen.MimeType = img.Image.MIMEType
		}
		images[i] = gen
	}
	return &imagegen.ImageResponse{Images: images}, nil
}

func (c *Client) generateContent(ctx context.Context, m string, parts []*genai.Part, options *imagegen.ImageOptions) (*imagegen.ImageResponse, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return c.callGenerateContent(ctx, m, contents, options)
}

func (c *Client) callGenerateContent(ctx context.Context, m string, contents []*genai.Content, options *imagegen.ImageOptions) (*imagegen.ImageResponse, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	resp, err := c.client.Models.GenerateContent(ctx, m, contents, config)
	if err != nil {
		return nil, wrapError(err)
	}

	var images []imagegen.GeneratedImage
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				images = append(images, imagegen.GeneratedImage{
					Base64:   base64.StdEncoding.EncodeToString(part.InlineData.Data),
					MimeType: part.InlineData.MIMEType,
				})
			}
		}
	}
	return &imagegen.ImageResponse{Images: images}, nil
}

// inlineImagePart resolves an image reference to an inline data part.
func (c *Client) inlineImagePart(ctx context.Context, ref string) (*genai.Part, error) {
	data, mime, err := c.resolver.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	if mime == "" {
		mime = "image/png"
	}
	return &genai.Part{InlineData: &genai.Blob{MIMEType: mime, Data: data}}, nil
}

func (c *Client) resolveModel(options *imagegen.ImageOptions) string {
	if options.Model != "" {
		return options.Model
	}
	return c.model
}

// resolveMultiModalModel picks the model for content-based operations. Imagen
// models cannot consume input images, so they fall back to the default Gemini
// image model.
func (c *Client) resolveMultiModalModel(options *imagegen.ImageOptions) string {
	m := c.resolveModel(options)
	if isImagenModel(m) {
		return model.GeminiFlashImage.String()
	}
	return m
}

func isImagenModel(m string) bool {
	return strings.HasPrefix(strings.ToLower(m), "imagen")
}

// sizeToAspectRatio maps a "WIDTHxHEIGHT" string to the closest Imagen aspect
// ratio. Unparseable sizes fall back to square.
func sizeToAspectRatio(size string) string {
	parsed := request.ParseSize(size)
	if parsed == nil {
		return "1:1"
	}

	ratios := []struct {
		name  string
		value float64
	}{
		{"1:1", 1.0},
		{"4:3", 4.0 / 3.0},
		{"3:4", 3.0 / 4.0},
		{"16:9", 16.0 / 9.0},
		{"9:16", 9.0 / 16.0},
	}

	actual := float64(parsed.Width) / float64(parsed.Height)
	best := ratios[0]
	bestDiff := diff(actual, best.value)
	for _, r := range ratios[1:] {
		if d := diff(actual, r.value); d < bestDiff {
			best, bestDiff = r, d
		}
	}
	return best.name
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
