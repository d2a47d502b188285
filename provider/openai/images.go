package openai

import (
	"bytes"
	"context"

	"github.com/openai/openai-go"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
)

// GenerateImage generates images from a text prompt.
func (c *Client) GenerateImage(ctx context.Context, prompt string, opts ...imagegen.ImageOption) (*imagegen.ImageResponse, error) {
	options := imagegen.ApplyImageOptions(opts...)

	params := openai.ImageGenerateParams{
		Model:  openai.ImageModel(c.resolveModel(options)),
		Prompt: prompt,
	}

	// Apply size (default: 1024x1024)
	size := options.Size
	if size == "" {
		size = "1024x1024"
	}
	params.Size = openai.ImageGenerateParamsSize(size)

	params.N = openai.Int(int64(imageCount(options)))

	if options.Quality != "" {
		params.Quality = openai.ImageGenerateParamsQuality(options.Quality)
	}
	if options.Style != "" {
		params.Style = openai.ImageGenerateParamsStyle(options.Style)
	}
	if options.Format != "" {
		params.ResponseFormat = openai.ImageGenerateParamsResponseFormat(options.Format)
	}

	resp, err := c.client.Images.Generate(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}
	return convertResponse(resp), nil
}

// EditImage modifies an existing image according to a text prompt. The image
// and optional mask references are resolved to bytes before upload.
func (c *Client) EditImage(ctx context.Context, prompt, image, mask string, opts ...imagegen.ImageOption) (*imagegen.ImageResponse, error) {
	options := imagegen.ApplyImageOptions(opts...)

	imageData, imageMime, err := c.resolver.Resolve(ctx, image)
	if err != nil {
		return nil, err
	}

	params := openai.ImageEditParams{
		Model:  openai.ImageModel(c.resolveModel(options)),
		Prompt: prompt,
		Image: openai.ImageEditParamsImageUnion{
			OfFile: openai.File(bytes.NewReader(imageData), "image.png", mimeOrPNG(imageMime)),
		},
	}

	if mask != "" {
		maskData, maskMime, err := c.resolver.Resolve(ctx, mask)
		if err != nil {
			return nil, err
		}
		params.Mask = openai.File(bytes.NewReader(maskData), "mask.png", mimeOrPNG(maskMime))
	}

	if options.Size != "" {
		params.Size = openai.ImageEditParamsSize(options.Size)
	}
	params.N = openai.Int(int64(imageCount(options)))
	if options.Format != "" {
		params.ResponseFormat = openai.ImageEditParamsResponseFormat(options.Format)
	}

	resp, err := c.client.Images.Edit(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}
	return convertResponse(resp), nil
}

// CreateVariation produces variations of an existing image.
func (c *Client) CreateVariation(ctx context.Context, image string, opts ...imagegen.ImageOption) (*imagegen.ImageResponse, error) {
	options := imagegen.ApplyImageOptions(opts...)

	imageData, imageMime, err := c.resolver.Resolve(ctx, image)
	if err != nil {
		return nil, err
	}

	params := openai.ImageNewVariationParams{
		Model: openai.ImageModel(c.resolveModel(options)),
		Image: openai.File(bytes.NewReader(imageData), "image.png", mimeOrPNG(imageMime)),
	}

	if options.Size != "" {
		params.Size = openai.ImageNewVariationParamsSize(options.Size)
	}
	params.N = openai.Int(int64(imageCount(options)))
	if options.Format != "" {
		params.ResponseFormat = openai.ImageNewVariationParamsResponseFormat(options.Format)
	}

	resp, err := c.client.Images.NewVariation(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}
	return convertResponse(resp), nil
}

func (c *Client) resolveModel(options *imagegen.ImageOptions) string {
	if options.Model != "" {
		return options.Model
	}
	return c.model
}

func imageCount(options *imagegen.ImageOptions) int {
	if options.Count <= 0 {
		return 1
	}
	return options.Count
}

func mimeOrPNG(mime string) string {
	if mime == "" {
		return "image/png"
	}
	return mime
}

func convertResponse(resp *openai.ImagesResponse) *imagegen.ImageResponse {
	images := make([]imagegen.GeneratedImage, len(resp.Data))
	for i, img := range resp.Data {
		images[i] = imagegen.GeneratedImage{
			URL:           img.URL,
			Base64:        img.B64JSON,
			MimeType:      "image/png",
			RevisedPrompt: img.RevisedPrompt,
		}
	}
	return &imagegen.ImageResponse{Images: images}
}
