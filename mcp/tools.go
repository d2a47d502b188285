package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
	"github.com/AIGeekSquad/image-generator-sub000/request"
)

// Tool names.
const (
	ToolGenerateImage   = "generate_image"
	ToolEditImage       = "edit_image"
	ToolCreateVariation = "create_image_variation"
)

// variationPrompt stands in for the prompt on variation calls, which need no
// instruction from the caller.
const variationPrompt = "Create a variation of the provided image."

const generateSchema = `{
  "type": "object",
  "properties": {
    "prompt": {"type": "string", "description": "Text description of the desired image. Required unless conversationJson is provided."},
    "provider": {"type": "string", "description": "Preferred backend name (e.g. \"openai\", \"google\")."},
    "model": {"type": "string", "description": "Model identifier (e.g. \"gpt-image-1\", \"imagen-4.0-generate-001\")."},
    "size": {"type": "string", "description": "Image dimensions as WIDTHxHEIGHT, e.g. \"1024x1024\"."},
    "quality": {"type": "string", "enum": ["standard", "hd"], "description": "Quality level."},
    "style": {"type": "string", "enum": ["vivid", "natural"], "description": "Visual style."},
    "numberOfImages": {"type": "integer", "minimum": 1, "maximum": 10, "default": 1, "description": "Number of images to generate."},
    "conversationJson": {"type": "string", "description": "JSON array of {role, text, images[]} turns for iterative refinement."}
  }
}`

const editSchema = `{
  "type": "object",
  "properties": {
    "prompt": {"type": "string", "description": "Instruction describing the edit."},
    "image": {"type": "string", "description": "Source image: data URL, absolute http(s) URL, or base64 data."},
    "mask": {"type": "string", "description": "Optional mask image restricting the edit region."},
    "provider": {"type": "string", "description": "Preferred backend name."},
    "model": {"type": "string", "description": "Model identifier."},
    "size": {"type": "string", "description": "Output dimensions as WIDTHxHEIGHT."},
    "numberOfImages": {"type": "integer", "minimum": 1, "maximum": 10, "default": 1}
  },
  "required": ["prompt", "image"]
}`

const variationSchema = `{
  "type": "object",
  "properties": {
    "image": {"type": "string", "description": "Source image: data URL, absolute http(s) URL, or base64 data."},
    "provider": {"type": "string", "description": "Preferred backend name."},
    "model": {"type": "string", "description": "Model identifier."},
    "size": {"type": "string", "description": "Output dimensions as WIDTHxHEIGHT."},
    "numberOfImages": {"type": "integer", "minimum": 1, "maximum": 10, "default": 1}
  },
  "required": ["image"]
}`

// Tools returns the MCP tool definitions served by a Service.
func Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewToolWithRawSchema(ToolGenerateImage,
			"Generate images from a text prompt or an iterative conversation, routed to the best available backend.",
			json.RawMessage(generateSchema)),
		mcp.NewToolWithRawSchema(ToolEditImage,
			"Edit an existing image according to a text instruction, optionally restricted by a mask.",
			json.RawMessage(editSchema)),
		mcp.NewToolWithRawSchema(ToolCreateVariation,
			"Create variations of an existing image.",
			json.RawMessage(variationSchema)),
	}
}

// HandleGenerate implements the generate_image tool.
func (s *Service) HandleGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, logger, errResult := s.parseCall(req, ToolGenerateImage)
	if errResult != nil {
		return errResult, nil
	}
	if strings.TrimSpace(args.Prompt) == "" && len(args.Conversation) == 0 {
		return mcp.NewToolResultError("either a prompt or a conversation is required"), nil
	}

	opts := imageOptions(args)
	resp, err := s.execute(ctx, args, imagegen.OperationGenerate, logger, func(p imagegen.Provider) (*imagegen.ImageResponse, error) {
		if len(args.Conversation) > 0 {
			if cp, ok := p.(imagegen.ConversationalProvider); ok {
				return cp.ContinueConversation(ctx, args.Conversation, opts...)
			}
			// Backend cannot consume a transcript; degrade to the latest
			// user prompt.
			prompt := args.Prompt
			if prompt == "" {
				prompt = lastUserText(args.Conversation)
			}
			return p.GenerateImage(ctx, prompt, opts...)
		}
		return p.GenerateImage(ctx, args.Prompt, opts...)
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return imageResult(resp), nil
}

// HandleEdit implements the edit_image tool.
func (s *Service) HandleEdit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, logger, errResult := s.parseCall(req, ToolEditImage)
	if errResult != nil {
		return errResult, nil
	}
	if args.Image == "" {
		return mcp.NewToolResultError("an image is required for editing"), nil
	}

	opts := imageOptions(args)
	resp, err := s.execute(ctx, args, imagegen.OperationEdit, logger, func(p imagegen.Provider) (*imagegen.ImageResponse, error) {
		return p.EditImage(ctx, args.Prompt, args.Image, args.Mask, opts...)
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return imageResult(resp), nil
}

// HandleVariation implements the create_image_variation tool.
func (s *Service) HandleVariation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, logger, errResult := s.parseCall(req, ToolCreateVariation)
	if errResult != nil {
		return errResult, nil
	}
	if args.Image == "" {
		return mcp.NewToolResultError("an image is required for variations"), nil
	}

	opts := imageOptions(args)
	resp, err := s.execute(ctx, args, imagegen.OperationVariation, logger, func(p imagegen.Provider) (*imagegen.ImageResponse, error) {
		return p.CreateVariation(ctx, args.Image, opts...)
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return imageResult(resp), nil
}

// parseCall parses and validates the raw tool arguments. The third result is
// non-nil when the call must be answered with a tool error immediately.
func (s *Service) parseCall(req mcp.CallToolRequest, tool string) (*request.Arguments, zerolog.Logger, *mcp.CallToolResult) {
	logger := s.logger.With().
		Str("tool", tool).
		Str("request_id", uuid.NewString()).
		Logger()

	raw := req.GetArguments()
	args, err := request.Parse(raw)
	if err != nil {
		return nil, logger, mcp.NewToolResultError(err.Error())
	}

	// Variations derive their instruction from the source image; a missing
	// prompt is not a caller error for this tool.
	if tool == ToolCreateVariation && strings.TrimSpace(args.Prompt) == "" {
		args.Prompt = variationPrompt
	}

	// A transcript that fails to decode is indistinguishable from an absent
	// one downstream; leave a breadcrumb for operators.
	if _, supplied := raw["conversationJson"]; supplied && args.Conversation == nil {
		logger.Debug().Msg("conversationJson was supplied but did not decode to a message array")
	}

	if result := request.Validate(args); !result.Valid() {
		return nil, logger, mcp.NewToolResultError("invalid arguments:\n- " + strings.Join(result.Errors, "\n- "))
	}

	logger.Info().
		Str("provider_hint", args.Provider).
		Str("model", args.Model).
		Int("count", args.NumberOfImages).
		Msg("tool call accepted")
	return args, logger, nil
}

// imageResult maps a backend response onto MCP contents: a text summary
// followed by inline images (and plain URLs for backends that return links).
func imageResult(resp *imagegen.ImageResponse) *mcp.CallToolResult {
	var summary strings.Builder
	fmt.Fprintf(&summary, "Produced %d image(s).", len(resp.Images))

	contents := []mcp.Content{}
	for _, img := range resp.Images {
		if img.RevisedPrompt != "" {
			fmt.Fprintf(&summary, "\nRevised prompt: %s", img.RevisedPrompt)
		}
		switch {
		case img.Base64 != "":
			mime := img.MimeType
			if mime == "" {
				mime = "image/png"
			}
			contents = append(contents, mcp.NewImageContent(img.Base64, mime))
		case img.URL != "":
			fmt.Fprintf(&summary, "\n%s", img.URL)
		}
	}

	contents = append([]mcp.Content{mcp.NewTextContent(summary.String())}, contents...)
	return &mcp.CallToolResult{Content: contents}
}
