package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
	"github.com/AIGeekSquad/image-generator-sub000/model"
	"github.com/AIGeekSquad/image-generator-sub000/provider/google"
	"github.com/AIGeekSquad/image-generator-sub000/provider/openai"
	"github.com/AIGeekSquad/image-generator-sub000/request"
	"github.com/AIGeekSquad/image-generator-sub000/selection"
)

// appContext carries the flag values and the wired selection stack shared by
// all subcommands.
type appContext struct {
	provider  string
	model     string
	size      string
	count     int
	outputDir string
	verbose   bool

	logger   zerolog.Logger
	env      imagegen.Environment
	registry *selection.Registry
	selector *selection.FallbackSelector
}

func (a *appContext) setup() {
	level := zerolog.InfoLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().Level(level)

	httpClient := &http.Client{Timeout: 120 * time.Second}
	registry := selection.NewRegistry(
		openai.NewFactory(openai.WithFactoryHTTPClient(httpClient)),
		google.NewFactory(google.WithFactoryHTTPClient(httpClient)),
	)
	a.env = imagegen.OSEnvironment()
	a.selector = selection.NewFallbackSelector(
		selection.NewSelector(registry, selection.WithLogger(a.logger)),
		selection.WithFallbackLogger(a.logger),
	)
	a.registry = registry
}

// rawArgs folds the shared flags into the loosely-typed parameter map the
// request parser consumes.
func (a *appContext) rawArgs() map[string]any {
	raw := map[string]any{
		"numberOfImages": a.count,
	}
	if a.provider != "" {
		raw["provider"] = a.provider
	}
	if a.model != "" {
		raw["model"] = a.model
	}
	if a.size != "" {
		raw["size"] = a.size
	}
	return raw
}

func newGenerateCommand(app *appContext) *cobra.Command {
	var quality, style string

	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Generate images from a text prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			raw := app.rawArgs()
			raw["prompt"] = cmdArgs[0]
			if quality != "" {
				raw["quality"] = quality
			}
			if style != "" {
				raw["style"] = style
			}
			return app.run(cmd.Context(), raw, imagegen.OperationGenerate,
				func(ctx context.Context, p imagegen.Provider, args *request.Arguments, opts []imagegen.ImageOption) (*imagegen.ImageResponse, error) {
					return p.GenerateImage(ctx, args.Prompt, opts...)
				})
		},
	}
	cmd.Flags().StringVar(&quality, "quality", "", `quality level ("standard" or "hd")`)
	cmd.Flags().StringVar(&style, "style", "", `visual style ("vivid" or "natural")`)
	return cmd
}

func newEditCommand(app *appContext) *cobra.Command {
	var mask string

	cmd := &cobra.Command{
		Use:   "edit <image> <prompt>",
		Short: "Edit an existing image according to an instruction",
		Long: `Edit an existing image. The image argument is a file path, an
absolute http(s) URL, a data URL, or raw base64 data.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			image, err := imageArgument(cmdArgs[0])
			if err != nil {
				return err
			}
			raw := app.rawArgs()
			raw["image"] = image
			raw["prompt"] = cmdArgs[1]
			if mask != "" {
				maskRef, err := imageArgument(mask)
				if err != nil {
					return err
				}
				raw["mask"] = maskRef
			}
			return app.run(cmd.Context(), raw, imagegen.OperationEdit,
				func(ctx context.Context, p imagegen.Provider, args *request.Arguments, opts []imagegen.ImageOption) (*imagegen.ImageResponse, error) {
					return p.EditImage(ctx, args.Prompt, args.Image, args.Mask, opts...)
				})
		},
	}
	cmd.Flags().StringVar(&mask, "mask", "", "mask image restricting the edit region (path, URL, or base64)")
	return cmd
}

func newVariationCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "variation <image>",
		Short: "Create variations of an existing image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			image, err := imageArgument(cmdArgs[0])
			if err != nil {
				return err
			}
			raw := app.rawArgs()
			raw["image"] = image
			// Variations need no prompt; satisfy the shared rule explicitly.
			raw["prompt"] = "variation"
			return app.run(cmd.Context(), raw, imagegen.OperationVariation,
				func(ctx context.Context, p imagegen.Provider, args *request.Arguments, opts []imagegen.ImageOption) (*imagegen.ImageResponse, error) {
					return p.CreateVariation(ctx, args.Image, opts...)
				})
		},
	}
}

func newProvidersCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List backends and their availability",
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			for _, f := range app.registry.Factories() {
				meta := f.Metadata()
				status := "unavailable (missing " + strings.Join(meta.Requirements, ", ") + ")"
				if f.CanCreate(app.env) {
					status = "available"
				}
				fmt.Printf("%-10s %s\n", meta.Name, status)
				fmt.Printf("           %s\n", meta.Description)
				fmt.Printf("           default model: %s, priority: %d\n", meta.Capabilities.DefaultModel, meta.Priority)
			}
			return nil
		},
	}
}

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List catalogued models with supported operations and estimated cost",
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			fmt.Println("openai:")
			for _, m := range model.OpenAIModels() {
				fmt.Println("  " + modelLine(m))
			}
			fmt.Println("google:")
			for _, m := range model.GoogleModels() {
				fmt.Println("  " + modelLine(m))
			}
			return nil
		},
	}
}

// modelLine renders one catalog row: identifier, operations, and the
// estimated per-image price at standard and hd quality.
func modelLine(m model.ImageModel) string {
	ops := make([]string, len(m.Operations()))
	for i, op := range m.Operations() {
		ops[i] = op.String()
	}
	return fmt.Sprintf("%-28s %-28s $%.3f standard / $%.3f hd",
		m.String(), strings.Join(ops, ","),
		m.Cost(1, imagegen.ImageQualityStandard), m.Cost(1, imagegen.ImageQualityHD))
}

type invokeFunc func(context.Context, imagegen.Provider, *request.Arguments, []imagegen.ImageOption) (*imagegen.ImageResponse, error)

// run executes the shared pipeline: parse, validate, select, invoke, save.
func (a *appContext) run(ctx context.Context, raw map[string]any, op imagegen.Operation, invoke invokeFunc) error {
	args, err := request.Parse(raw)
	if err != nil {
		return err
	}
	if result := request.Validate(args); !result.Valid() {
		return fmt.Errorf("invalid arguments:\n  - %s", strings.Join(result.Errors, "\n  - "))
	}

	selCtx := &imagegen.SelectionContext{
		PreferredProvider: args.Provider,
		Model:             args.Model,
		Operation:         op,
	}
	provider, err := a.selector.SelectProvider(ctx, selCtx, a.env)
	if err != nil {
		return err
	}
	a.logger.Info().Str("provider", provider.Name()).Str("operation", op.String()).Msg("backend selected")

	opts := []imagegen.ImageOption{
		imagegen.WithImageCount(args.NumberOfImages),
		imagegen.WithImageFormat(imagegen.ImageFormatBase64),
	}
	if args.Model != "" {
		opts = append(opts, imagegen.WithImageModel(args.Model))
	}
	if args.ParsedSize != nil {
		opts = append(opts, imagegen.WithImageSize(args.ParsedSize.String()))
	}
	if args.Quality != "" {
		opts = append(opts, imagegen.WithImageQuality(imagegen.ImageQuality(args.Quality)))
	}
	if args.Style != "" {
		opts = append(opts, imagegen.WithImageStyle(imagegen.ImageStyle(args.Style)))
	}

	resp, err := invoke(ctx, provider, args, opts)
	if err != nil {
		return err
	}
	return a.saveImages(resp)
}

func (a *appContext) saveImages(resp *imagegen.ImageResponse) error {
	if len(resp.Images) == 0 {
		return fmt.Errorf("the backend returned no images")
	}

	saved := 0
	for i, img := range resp.Images {
		if img.RevisedPrompt != "" {
			fmt.Println("Revised prompt:", img.RevisedPrompt)
		}
		if img.URL != "" {
			fmt.Println(img.URL)
			continue
		}
		if img.Base64 == "" {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(img.Base64)
		if err != nil {
			return fmt.Errorf("decode image %d: %w", i, err)
		}
		name := filepath.Join(a.outputDir, fmt.Sprintf("image-%d-%d%s", time.Now().Unix(), i+1, extensionFor(img.MimeType)))
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return err
		}
		fmt.Println("Saved", name)
		saved++
	}
	a.logger.Debug().Int("saved", saved).Msg("images written")
	return nil
}

// imageArgument turns a CLI image argument into a reference the pipeline
// accepts: existing file paths are read and base64-encoded, everything else
// passes through untouched.
func imageArgument(arg string) (string, error) {
	info, err := os.Stat(arg)
	if err != nil || info.IsDir() {
		return arg, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("read image file %s: %w", arg, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func extensionFor(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
