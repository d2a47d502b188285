package mcp

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	imagegen "github.com/AIGeekSquad/image-generator-sub000"
	"github.com/AIGeekSquad/image-generator-sub000/request"
	"github.com/AIGeekSquad/image-generator-sub000/selection"
)

// operationAttempts bounds how many distinct backends one tool call will try
// when a backend's operation fails after selection.
const operationAttempts = 2

// Service runs tool calls through the parse → validate → select → invoke
// pipeline. It holds no request-scoped state and is safe for concurrent use.
type Service struct {
	selector *selection.FallbackSelector
	env      imagegen.Environment
	logger   zerolog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithEnvironment sets the environment used for availability checks and
// provider construction. Defaults to the process environment.
func WithEnvironment(env imagegen.Environment) ServiceOption {
	return func(s *Service) {
		s.env = env
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFallbackSelector overrides the selector built from the registry.
// Intended for tests.
func WithFallbackSelector(selector *selection.FallbackSelector) ServiceOption {
	return func(s *Service) {
		s.selector = selector
	}
}

// NewService creates a Service selecting over the factories in registry.
func NewService(registry *selection.Registry, opts ...ServiceOption) *Service {
	s := &Service{
		env:    imagegen.OSEnvironment(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.selector == nil {
		scoring := selection.NewSelector(registry, selection.WithLogger(s.logger))
		s.selector = selection.NewFallbackSelector(scoring, selection.WithFallbackLogger(s.logger))
	}
	return s
}

// execute selects a backend for op and invokes invoke on it. When the
// operation itself fails recoverably, the backend is marked failed in the
// request's selection context and selection runs again, up to
// operationAttempts distinct backends.
func (s *Service) execute(
	ctx context.Context,
	args *request.Arguments,
	op imagegen.Operation,
	logger zerolog.Logger,
	invoke func(imagegen.Provider) (*imagegen.ImageResponse, error),
) (*imagegen.ImageResponse, error) {
	selCtx := &imagegen.SelectionContext{
		PreferredProvider: args.Provider,
		Model:             args.Model,
		Operation:         op,
	}

	var lastErr error
	for attempt := 0; attempt < operationAttempts; attempt++ {
		provider, err := s.selector.SelectProvider(ctx, selCtx, s.env)
		if err != nil {
			if lastErr != nil {
				// Selection exhausted after an operation failure; the
				// operation error is the more useful one.
				return nil, lastErr
			}
			return nil, err
		}

		resp, err := invoke(provider)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil || imagegen.IsUserInput(err) || imagegen.IsPermanent(err) {
			return nil, err
		}
		logger.Warn().
			Err(err).
			Str("provider", provider.Name()).
			Msg("operation failed; excluding backend and reselecting")
		selCtx.MarkFailed(provider.Name())
	}
	return nil, lastErr
}

// imageOptions maps parsed arguments onto provider options.
func imageOptions(args *request.Arguments) []imagegen.ImageOption {
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
	return opts
}

// lastUserText returns the text of the most recent user turn, for backends
// that cannot consume a full transcript.
func lastUserText(conversation []imagegen.Message) string {
	for i := len(conversation) - 1; i >= 0; i-- {
		if conversation[i].Role == imagegen.RoleUser && strings.TrimSpace(conversation[i].Text) != "" {
			return conversation[i].Text
		}
	}
	return ""
}
