// Package imagegen provides a unified request surface for generating, editing,
// and varying images across multiple independently-hosted AI backends.
//
// Each backend (OpenAI, Google, ...) has different capabilities, models, and
// call signatures. The library normalizes a loosely-typed inbound request into
// a strongly-typed one and selects, at request time, which backend should
// service it, with graceful fallback when the first choice is unavailable.
//
// # Core Pieces
//
//   - [Provider]: the backend contract (generate / edit / variation operations)
//   - [Factory]: describes and lazily constructs a Provider for the current environment
//   - [CapabilityDescriptor]: declarative data about what a backend can do
//   - [SelectionContext]: per-request selection hints and failure exclusions
//   - [github.com/AIGeekSquad/image-generator-sub000/request]: argument parsing and validation
//   - [github.com/AIGeekSquad/image-generator-sub000/selection]: registry, scoring selector, fallback selector
//
// # Basic Usage
//
// Parse and validate a raw parameter map, then select a backend:
//
//	args, err := request.Parse(rawArgs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result := request.Validate(args); !result.Valid() {
//	    log.Fatal(strings.Join(result.Errors, "; "))
//	}
//
//	registry := selection.NewRegistry(
//	    openai.NewFactory(),
//	    google.NewFactory(),
//	)
//	selector := selection.NewFallbackSelector(selection.NewSelector(registry))
//
//	selCtx := &imagegen.SelectionContext{
//	    PreferredProvider: args.Provider,
//	    Model:             args.Model,
//	    Operation:         imagegen.OperationGenerate,
//	}
//	provider, err := selector.SelectProvider(ctx, selCtx, imagegen.OSEnvironment())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := provider.GenerateImage(ctx, args.Prompt,
//	    imagegen.WithImageCount(args.NumberOfImages),
//	)
//
// # Tool Surface
//
// The [github.com/AIGeekSquad/image-generator-sub000/mcp] package exposes the
// same pipeline as MCP tools over stdio; see cmd/imagegen-mcp.
package imagegen
