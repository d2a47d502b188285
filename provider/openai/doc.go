// Package openai implements the imagegen.Provider contract over the OpenAI
// Images API (GPT Image and DALL-E model families). It supports the generate,
// edit, and variation operations.
//
// Construct clients through the [Factory] so availability and credentials are
// resolved from the selection environment:
//
//	factory := openai.NewFactory()
//	if factory.CanCreate(env) {
//	    provider, err := factory.Create(ctx, env)
//	    ...
//	}
package openai
