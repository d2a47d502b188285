// Package google implements the imagegen.Provider contract over the Google
// GenAI SDK. Generation routes to Imagen or to Gemini image models depending
// on the requested model; editing, variations, and multi-turn conversations
// use Gemini multimodal generation.
package google
