// Package model provides typed image-model constants for the supported
// backends, with per-image pricing for cost estimation.
//
// Models know their backend name, so factories can build their example-model
// lists from the catalog and callers can list what a backend serves:
//
//	m := model.GPTImage1
//	fmt.Println(m.String(), m.Backend())  // "gpt-image-1 openai"
//
// Pricing differs by provider: OpenAI models use quality tiers, Google models
// use a flat per-image price. Use the ImagePricing helper methods to check
// which applies:
//
//	pricing := model.Imagen4.Pricing()
//	if pricing.HasFlatPricing() {
//	    cost := float64(n) * pricing.PerImage
//	}
package model
