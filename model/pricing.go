package model

import imagegen "github.com/AIGeekSquad/image-generator-sub000"

// ImagePricing contains image generation pricing (USD).
// Different providers use different pricing models.
type ImagePricing struct {
	// PerImage is a flat per-image price (Google Imagen, DALL-E 2).
	PerImage float64
	// LowQuality is the price for low quality images (OpenAI).
	LowQuality float64
	// MediumQuality is the price for medium quality images (OpenAI).
	MediumQuality float64
	// HighQuality is the price for high quality images (OpenAI).
	HighQuality float64
}

// HasQualityTiers returns true if the model has quality-based pricing tiers.
func (p ImagePricing) HasQualityTiers() bool {
	return p.LowQuality > 0 || p.MediumQuality > 0 || p.HighQuality > 0
}

// HasFlatPricing returns true if the model uses flat per-image pricing.
func (p ImagePricing) HasFlatPricing() bool {
	return p.PerImage > 0
}

// Cost estimates the price of generating count images at the given quality.
// Flat-priced models ignore quality. Quality-tiered models map "hd" to the
// high tier and everything else to the medium tier; when the matched tier has
// no price the flat price is used as a last resort.
func (m ImageModel) Cost(count int, quality imagegen.ImageQuality) float64 {
	if count <= 0 {
		return 0
	}
	p := m.pricing

	if !p.HasQualityTiers() {
		return float64(count) * p.PerImage
	}

	perImage := p.MediumQuality
	if quality == imagegen.ImageQualityHD && p.HighQuality > 0 {
		perImage = p.HighQuality
	}
	if perImage == 0 {
		perImage = p.PerImage
	}
	return float64(count) * perImage
}
