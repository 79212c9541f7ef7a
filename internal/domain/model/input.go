// Package model contains domain models passed between layers.
package model

// Input is a candidate piece of content submitted for scoring.
// Field names mirror the JSON contract consumed by callers.
type Input struct {
	Title             string         `json:"title"`
	MetaDescription   string         `json:"metaDescription"`
	Content           string         `json:"content"` // raw HTML body
	PrimaryKeyword    string         `json:"primaryKeyword"`
	SecondaryKeywords []string       `json:"secondaryKeywords,omitempty"`
	URL               string         `json:"url,omitempty"`
	FeaturedImage     *FeaturedImage `json:"featuredImage,omitempty"`
}

// FeaturedImage is the hero image attached to a draft, if any.
type FeaturedImage struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}
