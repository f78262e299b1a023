package model

// BookRecord describes a single catalog listing. Records are ephemeral:
// they live in the snapshot cache and in per-user last search results only.
type BookRecord struct {
	Title       string  `json:"title"`
	Price       string  `json:"price"`
	Authors     string  `json:"authors"`
	ISBN        *string `json:"isbn"`
	Description *string `json:"description"`
	URL         string  `json:"url,omitempty"`
	InStock     bool    `json:"in_stock"`
	Image       string  `json:"image,omitempty"`
}

// UnknownAuthor is the placeholder used until detail enrichment fills the field.
const UnknownAuthor = "Unknown Author"

// DisplayPrice returns price text suitable for replies, falling back to "N/A".
func (b BookRecord) DisplayPrice() string {
	if b.Price == "" {
		return "N/A"
	}
	return b.Price
}
