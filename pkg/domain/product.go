package domain

// Product is a catalog item as returned by the products endpoints.
// Name and description carry both the Arabic and English renditions;
// the view layer picks one based on the active language.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameAr        string   `json:"name_ar,omitempty"`
	Description   string   `json:"description,omitempty"`
	DescriptionAr string   `json:"description_ar,omitempty"`
	Price         float64  `json:"price"`
	Currency      string   `json:"currency,omitempty"`
	Category      string   `json:"category,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	InStock       bool     `json:"in_stock"`
	Rating        float64  `json:"rating,omitempty"`
}

// DisplayName returns the Arabic name when one exists and Arabic is asked
// for, otherwise the default name.
func (p Product) DisplayName(arabic bool) string {
	if arabic && p.NameAr != "" {
		return p.NameAr
	}
	return p.Name
}

// DisplayDescription mirrors DisplayName for the description field.
func (p Product) DisplayDescription(arabic bool) string {
	if arabic && p.DescriptionAr != "" {
		return p.DescriptionAr
	}
	return p.Description
}
