package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductDisplayName(t *testing.T) {
	p := Product{Name: "Leather Bag", NameAr: "حقيبة جلدية"}
	assert.Equal(t, "حقيبة جلدية", p.DisplayName(true))
	assert.Equal(t, "Leather Bag", p.DisplayName(false))

	// No Arabic rendition: fall back to the default name.
	p.NameAr = ""
	assert.Equal(t, "Leather Bag", p.DisplayName(true))
}

func TestProductDisplayDescription(t *testing.T) {
	p := Product{Description: "Hand stitched", DescriptionAr: "مخيطة يدويا"}
	assert.Equal(t, "مخيطة يدويا", p.DisplayDescription(true))
	assert.Equal(t, "Hand stitched", p.DisplayDescription(false))
}
