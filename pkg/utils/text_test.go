package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Food", Capitalize("food"))
	assert.Equal(t, "Retail", Capitalize("RETAIL"))
	assert.Equal(t, "Services", Capitalize("services"))
	assert.Equal(t, "", Capitalize(""))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "food", NormalizeCategory("  Food "))
	assert.Equal(t, "all", NormalizeCategory("ALL"))
}
