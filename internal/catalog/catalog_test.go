package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnownVehicles(t *testing.T) {
	cat := Default()

	for _, vehicle := range []string{"AOE Apex", "AOE Volt", "AOE Thunder"} {
		entry := cat.Lookup(vehicle)
		assert.NotEmpty(t, entry.Category, vehicle)
		assert.NotEmpty(t, entry.Features, vehicle)
		assert.NotEmpty(t, entry.Images, vehicle)
	}
}

func TestLookupUnknownVehicleReturnsEmptyEntry(t *testing.T) {
	cat := Default()

	entry := cat.Lookup("AOE Phantom")

	assert.Empty(t, entry.Category)
	assert.Empty(t, entry.Features)
	assert.Empty(t, entry.Images)
}

func TestTagline(t *testing.T) {
	cat := Default()

	assert.Equal(t,
		"Drive the future. Electrify your journey with groundbreaking technology.",
		cat.Tagline("Electric Compact"))

	// Categoria desconhecida (ou vazia) cai no genérico.
	assert.Equal(t, GenericTagline, cat.Tagline("Hovercraft"))
	assert.Equal(t, GenericTagline, cat.Tagline(""))
}

func TestFirstImage(t *testing.T) {
	cat := Default()

	assert.Equal(t,
		"https://storage.googleapis.com/aoe-motors-images/AOE%20Volt.jpg",
		cat.FirstImage("AOE Volt"))

	assert.Empty(t, cat.FirstImage("AOE Phantom"))
}
