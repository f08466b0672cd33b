package product_test

import (
	"testing"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/product"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Cameras & Lenses":        "cameras-lenses",
		"  Party / Event Gear  ":  "party-event-gear",
		"Drones":                  "drones",
		"3D Printers":             "3d-printers",
		"--Audio--Equipment--":    "audio-equipment",
		"Camping & Outdoor (New)": "camping-outdoor-new",
	}

	for in, want := range tests {
		assert.Equal(t, want, product.Slugify(in), in)
	}
}

func TestNewCategory(t *testing.T) {
	c, err := product.NewCategory(kernel.NewUUID(), "Power Tools", " Drills and saws ")

	require.NoError(t, err)
	assert.Equal(t, "power-tools", c.Slug())
	assert.Equal(t, "Drills and saws", c.Description())

	_, err = product.NewCategory(kernel.NewUUID(), " & ", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
