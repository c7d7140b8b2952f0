package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mahendrayu/resto-pos/models"
)

var (
	sizeVariant = models.Variant{
		ID: 1, Name: "Size",
		SelectionMode: models.SelectionSingle,
		Requirement:   models.VariantRequired,
		Options: []models.VariantOption{
			{ID: 11, VariantID: 1, Name: "Regular", Price: 0},
			{ID: 12, VariantID: 1, Name: "Large", Price: 5},
		},
	}
	toppingVariant = models.Variant{
		ID: 2, Name: "Toppings",
		SelectionMode: models.SelectionMultiple,
		Requirement:   models.VariantOptional,
		MinSelect:     2,
		MaxSelect:     3,
		Options: []models.VariantOption{
			{ID: 21, VariantID: 2, Name: "Egg", Price: 2},
			{ID: 22, VariantID: 2, Name: "Chicken", Price: 4},
			{ID: 23, VariantID: 2, Name: "Mushroom", Price: 3},
			{ID: 24, VariantID: 2, Name: "Prawn", Price: 6},
		},
	}
)

func TestSelectVariantOptionSingleReplaces(t *testing.T) {
	sel := SelectVariantOption(nil, sizeVariant, sizeVariant.Options[0])
	assert.Len(t, sel, 1)
	assert.Equal(t, uint(11), sel[0].Options[0].OptionID)

	sel = SelectVariantOption(sel, sizeVariant, sizeVariant.Options[1])
	assert.Len(t, sel, 1)
	assert.Len(t, sel[0].Options, 1)
	assert.Equal(t, uint(12), sel[0].Options[0].OptionID)
	assert.InDelta(t, 5, sel[0].Options[0].Price, 1e-9)
}

func TestSelectVariantOptionMultipleToggles(t *testing.T) {
	sel := SelectVariantOption(nil, toppingVariant, toppingVariant.Options[0])
	sel = SelectVariantOption(sel, toppingVariant, toppingVariant.Options[1])
	assert.Len(t, sel, 1)
	assert.Len(t, sel[0].Options, 2)

	// toggling an already chosen option removes it
	sel = SelectVariantOption(sel, toppingVariant, toppingVariant.Options[0])
	assert.Len(t, sel[0].Options, 1)
	assert.Equal(t, uint(22), sel[0].Options[0].OptionID)

	// emptying a variant drops its entry entirely
	sel = SelectVariantOption(sel, toppingVariant, toppingVariant.Options[1])
	assert.Empty(t, sel)
}

func TestSelectVariantOptionLeavesOtherVariantsAlone(t *testing.T) {
	sel := SelectVariantOption(nil, sizeVariant, sizeVariant.Options[1])
	sel = SelectVariantOption(sel, toppingVariant, toppingVariant.Options[2])
	assert.Len(t, sel, 2)

	sel = SelectVariantOption(sel, sizeVariant, sizeVariant.Options[0])
	assert.Len(t, sel, 2)
	for _, vs := range sel {
		if vs.VariantID == toppingVariant.ID {
			assert.Equal(t, uint(23), vs.Options[0].OptionID)
		}
	}
}

func TestSelectAddonToggleIsIdempotentOverTwoToggles(t *testing.T) {
	cheese := models.Addon{ID: 5, Name: "Extra Cheese", Price: 3}
	sauce := models.Addon{ID: 6, Name: "Sambal", Price: 1}

	sel := SelectAddon(nil, cheese)
	assert.Len(t, sel, 1)
	assert.Equal(t, 1, sel[0].Quantity)

	sel = SelectAddon(sel, sauce)
	before := make([]AddonSelection, len(sel))
	copy(before, sel)

	sel = SelectAddon(sel, cheese)
	sel = SelectAddon(sel, cheese)
	assert.Equal(t, before, sel)
}

func TestSetAddonQuantity(t *testing.T) {
	cheese := models.Addon{ID: 5, Name: "Extra Cheese", Price: 3}
	sel := SelectAddon(nil, cheese)

	sel = SetAddonQuantity(sel, 5, 4)
	assert.Equal(t, 4, sel[0].Quantity)

	// floored at 1
	sel = SetAddonQuantity(sel, 5, 0)
	assert.Equal(t, 1, sel[0].Quantity)

	// does not auto-select an absent addon
	sel = SetAddonQuantity(sel, 99, 3)
	assert.Len(t, sel, 1)
}

func TestValidateSelections(t *testing.T) {
	variants := []models.Variant{sizeVariant, toppingVariant}

	pick := func(v models.Variant, idx ...int) []VariantSelection {
		var sel []VariantSelection
		for _, i := range idx {
			sel = SelectVariantOption(sel, v, v.Options[i])
		}
		return sel
	}

	t.Run("missing required variant", func(t *testing.T) {
		errs := ValidateSelections(variants, nil)
		assert.Len(t, errs, 1)
		assert.Contains(t, errs[0], "Size")
	})

	t.Run("untouched optional group is fine", func(t *testing.T) {
		errs := ValidateSelections(variants, pick(sizeVariant, 0))
		assert.Empty(t, errs)
	})

	t.Run("below min", func(t *testing.T) {
		sel := append(pick(sizeVariant, 0), pick(toppingVariant, 0)...)
		errs := ValidateSelections(variants, sel)
		assert.Len(t, errs, 1)
		assert.Contains(t, errs[0], "at least 2")
	})

	t.Run("above max", func(t *testing.T) {
		sel := append(pick(sizeVariant, 0), pick(toppingVariant, 0, 1, 2, 3)...)
		errs := ValidateSelections(variants, sel)
		assert.Len(t, errs, 1)
		assert.Contains(t, errs[0], "at most 3")
	})

	t.Run("within min and max", func(t *testing.T) {
		sel := append(pick(sizeVariant, 1), pick(toppingVariant, 0, 2)...)
		errs := ValidateSelections(variants, sel)
		assert.Empty(t, errs)
	})

	t.Run("every violated constraint is reported", func(t *testing.T) {
		errs := ValidateSelections(variants, pick(toppingVariant, 0))
		assert.Len(t, errs, 2) // missing size + below topping min
	})
}
