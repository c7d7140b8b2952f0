package pos

import (
	"fmt"

	"github.com/mahendrayu/resto-pos/models"
)

// SelectVariantOption applies one option pick to the current selections and
// returns the new selection list (the input is not mutated).
//
// Single-select variants replace whatever was chosen for that variant.
// Multi-select variants toggle the option; when the last option of a variant
// is toggled off, the variant entry disappears entirely.
func SelectVariantOption(selections []VariantSelection, variant models.Variant, option models.VariantOption) []VariantSelection {
	chosen := ChosenOption{OptionID: option.ID, Name: option.Name, Price: option.Price}

	out := make([]VariantSelection, 0, len(selections)+1)
	found := false
	for _, vs := range selections {
		if vs.VariantID != variant.ID {
			out = append(out, vs)
			continue
		}
		found = true
		if variant.SelectionMode == models.SelectionSingle {
			out = append(out, VariantSelection{
				VariantID: variant.ID,
				Name:      variant.Name,
				Options:   []ChosenOption{chosen},
			})
			continue
		}
		// multi-select: toggle membership
		opts := make([]ChosenOption, 0, len(vs.Options)+1)
		removed := false
		for _, o := range vs.Options {
			if o.OptionID == option.ID {
				removed = true
				continue
			}
			opts = append(opts, o)
		}
		if !removed {
			opts = append(opts, chosen)
		}
		if len(opts) > 0 {
			out = append(out, VariantSelection{VariantID: variant.ID, Name: variant.Name, Options: opts})
		}
	}
	if !found {
		out = append(out, VariantSelection{
			VariantID: variant.ID,
			Name:      variant.Name,
			Options:   []ChosenOption{chosen},
		})
	}
	return out
}

// SelectAddon toggles an addon. A newly selected addon starts at quantity 1.
func SelectAddon(selections []AddonSelection, addon models.Addon) []AddonSelection {
	out := make([]AddonSelection, 0, len(selections)+1)
	removed := false
	for _, as := range selections {
		if as.AddonID == addon.ID {
			removed = true
			continue
		}
		out = append(out, as)
	}
	if !removed {
		out = append(out, AddonSelection{
			AddonID:  addon.ID,
			Name:     addon.Name,
			Price:    addon.Price,
			Quantity: 1,
		})
	}
	return out
}

// SetAddonQuantity updates the quantity of an already selected addon,
// floored at 1. An addon that is not selected stays unselected; callers
// select first, then adjust quantity.
func SetAddonQuantity(selections []AddonSelection, addonID uint, quantity int) []AddonSelection {
	if quantity < 1 {
		quantity = 1
	}
	out := make([]AddonSelection, len(selections))
	for i, as := range selections {
		if as.AddonID == addonID {
			as.Quantity = quantity
		}
		out[i] = as
	}
	return out
}

// ValidateSelections checks the chosen selections against the menu item's
// variant rules and returns one message per violated constraint. An empty
// result means the item may be added to a cart.
//
// Required variants must be covered. Min/max counts apply to multi-select
// variants that are required, or that the customer has started picking from;
// an optional group left untouched is not an error.
func ValidateSelections(variants []models.Variant, selections []VariantSelection) []string {
	byVariant := make(map[uint]VariantSelection, len(selections))
	for _, vs := range selections {
		byVariant[vs.VariantID] = vs
	}

	var errs []string
	for _, v := range variants {
		sel, ok := byVariant[v.ID]
		count := len(sel.Options)

		if v.Requirement == models.VariantRequired && count == 0 {
			errs = append(errs, fmt.Sprintf("%s: selection is required", v.Name))
			continue
		}
		if v.SelectionMode != models.SelectionMultiple {
			continue
		}
		if !ok && v.Requirement != models.VariantRequired {
			continue
		}
		if v.MinSelect > 0 && count < v.MinSelect {
			errs = append(errs, fmt.Sprintf("%s: select at least %d options", v.Name, v.MinSelect))
		}
		if v.MaxSelect > 0 && count > v.MaxSelect {
			errs = append(errs, fmt.Sprintf("%s: select at most %d options", v.Name, v.MaxSelect))
		}
	}
	return errs
}
