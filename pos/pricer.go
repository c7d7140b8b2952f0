package pos

import "github.com/mahendrayu/resto-pos/models"

// UnitPrice computes the discounted base price of a menu item.
//
// Amount discounts are subtracted as-is and are deliberately not clamped at
// zero: admin-entered discounts are validated against the price at entry
// time, and a negative unit price surfacing here means that validation was
// bypassed, which we want visible rather than silently corrected.
func UnitPrice(base, discount float64, discountType string) float64 {
	switch discountType {
	case models.DiscountPercentage:
		return base - base*discount/100
	case models.DiscountAmount:
		return base - discount
	default:
		return base
	}
}

// LineTotal computes a line's total:
//
//	(unit + sum of option surcharges + sum of addon price*qty) * quantity
//
// Linear in quantity by construction.
func LineTotal(unit float64, variants []VariantSelection, addons []AddonSelection, quantity int) float64 {
	each := unit
	for _, vs := range variants {
		for _, opt := range vs.Options {
			each += opt.Price
		}
	}
	for _, as := range addons {
		each += as.Price * float64(as.Quantity)
	}
	return each * float64(quantity)
}

// NewLine builds a priced cart line from a menu item and its selections.
// Quantity is floored at 1.
func NewLine(item models.MenuItem, variants []VariantSelection, addons []AddonSelection, quantity int) CartLine {
	if quantity < 1 {
		quantity = 1
	}
	line := CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  UnitPrice(item.Price, item.DiscountAmount, item.DiscountType),
		Variants:   variants,
		Addons:     addons,
		Quantity:   quantity,
	}
	line.Recalc()
	return line
}

// ResolveDiscount turns a discount into a concrete amount against a subtotal.
func ResolveDiscount(d Discount, subtotal float64) float64 {
	if d.Value == 0 {
		return 0
	}
	if d.Type == models.DiscountPercentage {
		return subtotal * d.Value / 100
	}
	return d.Value
}

// ResolveCharge turns a charge line into a concrete amount against a subtotal.
func ResolveCharge(cl ChargeLine, subtotal float64) float64 {
	if cl.AmountType == models.DiscountPercentage {
		return subtotal * cl.Amount / 100
	}
	return cl.Amount
}

// ChargeLinesFrom maps charge master data into cart charge lines.
func ChargeLinesFrom(charges []models.Charge) []ChargeLine {
	lines := make([]ChargeLine, 0, len(charges))
	for _, ch := range charges {
		lines = append(lines, ChargeLine{
			ChargeID:   ch.ID,
			Name:       ch.Name,
			AmountType: ch.AmountType,
			Amount:     ch.Amount,
			Scope:      ch.Scope,
		})
	}
	return lines
}
