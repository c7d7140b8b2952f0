package pos

// Package pos holds the order pricing and cart engine shared by the POS
// terminal and the customer storefront. It is pure in-memory state: no
// database, no HTTP. Controllers build a Cart from request payloads, let the
// engine validate and price it, and persist the result themselves.

// ChosenOption is one picked option inside a variant selection, with the
// surcharge snapshotted at selection time.
type ChosenOption struct {
	OptionID uint    `json:"option_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}

// VariantSelection records the chosen option(s) for one variant group.
// Single-select variants carry exactly one option; multi-select variants
// carry one entry per toggled option.
type VariantSelection struct {
	VariantID uint           `json:"variant_id"`
	Name      string         `json:"name"`
	Options   []ChosenOption `json:"options"`
}

// AddonSelection records one selected addon. Quantity is never below 1;
// an unselected addon is simply absent from the list.
type AddonSelection struct {
	AddonID  uint    `json:"addon_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Discount is an order-level or item-level discount.
type Discount struct {
	Value float64 `json:"value"`
	Type  string  `json:"type"` // models.DiscountAmount or models.DiscountPercentage
}

// ChargeLine is a charge attached to the cart (tax, service, delivery).
// Percentage charges resolve against the cart subtotal at total time.
type ChargeLine struct {
	ChargeID   uint    `json:"charge_id"`
	Name       string  `json:"name"`
	AmountType string  `json:"amount_type"`
	Amount     float64 `json:"amount"`
	Scope      string  `json:"scope"`
}

// CartLine is one line entry in the cart: a menu item with its chosen
// variants, addons and quantity. UnitPrice is the discounted base price;
// Total is kept in sync by the cart operations.
type CartLine struct {
	MenuItemID uint               `json:"menu_item_id"`
	Name       string             `json:"name"`
	UnitPrice  float64            `json:"unit_price"`
	Variants   []VariantSelection `json:"variants"`
	Addons     []AddonSelection   `json:"addons"`
	Quantity   int                `json:"quantity"`
	Note       string             `json:"note"`
	Total      float64            `json:"total"`
}

// Recalc recomputes the line total from its current selections and quantity.
func (l *CartLine) Recalc() {
	l.Total = LineTotal(l.UnitPrice, l.Variants, l.Addons, l.Quantity)
}
