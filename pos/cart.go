package pos

import "github.com/mahendrayu/resto-pos/models"

// Cart is the explicit cart state for one POS terminal or storefront
// session. It is a plain state container: operations never fail, and
// selection validation happens before a line reaches the cart. Each session
// owns its cart, so no locking is needed.
type Cart struct {
	Lines       []CartLine   `json:"lines"`
	OrderType   string       `json:"order_type"`
	PaymentType string       `json:"payment_type"`
	CustomerID  uint         `json:"customer_id"`
	Note        string       `json:"note"`
	Discount    Discount     `json:"discount"`
	Charges     []ChargeLine `json:"charges"`
}

// NewCart returns an empty cart carrying the given default charges
// (the business's default taxes and service charges).
func NewCart(defaultCharges []ChargeLine) *Cart {
	c := &Cart{}
	c.Charges = append(c.Charges, defaultCharges...)
	return c
}

// AddNewLine appends a line unconditionally. This is the POS terminal
// semantic: ringing up the same menu item twice produces two entries.
func (c *Cart) AddNewLine(line CartLine) {
	line.Recalc()
	c.Lines = append(c.Lines, line)
}

// AddOrMergeLine replaces an existing line for the same menu item, or
// appends when none exists. This is the storefront semantic: editing an
// item's selections from the menu page updates the cart entry in place.
func (c *Cart) AddOrMergeLine(line CartLine) {
	line.Recalc()
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == line.MenuItemID {
			c.Lines[i] = line
			return
		}
	}
	c.Lines = append(c.Lines, line)
}

// UpdateLine replaces the first line matching the menu item id. A line for
// an item not in the cart is ignored.
func (c *Cart) UpdateLine(line CartLine) {
	line.Recalc()
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == line.MenuItemID {
			c.Lines[i] = line
			return
		}
	}
}

// RemoveLine removes the first line matching the menu item id.
func (c *Cart) RemoveLine(menuItemID uint) {
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == menuItemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the quantity of the first line matching the menu item id,
// floored at 1, and recomputes that line's total.
func (c *Cart) SetQuantity(menuItemID uint, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == menuItemID {
			c.Lines[i].Quantity = quantity
			c.Lines[i].Recalc()
			return
		}
	}
}

// ChangeOrderType sets the order type. Switching to delivery attaches the
// delivery charge; switching away removes it.
func (c *Cart) ChangeOrderType(orderType string, deliveryCharge float64) {
	c.OrderType = orderType

	kept := c.Charges[:0]
	for _, cl := range c.Charges {
		if cl.Scope != models.ChargeDelivery {
			kept = append(kept, cl)
		}
	}
	c.Charges = kept

	if orderType == models.OrderDelivery {
		c.Charges = append(c.Charges, ChargeLine{
			Name:       "Delivery",
			AmountType: models.DiscountAmount,
			Amount:     deliveryCharge,
			Scope:      models.ChargeDelivery,
		})
	}
}

// ChangePaymentType sets the payment type.
func (c *Cart) ChangePaymentType(paymentType string) {
	c.PaymentType = paymentType
}

// SetDiscount sets the order-level discount.
func (c *Cart) SetDiscount(value float64, discountType string) {
	c.Discount = Discount{Value: value, Type: discountType}
}

// SetCustomer attaches a customer to the cart.
func (c *Cart) SetCustomer(customerID uint) {
	c.CustomerID = customerID
}

// SetNote sets the order note.
func (c *Cart) SetNote(note string) {
	c.Note = note
}

// Reset clears the cart back to its initial empty state. Default charges
// are not re-attached; callers start a new cart per session.
func (c *Cart) Reset() {
	*c = Cart{}
}

// Subtotal sums the line totals, excluding charges and discounts.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.Total
	}
	return sum
}

// ChargeTotal resolves all attached charges against the current subtotal.
func (c *Cart) ChargeTotal() float64 {
	sub := c.Subtotal()
	var sum float64
	for _, cl := range c.Charges {
		sum += ResolveCharge(cl, sub)
	}
	return sum
}

// GrandTotal is subtotal + charges - discount. No rounding is applied;
// presentation layers format for display and the stored decimal columns
// round on write.
func (c *Cart) GrandTotal() float64 {
	sub := c.Subtotal()
	return sub + c.ChargeTotal() - ResolveDiscount(c.Discount, sub)
}

// ReadyToSubmit reports whether the cart can be turned into an order:
// at least one line, an order type and a payment type. This is evaluated
// at submit time, never stored.
func (c *Cart) ReadyToSubmit() bool {
	return len(c.Lines) > 0 && c.OrderType != "" && c.PaymentType != ""
}
