package pos

import "fmt"

// ActionType enumerates the cart mutations a POS terminal can dispatch.
type ActionType string

const (
	ActionAddLine           ActionType = "add_line"
	ActionMergeLine         ActionType = "merge_line"
	ActionUpdateLine        ActionType = "update_line"
	ActionRemoveLine        ActionType = "remove_line"
	ActionSetQuantity       ActionType = "set_quantity"
	ActionSetDiscount       ActionType = "set_discount"
	ActionSetCustomer       ActionType = "set_customer"
	ActionSetNote           ActionType = "set_note"
	ActionChangeOrderType   ActionType = "change_order_type"
	ActionChangePaymentType ActionType = "change_payment_type"
	ActionReset             ActionType = "reset"
)

// Action is one cart mutation message. Terminals send actions instead of
// calling cart methods directly, which keeps the engine decoupled from
// whatever UI drives it.
type Action struct {
	Type           ActionType `json:"type"`
	Line           *CartLine  `json:"line,omitempty"`
	MenuItemID     uint       `json:"menu_item_id,omitempty"`
	Quantity       int        `json:"quantity,omitempty"`
	Discount       *Discount  `json:"discount,omitempty"`
	CustomerID     uint       `json:"customer_id,omitempty"`
	Note           string     `json:"note,omitempty"`
	OrderType      string     `json:"order_type,omitempty"`
	DeliveryCharge float64    `json:"delivery_charge,omitempty"`
	PaymentType    string     `json:"payment_type,omitempty"`
}

// Apply dispatches an action onto the cart. Malformed actions (unknown type,
// missing line payload) are rejected without touching cart state.
func (c *Cart) Apply(a Action) error {
	switch a.Type {
	case ActionAddLine:
		if a.Line == nil {
			return fmt.Errorf("%s: missing line", a.Type)
		}
		c.AddNewLine(*a.Line)
	case ActionMergeLine:
		if a.Line == nil {
			return fmt.Errorf("%s: missing line", a.Type)
		}
		c.AddOrMergeLine(*a.Line)
	case ActionUpdateLine:
		if a.Line == nil {
			return fmt.Errorf("%s: missing line", a.Type)
		}
		c.UpdateLine(*a.Line)
	case ActionRemoveLine:
		c.RemoveLine(a.MenuItemID)
	case ActionSetQuantity:
		c.SetQuantity(a.MenuItemID, a.Quantity)
	case ActionSetDiscount:
		if a.Discount == nil {
			return fmt.Errorf("%s: missing discount", a.Type)
		}
		c.SetDiscount(a.Discount.Value, a.Discount.Type)
	case ActionSetCustomer:
		c.SetCustomer(a.CustomerID)
	case ActionSetNote:
		c.SetNote(a.Note)
	case ActionChangeOrderType:
		c.ChangeOrderType(a.OrderType, a.DeliveryCharge)
	case ActionChangePaymentType:
		c.ChangePaymentType(a.PaymentType)
	case ActionReset:
		c.Reset()
	default:
		return fmt.Errorf("unknown cart action %q", a.Type)
	}
	return nil
}
