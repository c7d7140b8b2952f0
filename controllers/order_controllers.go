package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mahendrayu/resto-pos/models"
	"github.com/mahendrayu/resto-pos/pos"
	"github.com/mahendrayu/resto-pos/terminal"
	"github.com/mahendrayu/resto-pos/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

type orderItemReq struct {
	MenuItemID       uint   `json:"menu_item_id" binding:"required"`
	Quantity         int    `json:"quantity"`
	Notes            string `json:"notes"`
	VariantOptionIDs []uint `json:"variant_option_ids"`
	Addons           []struct {
		AddonID  uint `json:"addon_id" binding:"required"`
		Quantity int  `json:"quantity"`
	} `json:"addons"`
}

type orderReq struct {
	CustomerID    *uint          `json:"customer_id"`
	OrderType     string         `json:"order_type" binding:"required"`
	PaymentType   string         `json:"payment_type" binding:"required"`
	DiscountValue float64        `json:"discount_value"`
	DiscountType  string         `json:"discount_type"`
	Note          string         `json:"note"`
	DeliveryDate  *time.Time     `json:"delivery_date"`
	Items         []orderItemReq `json:"items" binding:"required"`
}

// buildCart re-prices the submitted order through the cart engine. Clients
// send ids and quantities only; every price comes from the database, so a
// tampered storefront total never reaches an order row. Returns the priced
// cart or the list of selection validation messages.
func (oc *OrderController) buildCart(req *orderReq) (*pos.Cart, []string, error) {
	var defaults []models.Charge
	if err := oc.DB.Where("is_default = ?", true).Find(&defaults).Error; err != nil {
		return nil, nil, err
	}
	cart := pos.NewCart(pos.ChargeLinesFrom(defaults))

	seenCharges := make(map[uint]bool)
	for _, cl := range cart.Charges {
		seenCharges[cl.ChargeID] = true
	}

	var validationErrs []string
	for _, itemReq := range req.Items {
		var item models.MenuItem
		err := oc.DB.Preload("Variants.Options").Preload("Addons").Preload("Charges").
			First(&item, itemReq.MenuItemID).Error
		if err != nil {
			return nil, nil, fmt.Errorf("menu item %d not found", itemReq.MenuItemID)
		}
		if !item.IsAvailable {
			validationErrs = append(validationErrs, fmt.Sprintf("%s is not available", item.Name))
			continue
		}

		var selections []pos.VariantSelection
		for _, optionID := range itemReq.VariantOptionIDs {
			variant, option, found := findOption(item.Variants, optionID)
			if !found {
				return nil, nil, fmt.Errorf("variant option %d does not belong to %s", optionID, item.Name)
			}
			selections = pos.SelectVariantOption(selections, variant, option)
		}

		var addons []pos.AddonSelection
		for _, addonReq := range itemReq.Addons {
			addon, found := findAddon(item.Addons, addonReq.AddonID)
			if !found {
				return nil, nil, fmt.Errorf("addon %d does not belong to %s", addonReq.AddonID, item.Name)
			}
			if !addon.IsAvailable {
				validationErrs = append(validationErrs, fmt.Sprintf("%s: %s is not available", item.Name, addon.Name))
				continue
			}
			addons = pos.SelectAddon(addons, addon)
			addons = pos.SetAddonQuantity(addons, addon.ID, addonReq.Quantity)
		}

		for _, msg := range pos.ValidateSelections(item.Variants, selections) {
			validationErrs = append(validationErrs, fmt.Sprintf("%s: %s", item.Name, msg))
		}

		line := pos.NewLine(item, selections, addons, itemReq.Quantity)
		line.Note = itemReq.Notes
		cart.AddNewLine(line)

		for _, charge := range item.Charges {
			if !seenCharges[charge.ID] {
				seenCharges[charge.ID] = true
				cart.Charges = append(cart.Charges, pos.ChargeLinesFrom([]models.Charge{charge})...)
			}
		}
	}

	if len(validationErrs) > 0 {
		return nil, validationErrs, nil
	}

	var business models.Business
	oc.DB.First(&business)

	cart.ChangeOrderType(req.OrderType, business.DeliveryCharge)
	cart.ChangePaymentType(req.PaymentType)
	cart.SetNote(req.Note)
	if req.CustomerID != nil {
		cart.SetCustomer(*req.CustomerID)
	}
	discountType := req.DiscountType
	if discountType == "" {
		discountType = models.DiscountAmount
	}
	cart.SetDiscount(req.DiscountValue, discountType)

	if !cart.ReadyToSubmit() {
		return nil, []string{"order needs at least one item, an order type and a payment type"}, nil
	}
	return cart, nil, nil
}

func findOption(variants []models.Variant, optionID uint) (models.Variant, models.VariantOption, bool) {
	for _, v := range variants {
		for _, o := range v.Options {
			if o.ID == optionID {
				return v, o, true
			}
		}
	}
	return models.Variant{}, models.VariantOption{}, false
}

func findAddon(addons []models.Addon, addonID uint) (models.Addon, bool) {
	for _, a := range addons {
		if a.ID == addonID {
			return a, true
		}
	}
	return models.Addon{}, false
}

// persistCart writes the cart into order rows inside the given transaction.
func persistCart(tx *gorm.DB, order *models.Order, cart *pos.Cart) error {
	subtotal := cart.Subtotal()
	order.SubTotal = subtotal
	order.ChargeTotal = cart.ChargeTotal()
	order.GrandTotal = cart.GrandTotal()
	order.DiscountValue = cart.Discount.Value
	order.DiscountType = cart.Discount.Type
	order.Note = cart.Note

	if err := tx.Save(order).Error; err != nil {
		return err
	}

	for _, line := range cart.Lines {
		item := models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: line.MenuItemID,
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
			SubTotal:   line.Total,
			Notes:      line.Note,
		}
		for _, vs := range line.Variants {
			for _, opt := range vs.Options {
				item.Variants = append(item.Variants, models.OrderItemVariant{
					VariantID:       vs.VariantID,
					VariantName:     vs.Name,
					VariantOptionID: opt.OptionID,
					OptionName:      opt.Name,
					Price:           opt.Price,
				})
			}
		}
		for _, as := range line.Addons {
			item.Addons = append(item.Addons, models.OrderItemAddon{
				AddonID:   as.AddonID,
				AddonName: as.Name,
				Price:     as.Price,
				Quantity:  as.Quantity,
			})
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
	}

	for _, cl := range cart.Charges {
		var chargeID *uint
		if cl.ChargeID != 0 {
			id := cl.ChargeID
			chargeID = &id
		}
		charge := models.OrderCharge{
			OrderID:    order.ID,
			ChargeID:   chargeID,
			Name:       cl.Name,
			AmountType: cl.AmountType,
			Amount:     cl.Amount,
			Applied:    pos.ResolveCharge(cl, subtotal),
		}
		if err := tx.Create(&charge).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateOrder prices and persists a new order (storefront checkout and POS
// terminal submit share this endpoint).
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req orderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart, validationErrs, err := oc.buildCart(&req)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(validationErrs) > 0 {
		utils.RespondValidation(c, http.StatusUnprocessableEntity, validationErrs)
		return
	}

	order := models.Order{
		OrderNumber:   uuid.NewString(),
		CustomerID:    req.CustomerID,
		Status:        models.OrderPlaced,
		OrderType:     req.OrderType,
		PaymentType:   req.PaymentType,
		PaymentStatus: models.PaymentStatusUnpaid,
		DeliveryDate:  req.DeliveryDate,
	}

	err = oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return persistCart(tx, &order, cart)
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	oc.DB.Preload("Items.Variants").Preload("Items.Addons").Preload("Charges").First(&order, order.ID)

	utils.InfoLogger.Printf("Order %s created: %s total", order.OrderNumber, utils.FormatCurrency(order.GrandTotal))
	terminal.BroadcastOrderCreated(order)

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetAllOrders lists orders, optionally filtered by ?status= and ?type=.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Preload("Items").Preload("Charges").Preload("Customer").Preload("DeliveryPerson")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if orderType := c.Query("type"); orderType != "" {
		query = query.Where("order_type = ?", orderType)
	}

	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID returns one order with its item and charge snapshots.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	err := oc.DB.Preload("Items.Variants").Preload("Items.Addons").Preload("Items.MenuItem").
		Preload("Charges").Preload("Customer").Preload("DeliveryPerson").
		First(&order, c.Param("order_id")).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

var validStatuses = map[string]bool{
	models.OrderPlaced:     true,
	models.OrderPreparing:  true,
	models.OrderOnDelivery: true,
	models.OrderCompleted:  true,
	models.OrderCancelled:  true,
}

// PatchOrder updates status, delivery person and payment status. A delivery
// order cannot move to on_delivery or completed until a delivery person has
// been assigned.
func (oc *OrderController) PatchOrder(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Status           *string `json:"status"`
		DeliveryPersonID *uint   `json:"delivery_person_id"`
		PaymentStatus    *string `json:"payment_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.DeliveryPersonID != nil {
		var person models.User
		if err := oc.DB.Where("role = ?", models.RoleDelivery).First(&person, *req.DeliveryPersonID).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("delivery person not found"))
			return
		}
		order.DeliveryPersonID = req.DeliveryPersonID
	}

	if req.Status != nil {
		if !validStatuses[*req.Status] {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid status %q", *req.Status))
			return
		}
		needsCourier := *req.Status == models.OrderOnDelivery ||
			(*req.Status == models.OrderCompleted && order.OrderType == models.OrderDelivery)
		if needsCourier && order.OrderType == models.OrderDelivery && order.DeliveryPersonID == nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("select a delivery person first"))
			return
		}
		order.Status = *req.Status
	}

	paymentChanged := false
	if req.PaymentStatus != nil {
		if *req.PaymentStatus != models.PaymentStatusPaid && *req.PaymentStatus != models.PaymentStatusUnpaid {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid payment status"))
			return
		}
		paymentChanged = order.PaymentStatus != *req.PaymentStatus
		order.PaymentStatus = *req.PaymentStatus
	}

	order.UpdatedAt = time.Now()
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if paymentChanged {
		terminal.BroadcastPaymentUpdated(order)
	}
	if order.Status == models.OrderCancelled {
		terminal.BroadcastOrderCancelled(order)
	} else {
		terminal.BroadcastOrderUpdated(order)
	}

	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

// UpdateOrder is the full PUT: the order's items, discount and type are
// replaced and everything is re-priced through the cart engine. Only staff
// edit placed orders; completed or cancelled orders are immutable.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if order.Status == models.OrderCompleted || order.Status == models.OrderCancelled {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("order is %s and cannot be edited", order.Status))
		return
	}

	var req orderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart, validationErrs, err := oc.buildCart(&req)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(validationErrs) > 0 {
		utils.RespondValidation(c, http.StatusUnprocessableEntity, validationErrs)
		return
	}

	err = oc.DB.Transaction(func(tx *gorm.DB) error {
		var itemIDs []uint
		if err := tx.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Pluck("id", &itemIDs).Error; err != nil {
			return err
		}
		if len(itemIDs) > 0 {
			if err := tx.Where("order_item_id IN ?", itemIDs).Delete(&models.OrderItemVariant{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_item_id IN ?", itemIDs).Delete(&models.OrderItemAddon{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderCharge{}).Error; err != nil {
			return err
		}

		order.CustomerID = req.CustomerID
		order.OrderType = req.OrderType
		order.PaymentType = req.PaymentType
		order.DeliveryDate = req.DeliveryDate
		order.UpdatedAt = time.Now()
		return persistCart(tx, &order, cart)
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	oc.DB.Preload("Items.Variants").Preload("Items.Addons").Preload("Charges").First(&order, order.ID)
	terminal.BroadcastOrderUpdated(order)

	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

// DeleteOrder removes an order and its snapshots.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		var itemIDs []uint
		if err := tx.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Pluck("id", &itemIDs).Error; err != nil {
			return err
		}
		if len(itemIDs) > 0 {
			if err := tx.Where("order_item_id IN ?", itemIDs).Delete(&models.OrderItemVariant{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_item_id IN ?", itemIDs).Delete(&models.OrderItemAddon{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderCharge{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": order.ID})
}
