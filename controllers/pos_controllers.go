package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mahendrayu/resto-pos/pos"
	"github.com/mahendrayu/resto-pos/utils"
)

// POSController exposes the cart engine over HTTP so the storefront can show
// authoritative totals before checkout, instead of trusting its own
// arithmetic.
type POSController struct {
	DB *gorm.DB
}

func NewPOSController(db *gorm.DB) *POSController {
	return &POSController{DB: db}
}

// QuoteCart prices a cart payload without persisting anything. The request
// body is the same shape as POST /api/orders; the response is the priced
// cart plus its totals and any selection validation errors.
func (pc *POSController) QuoteCart(c *gin.Context) {
	var req orderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	oc := OrderController{DB: pc.DB}
	cart, validationErrs, err := oc.buildCart(&req)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(validationErrs) > 0 {
		utils.RespondValidation(c, http.StatusUnprocessableEntity, validationErrs)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart quote", cartSummary(cart))
}

func cartSummary(cart *pos.Cart) gin.H {
	return gin.H{
		"cart":         cart,
		"sub_total":    cart.Subtotal(),
		"charge_total": cart.ChargeTotal(),
		"grand_total":  cart.GrandTotal(),
		"ready":        cart.ReadyToSubmit(),
	}
}
