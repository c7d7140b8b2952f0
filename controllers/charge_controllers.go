package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mahendrayu/resto-pos/models"
	"github.com/mahendrayu/resto-pos/utils"
)

// ChargeController manages taxes and service charges from the dashboard.
type ChargeController struct {
	DB *gorm.DB
}

func NewChargeController(db *gorm.DB) *ChargeController {
	return &ChargeController{DB: db}
}

type chargeReq struct {
	Name       string  `json:"name" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	AmountType string  `json:"amount_type" binding:"required"`
	Scope      string  `json:"scope" binding:"required"`
	IsDefault  bool    `json:"is_default"`
}

func (req *chargeReq) validate() error {
	if req.AmountType != models.DiscountAmount && req.AmountType != models.DiscountPercentage {
		return errors.New("invalid amount_type")
	}
	if req.Scope != models.ChargeTax && req.Scope != models.ChargeService {
		return errors.New("invalid scope")
	}
	if req.Amount < 0 {
		return errors.New("amount must not be negative")
	}
	return nil
}

func (cc *ChargeController) GetAllCharges(c *gin.Context) {
	var charges []models.Charge
	if err := cc.DB.Order("name asc").Find(&charges).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of charges", charges)
}

func (cc *ChargeController) CreateCharge(c *gin.Context) {
	var req chargeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	charge := models.Charge{
		Name:       req.Name,
		Amount:     req.Amount,
		AmountType: req.AmountType,
		Scope:      req.Scope,
		IsDefault:  req.IsDefault,
	}
	if err := cc.DB.Create(&charge).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Charge created", charge)
}

func (cc *ChargeController) UpdateCharge(c *gin.Context) {
	var charge models.Charge
	if err := cc.DB.First(&charge, c.Param("charge_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req chargeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	charge.Name = req.Name
	charge.Amount = req.Amount
	charge.AmountType = req.AmountType
	charge.Scope = req.Scope
	charge.IsDefault = req.IsDefault

	if err := cc.DB.Save(&charge).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Charge updated", charge)
}

func (cc *ChargeController) DeleteCharge(c *gin.Context) {
	if err := cc.DB.Delete(&models.Charge{}, c.Param("charge_id")).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Charge deleted", gin.H{"charge_id": c.Param("charge_id")})
}
