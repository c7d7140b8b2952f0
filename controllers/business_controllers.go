package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mahendrayu/resto-pos/models"
	"github.com/mahendrayu/resto-pos/utils"
)

// BusinessController manages the single business profile row.
type BusinessController struct {
	DB *gorm.DB
}

func NewBusinessController(db *gorm.DB) *BusinessController {
	return &BusinessController{DB: db}
}

func (bc *BusinessController) GetBusiness(c *gin.Context) {
	var business models.Business
	if err := bc.DB.First(&business).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("business profile not set up yet"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Business profile", business)
}

// UpdateBusiness creates or replaces the business profile.
func (bc *BusinessController) UpdateBusiness(c *gin.Context) {
	var req struct {
		Name           string  `json:"name" binding:"required"`
		Address        string  `json:"address"`
		Phone          string  `json:"phone"`
		Email          string  `json:"email"`
		Currency       string  `json:"currency"`
		DeliveryCharge float64 `json:"delivery_charge"`
		OpeningTime    string  `json:"opening_time"`
		ClosingTime    string  `json:"closing_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.DeliveryCharge < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("delivery charge must not be negative"))
		return
	}

	var business models.Business
	bc.DB.First(&business)

	business.Name = req.Name
	business.Address = req.Address
	business.Phone = req.Phone
	business.Email = req.Email
	business.DeliveryCharge = req.DeliveryCharge
	business.OpeningTime = req.OpeningTime
	business.ClosingTime = req.ClosingTime
	if req.Currency != "" {
		business.Currency = req.Currency
	}

	if err := bc.DB.Save(&business).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Business profile updated", business)
}
