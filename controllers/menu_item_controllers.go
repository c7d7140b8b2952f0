package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mahendrayu/resto-pos/models"
	"github.com/mahendrayu/resto-pos/utils"
)

type MenuItemController struct {
	DB *gorm.DB
}

func NewMenuItemController(db *gorm.DB) *MenuItemController {
	return &MenuItemController{DB: db}
}

// variantReq / addonReq are the nested admin payloads for menu item
// creation and full update.
type variantReq struct {
	Name          string  `json:"name" binding:"required"`
	SelectionMode string  `json:"selection_mode"`
	Requirement   string  `json:"requirement"`
	MinSelect     int     `json:"min_select"`
	MaxSelect     int     `json:"max_select"`
	Options       []struct {
		Name  string  `json:"name" binding:"required"`
		Price float64 `json:"price"`
	} `json:"options" binding:"required"`
}

type addonReq struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	IsAvailable *bool   `json:"is_available"`
}

type menuItemReq struct {
	CategoryID     uint         `json:"category_id" binding:"required"`
	Name           string       `json:"name" binding:"required"`
	Description    string       `json:"description"`
	Price          float64      `json:"price" binding:"required"`
	DiscountAmount float64      `json:"discount_amount"`
	DiscountType   string       `json:"discount_type"`
	IsAvailable    *bool        `json:"is_available"`
	Variants       []variantReq `json:"variants"`
	Addons         []addonReq   `json:"addons"`
	ChargeIDs      []uint       `json:"charge_ids"`
}

func (req *menuItemReq) validate() error {
	if req.DiscountType != "" && req.DiscountType != models.DiscountAmount && req.DiscountType != models.DiscountPercentage {
		return errors.New("invalid discount_type")
	}
	for _, v := range req.Variants {
		if v.SelectionMode != "" && v.SelectionMode != models.SelectionSingle && v.SelectionMode != models.SelectionMultiple {
			return errors.New("invalid selection_mode")
		}
		if v.Requirement != "" && v.Requirement != models.VariantRequired && v.Requirement != models.VariantOptional {
			return errors.New("invalid requirement")
		}
		for _, o := range v.Options {
			if o.Price < 0 {
				return errors.New("variant option price must not be negative")
			}
		}
	}
	return nil
}

func (req *menuItemReq) toModel() models.MenuItem {
	item := models.MenuItem{
		CategoryID:     req.CategoryID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		DiscountAmount: req.DiscountAmount,
		DiscountType:   req.DiscountType,
		IsAvailable:    true,
	}
	if item.DiscountType == "" {
		item.DiscountType = models.DiscountAmount
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	for _, v := range req.Variants {
		variant := models.Variant{
			Name:          v.Name,
			SelectionMode: v.SelectionMode,
			Requirement:   v.Requirement,
			MinSelect:     v.MinSelect,
			MaxSelect:     v.MaxSelect,
		}
		if variant.SelectionMode == "" {
			variant.SelectionMode = models.SelectionSingle
		}
		if variant.Requirement == "" {
			variant.Requirement = models.VariantOptional
		}
		for pos, o := range v.Options {
			variant.Options = append(variant.Options, models.VariantOption{
				Name:     o.Name,
				Price:    o.Price,
				Position: pos,
			})
		}
		item.Variants = append(item.Variants, variant)
	}

	for _, a := range req.Addons {
		addon := models.Addon{Name: a.Name, Price: a.Price, IsAvailable: true}
		if a.IsAvailable != nil {
			addon.IsAvailable = *a.IsAvailable
		}
		item.Addons = append(item.Addons, addon)
	}
	return item
}

// GetAllMenuItems lists available items for the storefront and everything
// for the dashboard (?all=true).
func (mc *MenuItemController) GetAllMenuItems(c *gin.Context) {
	query := mc.DB.Preload("Category").Preload("Variants.Options").Preload("Addons").Preload("Charges")
	if c.Query("all") != "true" {
		query = query.Where("is_available = ?", true)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemByID returns one item with its full variant/addon/charge tree,
// which is everything the cart engine needs to price it.
func (mc *MenuItemController) GetMenuItemByID(c *gin.Context) {
	var item models.MenuItem
	err := mc.DB.Preload("Category").
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("variants.id asc") }).
		Preload("Variants.Options", func(db *gorm.DB) *gorm.DB { return db.Order("variant_options.position asc") }).
		Preload("Addons").
		Preload("Charges").
		First(&item, c.Param("item_id")).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// CreateMenuItem creates an item together with its variants and addons.
func (mc *MenuItemController) CreateMenuItem(c *gin.Context) {
	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := req.toModel()

	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		if len(req.ChargeIDs) > 0 {
			var charges []models.Charge
			if err := tx.Find(&charges, req.ChargeIDs).Error; err != nil {
				return err
			}
			if err := tx.Model(&item).Association("Charges").Replace(charges); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Menu item created: %s (id=%d)", item.Name, item.ID)
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem replaces the item and its variant/addon tree wholesale.
// The dashboard edits the whole form at once, so partial patches are not
// worth the bookkeeping; order snapshots keep history intact.
func (mc *MenuItemController) UpdateMenuItem(c *gin.Context) {
	var existing models.MenuItem
	if err := mc.DB.Preload("Variants").First(&existing, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := req.toModel()
	item.ID = existing.ID

	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		for _, v := range existing.Variants {
			if err := tx.Where("variant_id = ?", v.ID).Delete(&models.VariantOption{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("menu_item_id = ?", existing.ID).Delete(&models.Variant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", existing.ID).Delete(&models.Addon{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&item).Error; err != nil {
			return err
		}
		var charges []models.Charge
		if len(req.ChargeIDs) > 0 {
			if err := tx.Find(&charges, req.ChargeIDs).Error; err != nil {
				return err
			}
		}
		return tx.Model(&item).Association("Charges").Replace(charges)
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem removes an item and its variants/addons.
func (mc *MenuItemController) DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := mc.DB.Preload("Variants").First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		for _, v := range item.Variants {
			if err := tx.Where("variant_id = ?", v.ID).Delete(&models.VariantOption{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("menu_item_id = ?", item.ID).Delete(&models.Variant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", item.ID).Delete(&models.Addon{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"item_id": item.ID})
}
