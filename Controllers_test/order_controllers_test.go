package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mahendrayu/resto-pos/controllers"
	"github.com/mahendrayu/resto-pos/models"
	"github.com/mahendrayu/resto-pos/utils"
)

type orderFixtures struct {
	item     models.MenuItem
	large    models.VariantOption
	cheese   models.Addon
	delivery models.User
}

func setupTestDBForOrders(t *testing.T) (*gorm.DB, orderFixtures) {
	// one shared in-memory database per test, so the pool sees the same db
	// but tests never see each other's rows
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{}, &models.Business{}, &models.MenuCategory{}, &models.MenuItem{},
		&models.Variant{}, &models.VariantOption{}, &models.Addon{}, &models.Charge{},
		&models.Order{}, &models.OrderItem{}, &models.OrderItemVariant{},
		&models.OrderItemAddon{}, &models.OrderCharge{}, &models.Reservation{},
	)
	require.NoError(t, err)

	category := models.MenuCategory{Name: "Mains"}
	require.NoError(t, db.Create(&category).Error)

	// price 20, 10% discount -> unit price 18
	item := models.MenuItem{
		CategoryID:     category.ID,
		Name:           "Nasi Goreng",
		Price:          20,
		DiscountAmount: 10,
		DiscountType:   models.DiscountPercentage,
		IsAvailable:    true,
		Variants: []models.Variant{
			{
				Name:          "Size",
				SelectionMode: models.SelectionSingle,
				Requirement:   models.VariantRequired,
				Options: []models.VariantOption{
					{Name: "Regular", Price: 0},
					{Name: "Large", Price: 5},
				},
			},
		},
		Addons: []models.Addon{
			{Name: "Extra Cheese", Price: 3, IsAvailable: true},
		},
	}
	require.NoError(t, db.Create(&item).Error)

	charge := models.Charge{
		Name: "Service", Amount: 10,
		AmountType: models.DiscountAmount, Scope: models.ChargeService, IsDefault: true,
	}
	require.NoError(t, db.Create(&charge).Error)

	business := models.Business{Name: "Warung Test", DeliveryCharge: 8}
	require.NoError(t, db.Create(&business).Error)

	courier := models.User{Name: "Kurir", Email: "kurir@test.local", Password: "x", Role: models.RoleDelivery}
	require.NoError(t, db.Create(&courier).Error)

	require.NoError(t, db.Preload("Variants.Options").Preload("Addons").First(&item, item.ID).Error)

	return db, orderFixtures{
		item:     item,
		large:    item.Variants[0].Options[1],
		cheese:   item.Addons[0],
		delivery: courier,
	}
}

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	orderCtrl := controllers.NewOrderController(db)
	posCtrl := controllers.NewPOSController(db)
	router.POST("/api/orders", orderCtrl.CreateOrder)
	router.GET("/api/orders/:order_id", orderCtrl.GetOrderByID)
	router.GET("/api/orders", orderCtrl.GetAllOrders)
	router.PATCH("/api/orders/:order_id", orderCtrl.PatchOrder)
	router.PUT("/api/orders/:order_id", orderCtrl.UpdateOrder)
	router.DELETE("/api/orders/:order_id", orderCtrl.DeleteOrder)
	router.POST("/api/pos/quote", posCtrl.QuoteCart)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func orderPayload(f orderFixtures) map[string]interface{} {
	return map[string]interface{}{
		"order_type":     models.OrderDineIn,
		"payment_type":   models.PaymentCash,
		"discount_value": 20,
		"discount_type":  models.DiscountAmount,
		"items": []map[string]interface{}{
			{
				"menu_item_id":       f.item.ID,
				"quantity":           3,
				"variant_option_ids": []uint{f.large.ID},
			},
		},
	}
}

func TestCreateOrderPricesServerSide(t *testing.T) {
	utils.InitLogger()
	db, f := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	w := doJSON(t, router, "POST", "/api/orders", orderPayload(f))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	// unit 18, large +5, qty 3 -> 69; +10 service, -20 discount -> 59
	assert.InDelta(t, 69, data["sub_total"].(float64), 1e-6)
	assert.InDelta(t, 10, data["charge_total"].(float64), 1e-6)
	assert.InDelta(t, 59, data["grand_total"].(float64), 1e-6)
	assert.Equal(t, models.OrderPlaced, data["status"])
	assert.NotEmpty(t, data["order_number"])

	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.InDelta(t, 18, first["unit_price"].(float64), 1e-6)
	variants := first["variants"].([]interface{})
	require.Len(t, variants, 1)
	assert.Equal(t, "Large", variants[0].(map[string]interface{})["option_name"])
}

func TestCreateOrderRejectsMissingRequiredVariant(t *testing.T) {
	utils.InitLogger()
	db, f := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	payload := orderPayload(f)
	payload["items"] = []map[string]interface{}{
		{"menu_item_id": f.item.ID, "quantity": 1},
	}

	w := doJSON(t, router, "POST", "/api/orders", payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	errs := resp["data"].(map[string]interface{})["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].(string), "Size")

	// nothing persisted
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrderIgnoresClientPrices(t *testing.T) {
	utils.InitLogger()
	db, f := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	payload := orderPayload(f)
	// stray price fields in the payload must not affect pricing
	payload["grand_total"] = 1
	items := payload["items"].([]map[string]interface{})
	items[0]["unit_price"] = 0.01

	w := doJSON(t, router, "POST", "/api/orders", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.InDelta(t, 59, data["grand_total"].(float64), 1e-6)
}

func TestCreateDeliveryOrderAttachesDeliveryCharge(t *testing.T) {
	utils.InitLogger()
	db, f := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	payload := orderPayload(f)
	payload["order_type"] = models.OrderDelivery
	payload["discount_value"] = 0

	w := doJSON(t, router, "POST", "/api/orders", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	// 69 + 10 service + 8 delivery
	assert.InDelta(t, 18, data["charge_total"].(float64), 1e-6)
	assert.InDelta(t, 87, data["grand_total"].(float64), 1e-6)

	charges := data["charges"].([]interface{})
	assert.Len(t, charges, 2)
}

func TestPatchOrderRequiresDeliveryPersonFirst(t *testing.T) {
	utils.InitLogger()
	db, f := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	payload := orderPayload(f)
	payload["order_type"] = models.OrderDelivery
	w := doJSON(t, router, "POST", "/api/orders", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	orderID := int(resp["data"].(map[string]interface{})["id"].(float64))
	url := fmt.Sprintf("/api/orders/%d", orderID)

	// on_delivery without a courier is refused
	w = doJSON(t, router, "PATCH", url, map[string]interface{}{"status": models.OrderOnDelivery})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "delivery person")

	// assign the courier, then the transition goes through
	w = doJSON(t, router, "PATCH", url, map[string]interface{}{
		"delivery_person_id": f.delivery.ID,
		"status":             models.OrderOnDelivery,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, "PATCH", url, map[string]interface{}{
		"status":         models.OrderCompleted,
		"payment_status": models.PaymentStatusPaid,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, db.First(&order, orderID).Error)
	assert.Equal(t, models.OrderCompleted, order.Status)
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
}

func TestPutOrderReprices(t *testing.T) {
	utils.InitLogger()
	db, f := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	w := doJSON(t, router, "POST", "/api/orders", orderPayload(f))
	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	orderID := int(resp["data"].(map[string]interface{})["id"].(float64))

	// replace with one regular, quantity 1, no discount, plus two cheeses
	regular := f.item.Variants[0].Options[0]
	update := map[string]interface{}{
		"order_type":   models.OrderDineIn,
		"payment_type": models.PaymentCard,
		"items": []map[string]interface{}{
			{
				"menu_item_id":       f.item.ID,
				"quantity":           1,
				"variant_option_ids": []uint{regular.ID},
				"addons": []map[string]interface{}{
					{"addon_id": f.cheese.ID, "quantity": 2},
				},
			},
		},
	}

	w = doJSON(t, router, "PUT", fmt.Sprintf("/api/orders/%d", orderID), update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	// (18 + 3*2) * 1 = 24, +10 service
	assert.InDelta(t, 24, data["sub_total"].(float64), 1e-6)
	assert.InDelta(t, 34, data["grand_total"].(float64), 1e-6)

	// old item snapshots replaced, not accumulated
	var itemCount int64
	db.Model(&models.OrderItem{}).Where("order_id = ?", orderID).Count(&itemCount)
	assert.EqualValues(t, 1, itemCount)
}

func TestQuoteCartDoesNotPersist(t *testing.T) {
	utils.InitLogger()
	db, f := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	w := doJSON(t, router, "POST", "/api/pos/quote", orderPayload(f))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.InDelta(t, 69, data["sub_total"].(float64), 1e-6)
	assert.InDelta(t, 59, data["grand_total"].(float64), 1e-6)
	assert.Equal(t, true, data["ready"])

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteOrderRemovesSnapshots(t *testing.T) {
	utils.InitLogger()
	db, f := setupTestDBForOrders(t)
	router := setupOrderRouter(db)

	w := doJSON(t, router, "POST", "/api/orders", orderPayload(f))
	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	orderID := int(resp["data"].(map[string]interface{})["id"].(float64))

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/api/orders/%d", orderID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items, charges int64
	db.Model(&models.OrderItem{}).Count(&items)
	db.Model(&models.OrderCharge{}).Count(&charges)
	assert.Zero(t, items)
	assert.Zero(t, charges)
}
