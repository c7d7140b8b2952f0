package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
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

func setupChargeRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Charge{}))

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	chargeCtrl := controllers.NewChargeController(db)
	router.GET("/api/charges", chargeCtrl.GetAllCharges)
	router.POST("/api/charges", chargeCtrl.CreateCharge)
	router.PUT("/api/charges/:charge_id", chargeCtrl.UpdateCharge)
	router.DELETE("/api/charges/:charge_id", chargeCtrl.DeleteCharge)
	return db, router
}

func TestChargeCRUD(t *testing.T) {
	utils.InitLogger()
	_, router := setupChargeRouter(t)

	w := doJSON(t, router, "POST", "/api/charges", map[string]interface{}{
		"name":        "VAT",
		"amount":      11,
		"amount_type": models.DiscountPercentage,
		"scope":       models.ChargeTax,
		"is_default":  true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	chargeID := int(resp["data"].(map[string]interface{})["id"].(float64))

	w = doJSON(t, router, "PUT", fmt.Sprintf("/api/charges/%d", chargeID), map[string]interface{}{
		"name":        "VAT",
		"amount":      12,
		"amount_type": models.DiscountPercentage,
		"scope":       models.ChargeTax,
		"is_default":  true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 12, resp["data"].(map[string]interface{})["amount"].(float64), 1e-9)

	w = doJSON(t, router, "GET", "/api/charges", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["data"].([]interface{}), 1)

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/api/charges/%d", chargeID), nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreateChargeValidation(t *testing.T) {
	utils.InitLogger()
	_, router := setupChargeRouter(t)

	cases := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"bad amount type", map[string]interface{}{
			"name": "X", "amount": 5, "amount_type": "flat", "scope": models.ChargeTax,
		}},
		{"bad scope", map[string]interface{}{
			"name": "X", "amount": 5, "amount_type": models.DiscountAmount, "scope": "tip",
		}},
		{"negative amount", map[string]interface{}{
			"name": "X", "amount": -5, "amount_type": models.DiscountAmount, "scope": models.ChargeTax,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, "POST", "/api/charges", tc.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
