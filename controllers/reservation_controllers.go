package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mahendrayu/resto-pos/models"
	"github.com/mahendrayu/resto-pos/terminal"
	"github.com/mahendrayu/resto-pos/utils"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

// Reservation status transitions staff may apply.
var reservationTransitions = map[string][]string{
	models.ReservationPending:   {models.ReservationConfirmed, models.ReservationCancelled},
	models.ReservationConfirmed: {models.ReservationSeated, models.ReservationCancelled},
	models.ReservationSeated:    {},
	models.ReservationCancelled: {},
}

func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	query := rc.DB.Preload("Customer")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date, expected YYYY-MM-DD"))
			return
		}
		query = query.Where("reserved_at >= ? AND reserved_at < ?", day, day.AddDate(0, 0, 1))
	}

	var reservations []models.Reservation
	if err := query.Order("reserved_at asc").Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		CustomerID uint      `json:"customer_id" binding:"required"`
		PartySize  int       `json:"party_size" binding:"required"`
		ReservedAt time.Time `json:"reserved_at" binding:"required"`
		Note       string    `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.PartySize < 1 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("party size must be at least 1"))
		return
	}
	if req.ReservedAt.Before(time.Now()) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("reservation time is in the past"))
		return
	}

	var customer models.User
	if err := rc.DB.First(&customer, req.CustomerID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("customer not found"))
		return
	}

	reservation := models.Reservation{
		CustomerID: req.CustomerID,
		PartySize:  req.PartySize,
		ReservedAt: req.ReservedAt,
		Status:     models.ReservationPending,
		Note:       req.Note,
	}
	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	terminal.BroadcastReservation(reservation)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// PatchReservation moves a reservation along its status transitions and
// lets staff adjust party size or note.
func (rc *ReservationController) PatchReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := rc.DB.First(&reservation, c.Param("reservation_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Status     *string    `json:"status"`
		PartySize  *int       `json:"party_size"`
		ReservedAt *time.Time `json:"reserved_at"`
		Note       *string    `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Status != nil && *req.Status != reservation.Status {
		allowed := false
		for _, next := range reservationTransitions[reservation.Status] {
			if next == *req.Status {
				allowed = true
				break
			}
		}
		if !allowed {
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("cannot move reservation from %s to %s", reservation.Status, *req.Status))
			return
		}
		reservation.Status = *req.Status
	}
	if req.PartySize != nil {
		if *req.PartySize < 1 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("party size must be at least 1"))
			return
		}
		reservation.PartySize = *req.PartySize
	}
	if req.ReservedAt != nil {
		reservation.ReservedAt = *req.ReservedAt
	}
	if req.Note != nil {
		reservation.Note = *req.Note
	}

	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	terminal.BroadcastReservation(reservation)
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	if err := rc.DB.Delete(&models.Reservation{}, c.Param("reservation_id")).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{"reservation_id": c.Param("reservation_id")})
}
