package handlers

import (
	"net/http"

	bookingRepo "gobookhotel/database/repository/booking"
	"gobookhotel/middleware"
	"gobookhotel/models"
	"gobookhotel/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the guarded booking endpoints.
type BookingHandler struct {
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
}

func NewBookingHandler(repo bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Repo: repo, Logger: logger}
}

// ListBookingsHandler returns bookings, filtered by ?email= when given. An
// explicit email that differs from the token's email claim is forbidden.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	queryEmail := c.Query("email")
	if queryEmail != "" {
		claims, ok := middleware.DecodedClaims(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		tokenEmail, _ := claims["email"].(string)
		if tokenEmail != queryEmail {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
	}

	bookings, err := h.Repo.GetAll(queryEmail)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "an error occurred while fetching bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBookingHandler inserts the posted booking verbatim and returns the
// store's insert acknowledgement.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	insertedID, err := h.Repo.Create(&booking)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "an error occurred while creating the booking", err.Error())
		return
	}

	h.Logger.Debug("booking created", zap.String("insertedId", insertedID), zap.String("email", booking.Email))
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": insertedID})
}

// CancelBookingHandler deletes a booking by its store-issued id and returns
// the deletion acknowledgement.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Repo.Delete(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "an error occurred while cancelling the booking", err.Error())
		return
	}

	h.Logger.Debug("booking deleted", zap.String("id", id), zap.Int64("deletedCount", deleted))
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
}
