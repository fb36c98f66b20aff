package handlers

import (
	"net/http"

	roomRepo "gobookhotel/database/repository/room"
	"gobookhotel/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler serves read-only room endpoints.
type RoomHandler struct {
	Repo   roomRepo.RoomRepository
	Logger *zap.Logger
}

func NewRoomHandler(repo roomRepo.RoomRepository, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{Repo: repo, Logger: logger}
}

// ListRoomsHandler returns all rooms, price-sorted when ?sort=asc|desc is
// given. Any other directive keeps natural collection order.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	order := roomRepo.SortNone
	switch c.Query("sort") {
	case "asc":
		order = roomRepo.SortAsc
	case "desc":
		order = roomRepo.SortDesc
	}

	rooms, err := h.Repo.GetAll(order)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "an error occurred while fetching rooms", err.Error())
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomByIDHandler returns a single room. A well-formed id with no match is
// passed through as a null document.
func (h *RoomHandler) GetRoomByIDHandler(c *gin.Context) {
	room, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "an error occurred while fetching the room", err.Error())
		return
	}
	c.JSON(http.StatusOK, room)
}
