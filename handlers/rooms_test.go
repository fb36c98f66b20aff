package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	roomRepo "gobookhotel/database/repository/room"
	"gobookhotel/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeRoomRepo serves canned rooms, sorting the way the store would.
type fakeRoomRepo struct {
	rooms []models.Room
	err   error
}

func (f *fakeRoomRepo) GetAll(priceOrder int) ([]models.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Room, len(f.rooms))
	copy(out, f.rooms)
	if priceOrder == roomRepo.SortAsc {
		sort.SliceStable(out, func(i, j int) bool { return out[i].PricePerNight < out[j].PricePerNight })
	} else if priceOrder == roomRepo.SortDesc {
		sort.SliceStable(out, func(i, j int) bool { return out[i].PricePerNight > out[j].PricePerNight })
	}
	return out, nil
}

func (f *fakeRoomRepo) GetByID(id string) (*models.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, err
	}
	for i := range f.rooms {
		if f.rooms[i].ID.Hex() == id {
			return &f.rooms[i], nil
		}
	}
	return nil, nil
}

func newRoomRouter(repo roomRepo.RoomRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewRoomHandler(repo, zap.NewNop())
	router.GET("/rooms", h.ListRoomsHandler)
	router.GET("/rooms/:id", h.GetRoomByIDHandler)
	return router
}

func seedRooms() []models.Room {
	return []models.Room{
		{ID: primitive.NewObjectID(), Name: "Deluxe", PricePerNight: 180},
		{ID: primitive.NewObjectID(), Name: "Economy", PricePerNight: 60},
		{ID: primitive.NewObjectID(), Name: "Suite", PricePerNight: 320},
	}
}

func listRooms(t *testing.T, router *gin.Engine, url string) []models.Room {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", url, nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var rooms []models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	return rooms
}

func TestListRoomsSortAsc(t *testing.T) {
	router := newRoomRouter(&fakeRoomRepo{rooms: seedRooms()})

	rooms := listRooms(t, router, "/rooms?sort=asc")
	require.Len(t, rooms, 3)
	for i := 1; i < len(rooms); i++ {
		assert.LessOrEqual(t, rooms[i-1].PricePerNight, rooms[i].PricePerNight)
	}
}

func TestListRoomsSortDesc(t *testing.T) {
	router := newRoomRouter(&fakeRoomRepo{rooms: seedRooms()})

	rooms := listRooms(t, router, "/rooms?sort=desc")
	require.Len(t, rooms, 3)
	for i := 1; i < len(rooms); i++ {
		assert.GreaterOrEqual(t, rooms[i-1].PricePerNight, rooms[i].PricePerNight)
	}
}

func TestListRoomsUnknownSortKeepsNaturalOrder(t *testing.T) {
	seeded := seedRooms()
	router := newRoomRouter(&fakeRoomRepo{rooms: seeded})

	for _, url := range []string{"/rooms", "/rooms?sort=sideways", "/rooms?sort=ASC"} {
		rooms := listRooms(t, router, url)
		require.Len(t, rooms, 3)
		for i := range rooms {
			assert.Equal(t, seeded[i].Name, rooms[i].Name)
		}
	}
}

func TestListRoomsStoreError(t *testing.T) {
	router := newRoomRouter(&fakeRoomRepo{err: errors.New("connection reset")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/rooms", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "an error occurred while fetching rooms")
}

func TestGetRoomByID(t *testing.T) {
	seeded := seedRooms()
	router := newRoomRouter(&fakeRoomRepo{rooms: seeded})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/rooms/"+seeded[1].ID.Hex(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var room models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	assert.Equal(t, "Economy", room.Name)
}

func TestGetRoomByIDNoMatchReturnsNull(t *testing.T) {
	router := newRoomRouter(&fakeRoomRepo{rooms: seedRooms()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/rooms/"+primitive.NewObjectID().Hex(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestGetRoomByIDMalformed(t *testing.T) {
	router := newRoomRouter(&fakeRoomRepo{rooms: seedRooms()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/rooms/not-an-object-id", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
