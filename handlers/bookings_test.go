package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	bookingRepo "gobookhotel/database/repository/booking"
	"gobookhotel/middleware"
	"gobookhotel/models"
	"gobookhotel/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeBookingRepo behaves like the bookings collection, keyed by ObjectID hex.
type fakeBookingRepo struct {
	bookings map[string]models.Booking
	order    []string
	err      error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (f *fakeBookingRepo) GetAll(email string) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Booking{}
	for _, id := range f.order {
		b := f.bookings[id]
		if email == "" || b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Create(booking *models.Booking) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	booking.ID = primitive.NewObjectID()
	id := booking.ID.Hex()
	f.bookings[id] = *booking
	f.order = append(f.order, id)
	return id, nil
}

func (f *fakeBookingRepo) Delete(id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, err
	}
	if _, ok := f.bookings[id]; !ok {
		return 0, nil
	}
	delete(f.bookings, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func newBookingRouter(repo bookingRepo.BookingRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewBookingHandler(repo, zap.NewNop())
	guarded := router.Group("/bookings")
	guarded.Use(middleware.VerifyToken())
	guarded.GET("", h.ListBookingsHandler)
	guarded.POST("", h.CreateBookingHandler)
	guarded.DELETE("/:id", h.CancelBookingHandler)
	return router
}

func authCookie(t *testing.T, email string) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateToken(map[string]interface{}{"email": email}, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: "token", Value: token}
}

func createBooking(t *testing.T, router *gin.Engine, email string, body string) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(authCookie(t, email))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var ack struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	require.True(t, ack.Acknowledged)
	require.NotEmpty(t, ack.InsertedID)
	return ack.InsertedID
}

func listBookings(t *testing.T, router *gin.Engine, email, query string) (int, []models.Booking) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bookings"+query, nil)
	req.AddCookie(authCookie(t, email))
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		return w.Code, nil
	}
	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	return w.Code, bookings
}

func TestCreateThenListByEmail(t *testing.T) {
	router := newBookingRouter(newFakeBookingRepo())

	createBooking(t, router, "a@b.com", `{"email":"a@b.com","roomName":"Suite","checkIn":"2026-09-01","checkOut":"2026-09-03","guests":2}`)
	createBooking(t, router, "c@d.com", `{"email":"c@d.com","roomName":"Economy"}`)

	code, bookings := listBookings(t, router, "a@b.com", "?email=a@b.com")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, bookings, 1)
	assert.Equal(t, "a@b.com", bookings[0].Email)
	assert.Equal(t, "Suite", bookings[0].RoomName)
}

func TestListBookingsNoFilterReturnsAll(t *testing.T) {
	router := newBookingRouter(newFakeBookingRepo())

	createBooking(t, router, "a@b.com", `{"email":"a@b.com"}`)
	createBooking(t, router, "c@d.com", `{"email":"c@d.com"}`)

	code, bookings := listBookings(t, router, "a@b.com", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, bookings, 2)
}

func TestListBookingsEmailMismatchForbidden(t *testing.T) {
	router := newBookingRouter(newFakeBookingRepo())

	code, _ := listBookings(t, router, "a@b.com", "?email=intruder@x.com")
	assert.Equal(t, http.StatusForbidden, code)
}

func TestListBookingsNoCookieUnauthorized(t *testing.T) {
	router := newBookingRouter(newFakeBookingRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bookings?email=a@b.com", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCancelBookingRemovesExactlyOne(t *testing.T) {
	router := newBookingRouter(newFakeBookingRepo())

	keep := createBooking(t, router, "a@b.com", `{"email":"a@b.com","roomName":"Deluxe"}`)
	drop := createBooking(t, router, "a@b.com", `{"email":"a@b.com","roomName":"Suite"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/bookings/"+drop, nil)
	req.AddCookie(authCookie(t, "a@b.com"))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var ack struct {
		Acknowledged bool  `json:"acknowledged"`
		DeletedCount int64 `json:"deletedCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.True(t, ack.Acknowledged)
	assert.Equal(t, int64(1), ack.DeletedCount)

	code, bookings := listBookings(t, router, "a@b.com", "?email=a@b.com")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, bookings, 1)
	assert.Equal(t, keep, bookings[0].ID.Hex())
}

func TestCancelBookingMalformedID(t *testing.T) {
	router := newBookingRouter(newFakeBookingRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/bookings/not-an-object-id", nil)
	req.AddCookie(authCookie(t, "a@b.com"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
