package booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongkhamtamthan/clinic-api/internal/catalog"
	bookingService "github.com/phongkhamtamthan/clinic-api/internal/service/booking"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Default()
	require.NoError(t, err)

	clock := fixedClock{t: time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)}
	svc := bookingService.NewService(cat, clock)

	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBooking(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/book", `{
		"patient_name": "An Nguyen",
		"email": "an@example.com",
		"phone": "0901234567",
		"service_id": "srv_consult",
		"preferred_date": "2026-01-10"
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp bookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "DL-AN-1001", resp.BookingReference)
	assert.Equal(t, estimatedCallback, resp.EstimatedCallback)
	assert.NotEmpty(t, resp.Message)
}

func TestCreateBookingUnknownService(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/book", `{
		"patient_name": "An Nguyen",
		"email": "an@example.com",
		"phone": "0901234567",
		"service_id": "srv_does_not_exist",
		"preferred_date": "2026-01-10"
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, "invalid service", resp["message"])

	// The rejected request must not leave a record behind
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Total)
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"patient name too short", `{"patient_name":"A","email":"an@example.com","phone":"0901234567","service_id":"srv_consult","preferred_date":"2026-01-10"}`},
		{"bad email", `{"patient_name":"An Nguyen","email":"not-an-email","phone":"0901234567","service_id":"srv_consult","preferred_date":"2026-01-10"}`},
		{"phone too short", `{"patient_name":"An Nguyen","email":"an@example.com","phone":"090123","service_id":"srv_consult","preferred_date":"2026-01-10"}`},
		{"missing service id", `{"patient_name":"An Nguyen","email":"an@example.com","phone":"0901234567","preferred_date":"2026-01-10"}`},
		{"malformed json", `{"patient_name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t)
			w := postJSON(r, "/api/book", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestListBookings(t *testing.T) {
	r := newTestRouter(t)

	first := postJSON(r, "/api/book", `{
		"patient_name": "An Nguyen",
		"email": "an@example.com",
		"phone": "0901234567",
		"service_id": "srv_consult",
		"preferred_date": "2026-01-10"
	}`)
	require.Equal(t, http.StatusOK, first.Code)

	second := postJSON(r, "/api/book", `{
		"patient_name": "Binh Tran",
		"email": "binh@example.com",
		"phone": "0907654321",
		"service_id": "srv_sleep",
		"preferred_date": "2026-01-12",
		"preferred_time": "14:00",
		"notes": "first visit"
	}`)
	require.Equal(t, http.StatusOK, second.Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Total    int `json:"total"`
		Bookings []struct {
			Reference     string `json:"reference"`
			Service       string `json:"service"`
			Status        string `json:"status"`
			PreferredTime string `json:"preferred_time"`
		} `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))

	require.Equal(t, 2, list.Total)
	require.Len(t, list.Bookings, 2)
	assert.Equal(t, "DL-AN-1001", list.Bookings[0].Reference)
	assert.Equal(t, "DL-BI-1002", list.Bookings[1].Reference)
	assert.Equal(t, "Điều Trị Rối Loạn Giấc Ngủ", list.Bookings[1].Service)
	assert.Equal(t, "14:00", list.Bookings[1].PreferredTime)
	assert.Equal(t, "pending confirmation", list.Bookings[0].Status)
}
