package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongkhamtamthan/clinic-api/internal/model"
	apperrors "github.com/phongkhamtamthan/clinic-api/pkg/errors"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	profile := cat.Profile()
	assert.Equal(t, "BS. Lê Quang Vy", profile.Name)
	assert.Len(t, profile.Credentials, 4)

	services := cat.Services()
	assert.Len(t, services, 6)
	assert.Equal(t, "srv_consult", services[0].ID)

	assert.Len(t, cat.Testimonials(), 10)

	clinic := cat.ClinicInfo()
	assert.Equal(t, "lienhe@phongkhamtamthan.vn", clinic.Email)
	assert.Equal(t, "Nghỉ", clinic.Hours["sunday"])
}

func TestServiceLookup(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	for _, svc := range cat.Services() {
		got, err := cat.Service(svc.ID)
		require.NoError(t, err)
		assert.Equal(t, svc.ID, got.ID)
	}
}

func TestServiceLookupUnknownID(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	_, err = cat.Service("srv_does_not_exist")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestListServicesIsIdempotent(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	assert.Equal(t, cat.Services(), cat.Services())
	assert.Equal(t, cat.Testimonials(), cat.Testimonials())
}

func TestTestimonialRatingsWithinBounds(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	for _, tm := range cat.Testimonials() {
		assert.GreaterOrEqual(t, tm.Rating, 1, "testimonial %s", tm.ID)
		assert.LessOrEqual(t, tm.Rating, 5, "testimonial %s", tm.ID)
	}
}

func TestNewRejectsDuplicateServiceIDs(t *testing.T) {
	services := []model.Service{
		{ID: "srv_dup", Title: "A", PriceStart: 100, DurationMinutes: 30},
		{ID: "srv_dup", Title: "B", PriceStart: 200, DurationMinutes: 45},
	}

	_, err := New(defaultProfile, services, nil, defaultClinic)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate service id")
}

func TestNewRejectsOutOfRangeRating(t *testing.T) {
	testimonials := []model.Testimonial{
		{ID: "test_bad", PatientName: "X", Rating: 6},
	}

	_, err := New(defaultProfile, defaultServices, testimonials, defaultClinic)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test_bad")
}
