package model

import "time"

type BookingStatus string

const (
	// BookingStatusPending is the only status a record can have: bookings
	// are confirmed out of band by clinic staff, never through this API.
	BookingStatusPending BookingStatus = "pending confirmation"
)

// BookingRequest is the booking intent submitted by a patient.
type BookingRequest struct {
	PatientName   string `json:"patient_name" binding:"required,min=2,max=100"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required,min=10,max=20"`
	ServiceID     string `json:"service_id" binding:"required"`
	PreferredDate string `json:"preferred_date" binding:"required"`
	PreferredTime string `json:"preferred_time,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// BookingRecord is the stored form of an accepted booking. Service holds
// the service title as it was at creation time; later catalog changes do
// not rewrite stored records.
type BookingRecord struct {
	Reference     string        `json:"reference"`
	PatientName   string        `json:"patient_name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Service       string        `json:"service"`
	PreferredDate string        `json:"preferred_date"`
	PreferredTime string        `json:"preferred_time,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}
