// Package booking implements the in-memory booking store and the
// booking-reference generator. Records live for the process lifetime
// only; there is no persistence.
package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/phongkhamtamthan/clinic-api/internal/catalog"
	"github.com/phongkhamtamthan/clinic-api/internal/model"
	"github.com/phongkhamtamthan/clinic-api/pkg/errors"
)

// referenceBase offsets the sequence number so the first booking of a
// process gets 1001. The counter is derived from store size, not a
// persisted sequence, so references are only unique within one process
// lifetime. Known limitation, kept as documented behavior.
const referenceBase = 1000

// Clock abstracts wall-clock time so tests can pin created_at.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

type BookingServicer interface {
	CreateBooking(ctx context.Context, req *model.BookingRequest) (*model.BookingRecord, error)
	ListBookings(ctx context.Context) []*model.BookingRecord
}

type Service struct {
	catalog *catalog.Catalog
	clock   Clock

	// mu makes "read size, compute reference, append" one critical
	// section; without it concurrent submissions could mint the same
	// sequence number.
	mu      sync.Mutex
	records []*model.BookingRecord
}

func NewService(cat *catalog.Catalog, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock()
	}
	return &Service{
		catalog: cat,
		clock:   clock,
	}
}

// CreateBooking resolves the requested service, mints a reference and
// appends the record to the store. The service title is denormalized
// into the record at creation time.
func (s *Service) CreateBooking(ctx context.Context, req *model.BookingRequest) (*model.BookingRecord, error) {
	svc, err := s.catalog.Service(req.ServiceID)
	if err != nil {
		return nil, errors.InvalidService(req.ServiceID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := &model.BookingRecord{
		Reference:     s.nextReference(req.PatientName),
		PatientName:   req.PatientName,
		Email:         req.Email,
		Phone:         req.Phone,
		Service:       svc.Title,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Notes:         req.Notes,
		Status:        model.BookingStatusPending,
		CreatedAt:     s.clock.Now(),
	}
	s.records = append(s.records, record)

	log.Info().
		Str("reference", record.Reference).
		Str("patient", record.PatientName).
		Str("service", record.Service).
		Msg("new booking")

	return record, nil
}

// ListBookings returns every stored record in insertion order.
func (s *Service) ListBookings(ctx context.Context) []*model.BookingRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.BookingRecord, len(s.records))
	copy(out, s.records)
	return out
}

// nextReference builds "DL-<prefix>-<n>" where prefix is the first two
// runes of the patient name upper-cased and n is the store size plus
// the base offset. Names shorter than two runes contribute what they
// have; the prefix may be empty. Callers must hold s.mu.
func (s *Service) nextReference(patientName string) string {
	prefix := []rune(patientName)
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	sequence := len(s.records) + referenceBase + 1
	return fmt.Sprintf("DL-%s-%d", strings.ToUpper(string(prefix)), sequence)
}
