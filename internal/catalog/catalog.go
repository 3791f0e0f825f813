// Package catalog holds the practice's immutable reference data: the
// doctor profile, the service list, testimonials and clinic contact
// info. A Catalog is built once at startup and never mutated.
package catalog

import (
	"fmt"

	"github.com/phongkhamtamthan/clinic-api/internal/model"
	"github.com/phongkhamtamthan/clinic-api/pkg/errors"
	"github.com/phongkhamtamthan/clinic-api/pkg/validator"
)

type Catalog struct {
	profile      model.DoctorProfile
	services     []model.Service
	serviceIndex map[string]int
	testimonials []model.Testimonial
	clinic       model.ClinicInfo
}

// New builds a catalog and checks its invariants: every record passes
// field validation and service ids are unique.
func New(profile model.DoctorProfile, services []model.Service, testimonials []model.Testimonial, clinic model.ClinicInfo) (*Catalog, error) {
	v := validator.New()

	if err := v.Validate(profile); err != nil {
		return nil, fmt.Errorf("invalid doctor profile: %w", err)
	}
	if err := v.Validate(clinic); err != nil {
		return nil, fmt.Errorf("invalid clinic info: %w", err)
	}

	index := make(map[string]int, len(services))
	for i, svc := range services {
		if err := v.Validate(svc); err != nil {
			return nil, fmt.Errorf("invalid service %q: %w", svc.ID, err)
		}
		if _, exists := index[svc.ID]; exists {
			return nil, fmt.Errorf("duplicate service id %q", svc.ID)
		}
		index[svc.ID] = i
	}

	for _, t := range testimonials {
		if err := v.Validate(t); err != nil {
			return nil, fmt.Errorf("invalid testimonial %q: %w", t.ID, err)
		}
	}

	return &Catalog{
		profile:      profile,
		services:     services,
		serviceIndex: index,
		testimonials: testimonials,
		clinic:       clinic,
	}, nil
}

// Profile returns the singleton doctor profile.
func (c *Catalog) Profile() model.DoctorProfile {
	return c.profile
}

// Services returns every service in catalog-definition order.
func (c *Catalog) Services() []model.Service {
	return c.services
}

// Service looks up a service by id.
func (c *Catalog) Service(id string) (*model.Service, error) {
	i, ok := c.serviceIndex[id]
	if !ok {
		return nil, errors.NotFound("service", fmt.Errorf("id %q", id))
	}
	return &c.services[i], nil
}

// Testimonials returns every testimonial in catalog-definition order,
// which the seed data keeps most-recent-first. The catalog does not
// sort; chronological ordering is a caller concern.
func (c *Catalog) Testimonials() []model.Testimonial {
	return c.testimonials
}

// ClinicInfo returns the singleton clinic contact record.
func (c *Catalog) ClinicInfo() model.ClinicInfo {
	return c.clinic
}
