package model

// ClinicInfo holds the clinic's contact details. Hours maps a lowercase
// weekday name to a schedule string or a closed marker.
type ClinicInfo struct {
	Name       string            `json:"name" validate:"required"`
	Address    string            `json:"address"`
	City       string            `json:"city"`
	Region     string            `json:"region"`
	PostalCode string            `json:"postal_code"`
	Phone      string            `json:"phone"`
	Email      string            `json:"email"`
	Hours      map[string]string `json:"hours"`
	MapURL     string            `json:"map_url,omitempty"`
}
