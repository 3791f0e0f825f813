package model

// Service is a billable medical offering with a stable identifier.
type Service struct {
	ID              string  `json:"id" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description"`
	PriceStart      float64 `json:"price_start" validate:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"gt=0"`
	Icon            string  `json:"icon"`
}
