package model

// Testimonial is a patient review. The catalog keeps these in
// most-recent-first order.
type Testimonial struct {
	ID           string `json:"id" validate:"required"`
	PatientName  string `json:"patient_name"`
	PatientImage string `json:"patient_image,omitempty"`
	Rating       int    `json:"rating" validate:"gte=1,lte=5"`
	Comment      string `json:"comment"`
	Date         string `json:"date"`
	Treatment    string `json:"treatment"`
}
