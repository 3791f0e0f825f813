package model

// Credential is a qualification owned by a doctor profile. It has no
// identity of its own; the slice order on the profile is display order.
type Credential struct {
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

// DoctorProfile holds the public profile of the practice's doctor.
type DoctorProfile struct {
	Name            string       `json:"name" validate:"required"`
	Title           string       `json:"title"`
	Specialty       string       `json:"specialty"`
	SubSpecialty    string       `json:"sub_specialty,omitempty"`
	Bio             string       `json:"bio"`
	YearsExperience int          `json:"years_experience" validate:"gte=0"`
	PatientsServed  int          `json:"patients_served" validate:"gte=0"`
	SuccessRate     float64      `json:"success_rate" validate:"gte=0,lte=100"`
	ImageURL        string       `json:"image_url"`
	Credentials     []Credential `json:"credentials"`
	Languages       []string     `json:"languages"`
}
