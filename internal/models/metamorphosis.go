package models

import "time"

// Metamorphosis is a before/after photo pair for a treatment, shown in the
// public gallery. Image paths are public URLs under /uploads.
type Metamorphosis struct {
	ID            int64     `json:"id"`
	TreatmentName string    `json:"treatment_name"`
	BeforeImage   string    `json:"before_image"`
	AfterImage    string    `json:"after_image"`
	CreatedAt     time.Time `json:"created_at"`
}
