package api

import "github.com/lifeforge-dev/lifeforge/shared/domain"

// DonorFilter narrows GET /blood/donors. Nil fields are omitted from the
// query string entirely; an empty string is a real filter value.
type DonorFilter struct {
	BloodGroup *string
	City       *string
	Pincode    *string
	Lat        *float64
	Lng        *float64
	Limit      *int
}

type CreateBloodRequest struct {
	HospitalID string            `json:"hospital_id" validate:"required"`
	BloodGroup domain.BloodGroup `json:"blood_group" validate:"required"`
	Units      int               `json:"units,omitempty"`
	Urgency    string            `json:"urgency,omitempty"`
	Lat        *float64          `json:"lat,omitempty"`
	Lng        *float64          `json:"lng,omitempty"`
}

type CreateBloodRequestResponse struct {
	Success       bool   `json:"success"`
	RequestID     string `json:"request_id"`
	DonorsAlerted int    `json:"donors_alerted"`
	Message       string `json:"message"`
}

// RequestDonor targets one specific donor with a blood request.
type RequestDonor struct {
	HospitalID string            `json:"hospital_id" validate:"required"`
	DonorID    domain.UserID     `json:"donor_id" validate:"required"`
	BloodGroup domain.BloodGroup `json:"blood_group" validate:"required"`
	Units      int               `json:"units,omitempty"`
	Urgency    string            `json:"urgency,omitempty"`
}

type RequestDonorResponse struct {
	Success   bool   `json:"success"`
	RequestID string `json:"request_id"`
	DonorName string `json:"donor_name"`
	SMSSent   bool   `json:"sms_sent"`
	Message   string `json:"message"`
}
