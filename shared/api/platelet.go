package api

import "github.com/lifeforge-dev/lifeforge/shared/domain"

// PlateletDonorFilter narrows GET /platelet/donors.
type PlateletDonorFilter struct {
	BloodGroup *string
	City       *string
	Limit      *int
}

type CreatePlateletRequest struct {
	PatientName string `json:"patient_name" validate:"required"`
	CancerType  string `json:"cancer_type,omitempty"`
	BloodGroup  string `json:"blood_group,omitempty"`
	Units       int    `json:"units,omitempty"`
	Urgency     string `json:"urgency,omitempty"`
	HospitalID  string `json:"hospital_id" validate:"required"`
}

type CreatePlateletMatch struct {
	RequestID string        `json:"request_id" validate:"required"`
	DonorID   domain.UserID `json:"donor_id" validate:"required"`
}

// UpdatePlateletMatch patches a match's status (accepted/declined/fulfilled).
type UpdatePlateletMatch struct {
	Status string `json:"status" validate:"required"`
}
