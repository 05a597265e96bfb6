package api

import "github.com/lifeforge-dev/lifeforge/shared/domain"

type MarrowMatchRequest struct {
	PatientHLA      domain.HLAType `json:"patient_hla" validate:"required,min=1"`
	PatientID       string         `json:"patient_id,omitempty"`
	MinMatchPercent float64        `json:"min_match_percent,omitempty"`
	Urgency         string         `json:"urgency,omitempty"`
}

type RegisterHLA struct {
	DonorID domain.UserID  `json:"donor_id" validate:"required"`
	HLAType domain.HLAType `json:"hla_type" validate:"required,min=1"`
}
