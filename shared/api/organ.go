package api

import "github.com/lifeforge-dev/lifeforge/shared/domain"

// RecipientFilter narrows GET /organ/recipients.
type RecipientFilter struct {
	OrganType  *string
	BloodGroup *string
	DonorLat   *float64
	DonorLng   *float64
	Limit      *int
}

type CreateOrganPledge struct {
	DonorID       domain.UserID `json:"donor_id" validate:"required"`
	Organs        []string      `json:"organs" validate:"required,min=1"`
	FamilyConsent bool          `json:"family_consent,omitempty"`
	PledgeCardURL string        `json:"pledge_card_url,omitempty"`
}

type CreateOrganPledgeResponse struct {
	Success  bool   `json:"success"`
	PledgeID string `json:"pledge_id"`
	Message  string `json:"message"`
}

type CreateOrganRequest struct {
	HospitalID    string            `json:"hospital_id" validate:"required"`
	RecipientName string            `json:"recipient_name" validate:"required"`
	OrganNeeded   string            `json:"organ_needed" validate:"required"`
	BloodGroup    domain.BloodGroup `json:"blood_group" validate:"required"`
	UrgencyScore  int               `json:"urgency_score,omitempty"`
	Lat           *float64          `json:"lat,omitempty"`
	Lng           *float64          `json:"lng,omitempty"`
	WaitLabel     string            `json:"wait_label,omitempty"` // e.g. "3.2 yrs"
}
