package api

import "github.com/lifeforge-dev/lifeforge/shared/domain"

type RegisterMilkDonor struct {
	DonorID          domain.UserID `json:"donor_id" validate:"required"`
	BabyAgeMonths    int           `json:"baby_age_months" validate:"required"`
	QuantityMLPerDay int           `json:"quantity_ml_per_day" validate:"required"`
	PickupLocation   string        `json:"pickup_location,omitempty"`
	TestDocURL       string        `json:"test_doc_url,omitempty"`
	HealthScore      int           `json:"health_score,omitempty"`
}

type CreateMilkRequest struct {
	HospitalID      string `json:"hospital_id" validate:"required"`
	InfantName      string `json:"infant_name,omitempty"`
	DailyQuantityML int    `json:"daily_quantity_ml" validate:"required"`
}
