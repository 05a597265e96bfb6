package api

import "github.com/lifeforge-dev/lifeforge/shared/domain"

type RegisterThalPatient struct {
	Name                     string            `json:"name" validate:"required"`
	BloodGroup               domain.BloodGroup `json:"blood_group" validate:"required"`
	HospitalID               string            `json:"hospital_id" validate:"required"`
	TransfusionFrequencyDays int               `json:"transfusion_frequency_days,omitempty"`
	LastTransfusionDate      string            `json:"last_transfusion_date,omitempty"` // "YYYY-MM-DD"
	DOB                      string            `json:"dob,omitempty"`
}

type TransfusionDone struct {
	PatientID       string `json:"patient_id" validate:"required"`
	TransfusionDate string `json:"transfusion_date" validate:"required"` // "YYYY-MM-DD"
}

type AssignThalDonor struct {
	PatientID string        `json:"patient_id" validate:"required"`
	DonorID   domain.UserID `json:"donor_id" validate:"required"`
}

// PredictTransfusion feeds the ML predictor with either a synthetic
// patient id or raw clinical parameters.
type PredictTransfusion struct {
	PatientID        string  `json:"patient_id,omitempty"`
	BloodType        string  `json:"blood_type,omitempty"`
	Age              int     `json:"age,omitempty"`
	WeightKg         float64 `json:"weight_kg,omitempty"`
	Splenectomy      bool    `json:"splenectomy,omitempty"`
	ChelationTherapy bool    `json:"chelation_therapy,omitempty"`
	BaselineHb       float64 `json:"baseline_hb,omitempty"`
	LastHbPre        float64 `json:"last_hb_pre,omitempty"`
	LastHbPost       float64 `json:"last_hb_post,omitempty"`
	DaysSinceLastTx  int     `json:"days_since_last_tx,omitempty"`
	AvgIntervalLast3 float64 `json:"avg_interval_last3,omitempty"`
	HbDecayRate      float64 `json:"hb_decay_rate,omitempty"`
}

// TransfusionCompleted reports a finished transfusion to the ML service,
// which permanently excludes the donor for this patient
// (alloimmunization prevention).
type TransfusionCompleted struct {
	PatientID       string        `json:"patient_id" validate:"required"`
	DonorID         domain.UserID `json:"donor_id" validate:"required"`
	TransfusionDate string        `json:"transfusion_date" validate:"required"` // "YYYY-MM-DD"
	HbPre           float64       `json:"hb_pre"`
	HbPost          float64       `json:"hb_post"`
	Units           int           `json:"units"`
	Reaction        bool          `json:"reaction"`
}

type TransfusionRecorded struct {
	Status       string `json:"status"`
	PatientID    string `json:"patient_id"`
	DonorFlagged string `json:"donor_flagged"`
	Message      string `json:"message"`
}

type MatchThalDonors struct {
	PatientID        string `json:"patient_id" validate:"required"`
	PatientBloodType string `json:"patient_blood_type" validate:"required"`
	TopN             int    `json:"top_n,omitempty"`
}
