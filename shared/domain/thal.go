package domain

// ThalPatient is an active patient row from GET /thal/patients.
type ThalPatient struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Age           *int       `json:"age"`
	Group         BloodGroup `json:"group"`
	Hospital      string     `json:"hospital"`
	Freq          string     `json:"freq"`
	NextDate      string     `json:"nextDate"`
	Donor         string     `json:"donor"`
	Countdown     string     `json:"countdown"`
	DaysUntil     *int       `json:"days_until"`
	IsUrgent      bool       `json:"is_urgent"`
	NeedsMatchNow bool       `json:"needs_match_now"`
	PastDonorIDs  []UserID   `json:"past_donor_ids"`
}

// CalendarDay is one column of the transfusion calendar widget.
type CalendarDay struct {
	Day           string   `json:"day"`
	Date          string   `json:"date"`
	Has           bool     `json:"has"`
	Label         *string  `json:"label"`
	Patients      []string `json:"patients"`
	NeedsMatchNow bool     `json:"needs_match_now"`
}

// ThalMatchCandidate is a compatible donor who has never donated to the
// patient before (no-repeat rule, enforced server-side).
type ThalMatchCandidate struct {
	DonorID                    UserID     `json:"donor_id"`
	Name                       string     `json:"name"`
	BloodGroup                 BloodGroup `json:"blood_group"`
	City                       string     `json:"city"`
	TrustScore                 float64    `json:"trust_score"`
	IsVerified                 bool       `json:"is_verified"`
	PreviouslyDonatedToPatient bool       `json:"previously_donated_to_patient"`
}

// ThalMatches is the envelope of GET /thal/patients/{id}/matches.
type ThalMatches struct {
	PatientID       string               `json:"patient_id"`
	PatientName     string               `json:"patient_name"`
	BloodGroup      BloodGroup           `json:"blood_group"`
	NextTransfusion string               `json:"next_transfusion"`
	DaysUntil       *int                 `json:"days_until"`
	NeedsMatchNow   bool                 `json:"needs_match_now"`
	EarlyWarning    *string              `json:"early_warning"`
	ExcludedDonors  int                  `json:"excluded_donors"`
	Matches         []ThalMatchCandidate `json:"matches"`
}

// TransfusionPrediction is the ML forecast from POST /thal/ml/predict.
type TransfusionPrediction struct {
	PatientID      string  `json:"patient_id"`
	PredictedDays  int     `json:"predicted_days"`
	PredictedDate  string  `json:"predicted_date"`
	Urgency        string  `json:"urgency"`
	ConfidenceLow  int     `json:"confidence_low"`
	ConfidenceHigh int     `json:"confidence_high"`
	RFPrediction   float64 `json:"rf_prediction"`
	GBPrediction   float64 `json:"gb_prediction"`
	Message        string  `json:"message"`
}

// ModelInfo describes the prediction model from GET /thal/ml/model-info.
type ModelInfo struct {
	Status    string             `json:"status"`
	ModelType string             `json:"model_type"`
	Metrics   map[string]float64 `json:"metrics"`
}
