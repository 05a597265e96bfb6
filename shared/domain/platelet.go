package domain

// PlateletRequest is an open apheresis request from GET /platelet/requests/open.
// Expiry labels track the 5-day platelet viability window.
type PlateletRequest struct {
	ID           string     `json:"id"`
	Patient      string     `json:"patient"`
	Cancer       string     `json:"cancer"`
	Group        BloodGroup `json:"group"`
	Units        int        `json:"units"`
	Expiry       string     `json:"expiry"`
	Urgency      string     `json:"urgency"`
	Hospital     string     `json:"hospital"`
	HospitalCity string     `json:"hospital_city"`
	DaysLeft     int        `json:"days_left"`
	HoursLeft    int        `json:"hours_left"`
	IsCritical   bool       `json:"is_critical"`
}

// PlateletMatch links a platelet request to a donor.
type PlateletMatch struct {
	ID        string `json:"id"`
	RequestID string `json:"request_id"`
	DonorID   UserID `json:"donor_id"`
	Status    string `json:"status"`
	Module    string `json:"module"`
}
