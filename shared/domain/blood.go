package domain

// BloodRequest is an open request as listed by GET /blood/requests/open
// and GET /blood/requests/for-donor. TimeLeft/Posted are preformatted
// labels computed by the server from the request's urgency window.
type BloodRequest struct {
	ID        string     `json:"id"`
	Hospital  string     `json:"hospital"`
	Group     BloodGroup `json:"group"`
	Units     int        `json:"units"`
	Urgency   string     `json:"urgency"`
	TimeLeft  string     `json:"timeLeft"`
	HoursLeft float64    `json:"hours_left"`
	City      string     `json:"city"`
	Posted    string     `json:"posted"`
}

// Shortage is one blood group's supply/demand row from GET /blood/shortage.
type Shortage struct {
	BloodGroup      BloodGroup `json:"blood_group"`
	Requests        int        `json:"requests"`
	DonorsAvailable int        `json:"donors_available"`
	Deficit         int        `json:"deficit"`
	Severity        string     `json:"severity"`
}
