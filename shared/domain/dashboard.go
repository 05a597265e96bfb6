package domain

// DonorDashboard backs the donor dashboard view.
type DonorDashboard struct {
	Profile         DonorProfile    `json:"profile"`
	Stats           DonorStats      `json:"stats"`
	UrgentRequests  []UrgentRequest `json:"urgent_requests"`
	DonationHistory []DonationEntry `json:"donation_history"`
}

type DonorProfile struct {
	ID          UserID     `json:"id"`
	Name        string     `json:"name"`
	Initial     string     `json:"initial"`
	BloodGroup  BloodGroup `json:"blood_group"`
	City        string     `json:"city"`
	IsVerified  bool       `json:"is_verified"`
	DonorTypes  []string   `json:"donor_types"`
	TrustStars  float64    `json:"trust_stars"`
	IsAvailable bool       `json:"is_available"`
}

type DonorStats struct {
	TotalDonations int     `json:"total_donations"`
	LivesImpacted  int     `json:"lives_impacted"`
	TrustScore     float64 `json:"trust_score"`
	NextEligible   string  `json:"next_eligible"`
}

type UrgentRequest struct {
	Type     string     `json:"type"`
	Module   string     `json:"module"`
	Group    BloodGroup `json:"group"`
	Hospital string     `json:"hospital"`
	Distance string     `json:"distance"`
	Urgency  string     `json:"urgency"`
	Time     string     `json:"time"`
}

type DonationEntry struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Hospital string `json:"hospital"`
	Status   string `json:"status"`
	Impact   string `json:"impact"`
}

// HospitalDashboard backs the hospital dashboard view.
type HospitalDashboard struct {
	Hospital       HospitalProfile `json:"hospital"`
	Stats          HospitalStats   `json:"stats"`
	ActiveRequests []ActiveRequest `json:"active_requests"`
}

type HospitalProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	IsVerified bool   `json:"is_verified"`
}

type HospitalStats struct {
	ActiveRequests   int    `json:"active_requests"`
	MatchedThisMonth int    `json:"matched_this_month"`
	UnitsReceived    int    `json:"units_received"`
	AvgMatchTime     string `json:"avg_match_time"`
}

type ActiveRequest struct {
	ID      string `json:"id"`
	Group   string `json:"group"`
	Units   int    `json:"units"`
	Urgency string `json:"urgency"`
	Module  string `json:"module"`
	Matched int    `json:"matched"`
	Posted  string `json:"posted"`
}

// AdminDashboard backs the admin verification view.
type AdminDashboard struct {
	Stats             AdminStats        `json:"stats"`
	VerificationQueue VerificationQueue `json:"verification_queue"`
	FlaggedAccounts   []FlaggedAccount  `json:"flagged_accounts"`
}

type AdminStats struct {
	PendingVerifications int `json:"pending_verifications"`
	FlaggedAccounts      int `json:"flagged_accounts"`
	TotalUsers           int `json:"total_users"`
	TodaysMatches        int `json:"todays_matches"`
}

type VerificationQueue struct {
	Donors    []VerificationItem `json:"donors"`
	Hospitals []VerificationItem `json:"hospitals"`
}

type VerificationItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	City string `json:"city"`
	Docs string `json:"docs"`
	Time string `json:"time"`
}

type FlaggedAccount struct {
	ID         UserID  `json:"id"`
	Name       string  `json:"name"`
	City       string  `json:"city"`
	TrustScore float64 `json:"trust_score"`
}

// PlatformStats feeds the public live counters.
type PlatformStats struct {
	MatchesToday       int `json:"matches_today"`
	LivesImpacted      int `json:"lives_impacted"`
	ActiveDonorsOnline int `json:"active_donors_online"`
	HospitalsConnected int `json:"hospitals_connected"`
}
