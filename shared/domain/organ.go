package domain

// OrganViability is one card of the viability-windows grid.
type OrganViability struct {
	Name         string `json:"name"`
	Emoji        string `json:"emoji"`
	Window       string `json:"window"`
	ViabilityHrs int    `json:"viabilityHrs"`
	Color        string `json:"color"`
}

// OrganRecipient is one ranked row of the active recipient list.
type OrganRecipient struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Organ        string     `json:"organ"`
	Blood        BloodGroup `json:"blood"`
	Urgency      int        `json:"urgency"`
	Hospital     string     `json:"hospital"`
	HospitalCity string     `json:"hospital_city"`
	Wait         string     `json:"wait"`
	DistanceKM   *float64   `json:"distance_km"`
	Rank         int        `json:"rank"`
}
