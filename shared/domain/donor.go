package domain

// Donor is a blood donor card as served by GET /blood/donors.
// Server-computed fields (trust stars, eligibility, distance) are carried
// verbatim; the client never derives them.
type Donor struct {
	ID               UserID     `json:"id"`
	Name             string     `json:"name"`
	City             string     `json:"city"`
	Group            BloodGroup `json:"group"`
	Trust            float64    `json:"trust"`
	TrustScore       float64    `json:"trust_score"`
	IsVerified       bool       `json:"is_verified"`
	Available        bool       `json:"available"`
	EligibleToDonate bool       `json:"eligible_to_donate"`
	LastDonated      string     `json:"last_donated"`
	DistanceKM       *float64   `json:"distance_km"`
	Distance         string     `json:"distance"`
}

// PlateletDonor is an apheresis donor card from GET /platelet/donors.
type PlateletDonor struct {
	ID            UserID     `json:"id"`
	Name          string     `json:"name"`
	Group         BloodGroup `json:"group"`
	Compat        int        `json:"compat"`
	Trust         float64    `json:"trust"`
	LastApheresis string     `json:"lastApheresis"`
	NextAvail     string     `json:"nextAvail"`
	City          string     `json:"city"`
}

// MarrowDonor is a registry entry from GET /marrow/donors.
type MarrowDonor struct {
	ID          UserID  `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	TrustScore  float64 `json:"trust_score"`
	IsVerified  bool    `json:"is_verified"`
	HLAType     HLAType `json:"hla_type"`
	IsAvailable bool    `json:"is_available"`
}
