package domain

// MarrowMatch is one HLA match card from POST /marrow/match.
type MarrowMatch struct {
	ID         string  `json:"id"`
	DonorID    UserID  `json:"donor_id"`
	MatchPct   float64 `json:"matchPct"`
	Confidence string  `json:"confidence"`
	HLAA       string  `json:"hlaA"`
	HLAB       string  `json:"hlaB"`
	Location   string  `json:"location"`
	Age        *int    `json:"age"`
	Donated    int     `json:"donated"`
	Status     string  `json:"status"`
}

// MarrowMatchResult is the envelope of POST /marrow/match.
type MarrowMatchResult struct {
	PatientHLA HLAType       `json:"patient_hla"`
	TotalFound int           `json:"total_found"`
	Matches    []MarrowMatch `json:"matches"`
}
