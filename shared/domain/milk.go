package domain

// MilkDonor is an active donor card from GET /milk/donors.
type MilkDonor struct {
	ID       string `json:"id"`
	DonorID  UserID `json:"donor_id"`
	Name     string `json:"name"`
	BabyAge  string `json:"babyAge"`
	Qty      string `json:"qty"`
	Area     string `json:"area"`
	Verified bool   `json:"verified"`
	Impact   string `json:"impact"`
}

// MilkBankBatch is one pasteurization-log row from GET /milk/bank.
type MilkBankBatch struct {
	ID          string `json:"id"`
	From        string `json:"from"`
	Pasteurized string `json:"pasteurized"`
	Expiry      string `json:"expiry"`
	Qty         string `json:"qty"`
	Status      string `json:"status"`
}

// MilkShortageAlert is an open NICU milk request.
type MilkShortageAlert struct {
	ID             string  `json:"id"`
	Hospital       string  `json:"hospital"`
	City           string  `json:"city"`
	InfantName     *string `json:"infant_name"`
	QuantityNeeded string  `json:"quantity_needed"`
	Message        string  `json:"message"`
}
