package domain

type (
	UserID     = string
	BloodGroup = string

	// HLAType holds HLA markers such as "A*02:01", "B*07:02".
	HLAType = []string
)

// Role of the logged-in user. The backend treats "donor" as the default
// when none is supplied.
type Role string

const (
	RoleDonor    Role = "donor"
	RoleHospital Role = "hospital"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleHospital, RoleAdmin:
		return true
	}
	return false
}
