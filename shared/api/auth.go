package api

import (
	"encoding/json"

	"github.com/lifeforge-dev/lifeforge/shared/domain"
)

// Auth request/response DTOs mirroring the /auth/* endpoints.

type DonorRegisterRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Mobile    string `json:"mobile" validate:"required"`
	Aadhaar   string `json:"aadhaar,omitempty"`
	DOB       string `json:"dob,omitempty"` // "YYYY-MM-DD"
	Gender    string `json:"gender,omitempty"`
	City      string `json:"city" validate:"required"`
	Pincode   string `json:"pincode,omitempty"`

	BloodGroup domain.BloodGroup `json:"blood_group" validate:"required"`
	DonorTypes []string          `json:"donor_types" validate:"required,min=1"`

	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
}

type HospitalRegisterRequest struct {
	Name          string   `json:"name" validate:"required"`
	RegNumber     string   `json:"reg_number" validate:"required"`
	License       string   `json:"license,omitempty"`
	Address       string   `json:"address" validate:"required"`
	City          string   `json:"city" validate:"required"`
	ContactPerson string   `json:"contact_person" validate:"required"`
	ContactMobile string   `json:"contact_mobile" validate:"required"`
	ContactEmail  string   `json:"contact_email" validate:"required,email"`
	Password      string   `json:"password" validate:"required,min=6"`
	Lat           *float64 `json:"lat,omitempty"`
	Lng           *float64 `json:"lng,omitempty"`
}

type LoginRequest struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     domain.Role `json:"role" validate:"required,oneof=donor hospital admin"`
}

type OtpSendRequest struct {
	Mobile string `json:"mobile" validate:"required"`
}

type OtpVerifyRequest struct {
	Mobile string `json:"mobile" validate:"required"`
	OTP    string `json:"otp" validate:"required,len=6"`
}

type RegisterResponse struct {
	Success    bool   `json:"success"`
	DonorID    string `json:"donor_id,omitempty"`
	HospitalID string `json:"hospital_id,omitempty"`
	Message    string `json:"message"`
}

// LoginResponse carries the session fields the client persists atomically,
// plus a role-specific profile blob it passes through untouched.
type LoginResponse struct {
	Success     bool            `json:"success"`
	AccessToken string          `json:"access_token"`
	UserID      domain.UserID   `json:"user_id"`
	Role        domain.Role     `json:"role"`
	Profile     json.RawMessage `json:"profile"`
	Redirect    string          `json:"redirect"`
}

type OtpSendResponse struct {
	Success bool   `json:"success"`
	SMSSent bool   `json:"sms_sent"`
	Message string `json:"message"`
}

type OtpVerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
