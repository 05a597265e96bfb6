package client

import (
	"context"
	"net/http"

	"github.com/lifeforge-dev/lifeforge/shared/api"
)

// Login authenticates and, on success, persists token, user id and role
// into the session store as one atomic unit. This is the only endpoint
// with a client-side effect beyond the network call.
func (c *Client) Login(ctx context.Context, creds api.LoginRequest) (*api.LoginResponse, error) {
	if err := api.Validate(creds); err != nil {
		return nil, err
	}

	var out api.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", creds, nil, &out); err != nil {
		return nil, err
	}
	if err := c.session.Set(out.AccessToken, out.UserID, out.Role); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout clears the session. Invalidation is purely client-local; no
// network call is made.
func (c *Client) Logout() error {
	return c.session.Clear()
}

func (c *Client) RegisterDonor(ctx context.Context, req api.DonorRegisterRequest) (*api.RegisterResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.RegisterResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register/donor", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RegisterHospital(ctx context.Context, req api.HospitalRegisterRequest) (*api.RegisterResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.RegisterResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register/hospital", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendOTP(ctx context.Context, mobile string) (*api.OtpSendResponse, error) {
	req := api.OtpSendRequest{Mobile: mobile}
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.OtpSendResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/otp/send", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyOTP(ctx context.Context, mobile, otp string) (*api.OtpVerifyResponse, error) {
	req := api.OtpVerifyRequest{Mobile: mobile, OTP: otp}
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.OtpVerifyResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/otp/verify", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
