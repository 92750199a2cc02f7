// file: internals/features/users/auth/dto/login_dto.go
package dto

import (
	"strings"
)

/* ===================== REQUESTS ===================== */

// MobileLoginRequest: body login mobile.
// has_existing_token boleh bool, angka, atau string ("true"/"1"/"yes") —
// klien lama mengirimnya sebagai string form value.
type MobileLoginRequest struct {
	Usr              string `json:"usr" form:"usr" validate:"required"`
	Pwd              string `json:"pwd" form:"pwd" validate:"required"`
	HasExistingToken any    `json:"has_existing_token" form:"has_existing_token"`
}

// WantsExistingToken menormalkan has_existing_token ke bool.
func (r MobileLoginRequest) WantsExistingToken() bool {
	return CoerceTokenFlag(r.HasExistingToken)
}

// CoerceTokenFlag: string → lower in ("true","1","yes"); selain itu truthiness biasa.
func CoerceTokenFlag(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "true" || s == "1" || s == "yes"
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return false
	}
}

/* ===================== RESPONSES ===================== */

type LoginBlock struct {
	Message  string  `json:"message"`
	HomePage string  `json:"home_page"`
	FullName string  `json:"full_name"`
	Sid      *string `json:"sid"`
}

type APICredentialsBlock struct {
	Token     *string `json:"token"`
	Generated bool    `json:"generated"`
	Message   string  `json:"message"`
}

type MobileLoginResponse struct {
	Login          LoginBlock          `json:"login"`
	APICredentials APICredentialsBlock `json:"api_credentials"`
}
