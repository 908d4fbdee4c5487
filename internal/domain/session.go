package domain

import "encoding/json"

// User mirrors the profile owned by the upstream e-commerce API.
// It is copied read-only into the session at login time.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the local representation of a logged-in user: the mirrored
// profile plus the opaque bearer token issued by the upstream API. The
// token is never decoded locally, only forwarded.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Authenticated reports whether the session carries a usable token.
// A session without a token must never be treated as authenticated.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Credentials is a transient email/password pair. It is submitted once per
// login attempt and never persisted or logged.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Registration is the signup payload forwarded to the upstream API.
type Registration struct {
	Name       string `json:"name" validate:"required,min=3"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	RePassword string `json:"rePassword" validate:"required,eqfield=Password"`
	Phone      string `json:"phone" validate:"required"`
}

// ShippingAddress is the address payload required by order placement.
type ShippingAddress struct {
	Details string `json:"details" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	City    string `json:"city" validate:"required"`
}

// Address is a saved delivery address as accepted by the upstream API.
type Address struct {
	Name    string `json:"name" validate:"required"`
	Details string `json:"details" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	City    string `json:"city" validate:"required"`
}

// Result is the structured outcome of a protected upstream action. Upstream
// rejections become {ok:false, message} rather than errors, so callers can
// display the upstream's own message verbatim.
type Result struct {
	OK      bool            `json:"ok"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Rejected builds a failed Result carrying the upstream message.
func Rejected(message string, data json.RawMessage) *Result {
	return &Result{OK: false, Message: message, Data: data}
}

// Accepted builds a successful Result carrying the verbatim upstream body.
func Accepted(message string, data json.RawMessage) *Result {
	return &Result{OK: true, Message: message, Data: data}
}
