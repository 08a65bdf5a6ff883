package model

// LoginReq represents login payload forwarded to the backend.
// swagger:model LoginReq
type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterReq represents user registration payload.
// swagger:model RegisterReq
type RegisterReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// VerifyEmailReq carries the emailed verification token back to the
// backend.
// swagger:model VerifyEmailReq
type VerifyEmailReq struct {
	Token string `json:"token" validate:"required"`
}

// ResendVerificationReq asks the backend to send a fresh verification mail.
// swagger:model ResendVerificationReq
type ResendVerificationReq struct {
	Email string `json:"email" validate:"required,email"`
}

// Role selects which transaction endpoint a list call hits.
type Role string

const (
	RoleUser   Role = "user"
	RoleTenant Role = "tenant"
)
