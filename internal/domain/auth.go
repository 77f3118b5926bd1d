package domain

// LoginRequest is the credentials login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries a JWT back to the client. Message is "success"
// when Token is an access token, or "twofa_required" when Token is a
// short-lived two-factor token that must be traded in via the twofa
// endpoint.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// TwofaRequest trades a TOTP code for an access token.
type TwofaRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

// ValidateResponse reports whether a presented token is valid.
type ValidateResponse struct {
	Successful bool `json:"successful"`
}

// ValidateEmailRequest confirms an email address with the token from
// the verification mail.
type ValidateEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

// ForgotPasswordRequest triggers a password-reset mail.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest sets a new password with the token from the
// reset mail.
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
