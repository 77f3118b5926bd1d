package domain

// RoleDTO represents a role in API responses.
type RoleDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserDTO represents a user in API responses.
type UserDTO struct {
	ID                int64   `json:"id"`
	Email             string  `json:"email"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	ProfilePictureURL string  `json:"profile_picture_url"`
	TwofaEnabled      bool    `json:"twofa_enabled"`
	EmailVerified     bool    `json:"email_verified"`
	Role              RoleDTO `json:"role"`
}

// ToDTO converts a UserModel to its API representation. The role must
// be preloaded.
func (m *UserModel) ToDTO() UserDTO {
	return UserDTO{
		ID:                m.ID,
		Email:             m.Email,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		ProfilePictureURL: m.ProfilePictureURL,
		TwofaEnabled:      m.TwofaEnabled,
		EmailVerified:     m.EmailVerified,
		Role: RoleDTO{
			ID:   m.Role.ID,
			Name: m.Role.Name,
		},
	}
}

// CreateUserRequest is the registration request body.
type CreateUserRequest struct {
	Email             string `json:"email" binding:"required,email"`
	FirstName         string `json:"first_name" binding:"required,max=100"`
	LastName          string `json:"last_name" binding:"required,max=100"`
	Password          string `json:"password" binding:"required,min=8"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// UpdateUserRequest carries the self-service profile update. Nil fields
// are left untouched.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password"`
}

// UpdateRoleRequest changes another user's role (administrators only).
type UpdateRoleRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

// TwofaEnabledResponse is returned once when two-factor auth is enabled.
// QRCode is a base64-encoded PNG of the otpauth enrollment QR code.
type TwofaEnabledResponse struct {
	QRCode string `json:"qr_code"`
}

// UserCountResponse reports the total number of user accounts.
type UserCountResponse struct {
	Count int64 `json:"count"`
}
