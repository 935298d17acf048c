package dto

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token pair and a user summary.
type LoginResponse struct {
	Success      bool        `json:"success"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	User         UserSummary `json:"user"`
}

// RegisterStartRequest opens a registration session.
type RegisterStartRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RegisterStartResponse returns the registration session id the client
// must present for the remaining steps.
type RegisterStartResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	RegistrationID string `json:"registration_id"`
}

// RegisterVerifyEmailRequest verifies the session's email with an OTP.
type RegisterVerifyEmailRequest struct {
	RegistrationID string `json:"registration_id" binding:"required"`
	Code           string `json:"code" binding:"required"`
}

// RegisterCompleteRequest finishes registration and creates the user.
type RegisterCompleteRequest struct {
	RegistrationID string `json:"registration_id" binding:"required"`
	Username       string `json:"username" binding:"required,min=3,max=50"`
	Name           string `json:"name" binding:"required,min=1,max=255"`
}

// RegisterResendRequest re-sends the registration OTP.
type RegisterResendRequest struct {
	RegistrationID string `json:"registration_id" binding:"required"`
}

// TokenPairResponse returns a fresh access/refresh pair.
type TokenPairResponse struct {
	Success      bool   `json:"success"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// SendOTPRequest requests a login code by email or SMS.
type SendOTPRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Method string `json:"method" binding:"required,oneof=email sms"`
}

// VerifyOTPRequest logs in with a one-time code.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// ChangePasswordRequest rotates the caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// SendResetCodeRequest requests a password reset code. The response never
// reveals whether the account exists.
type SendResetCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RefreshRequest exchanges a refresh token for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ValidateTokenResponse reports whether the presented access token is valid.
type ValidateTokenResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user_id,omitempty"`
}

// OrganizationMembershipRequest targets an organization for a membership
// check or registration.
type OrganizationMembershipRequest struct {
	OrganizationID string `json:"organization_id" binding:"required"`
}

// ValidateUserOrganizationResponse is the membership-check result.
type ValidateUserOrganizationResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}
