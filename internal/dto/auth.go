package dto

// ── auth DTOs ──

// StartRegistrationRequest creates the unconfirmed stub user.
type StartRegistrationRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	Email     string `json:"email"      binding:"required,email"`
}

// CompleteRegistrationRequest fills the stub's profile and confirms it.
type CompleteRegistrationRequest struct {
	Email     string `json:"email"      binding:"required,email"`
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name"  binding:"omitempty,max=100"`
	Phone     string `json:"phone"      binding:"omitempty,max=45"`
	Password  string `json:"password"   binding:"required,min=8,max=72"`
	Role      string `json:"role"       binding:"required,oneof=professor student institution"`
	Gender    string `json:"gender"     binding:"omitempty,oneof=male female other"`
	BirthDate string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
}

// GoogleLoginRequest logs in (or registers) with a Google ID token.
type GoogleLoginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// LoginRequest is the email/password login payload.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest rotates an access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse carries a freshly issued token pair.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserResponse `json:"user"`
}

// RegistrationResponse reports the outcome of a registration step. Created is
// false when an unconfirmed stub already existed and was resolved instead.
type RegistrationResponse struct {
	Created bool         `json:"created"`
	Token   string       `json:"token,omitempty"`
	User    UserResponse `json:"user"`
}
