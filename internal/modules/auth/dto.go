package auth

// LoginRequest carries the staff credentials forwarded to Tenaly.
// Login accepts either an email address or a phone number.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse describes the signed-in admin identity.
type SessionResponse struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
