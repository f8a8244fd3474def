package domain

import "time"

type VerificationType string

const (
	VerificationPersonal VerificationType = "personal"
	VerificationBusiness VerificationType = "business"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

var VerificationStatuses = []VerificationStatus{
	VerificationPending, VerificationVerified, VerificationRejected,
}

// VerificationSubmission is one identity or business verification request.
// Once resolved, exactly one of DateApproved / DateRejected is set.
type VerificationSubmission struct {
	VerificationID      string             `json:"verificationId"`
	VerificationType    VerificationType   `json:"verificationType"`
	Status              VerificationStatus `json:"status"`
	DateSubmitted       time.Time          `json:"dateSubmitted"`
	DateApproved        *time.Time         `json:"dateApproved"`
	DateRejected        *time.Time         `json:"dateRejected"`
	RejectionReason     string             `json:"rejectionReason,omitempty"`
	ValidIDType         string             `json:"validIdType,omitempty"`
	ValidIDFile         string             `json:"validIdFile,omitempty"`
	BusinessName        string             `json:"businessName,omitempty"`
	BusinessAddress     string             `json:"businessAddress,omitempty"`
	BusinessEmail       string             `json:"businessEmail,omitempty"`
	BusinessPhoneNumber string             `json:"businessPhoneNumber,omitempty"`
	BusinessCertificate string             `json:"businessCertificate,omitempty"`
}

// UserVerification groups a user's submissions; a user may hold one personal
// and one business submission at the same time.
type UserVerification struct {
	UserID             string                   `json:"userId"`
	FullName           string                   `json:"fullName"`
	Email              string                   `json:"email"`
	TypesSummary       string                   `json:"verificationTypesSummary,omitempty"`
	TotalVerifications int                      `json:"totalVerifications"`
	Verifications      []VerificationSubmission `json:"verifications"`
}
