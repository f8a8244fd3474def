package verification

import (
	"context"
	"net/url"

	"tenalyadmin/internal/domain"
)

// ReviewClient is the slice of the Tenaly client used for identity review.
type ReviewClient interface {
	Verifications(ctx context.Context, token string) ([]domain.UserVerification, error)
	VerifySubmission(ctx context.Context, token, verificationID string) error
	RejectSubmission(ctx context.Context, token, verificationID, reason string) error
	ExportVerificationsCSV(ctx context.Context, token string, q url.Values) ([]byte, error)
}

// EventSink pushes review decisions to connected dashboard clients.
type EventSink interface {
	Broadcast(kind, id, reason string)
}
