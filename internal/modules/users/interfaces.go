package users

import (
	"context"
	"net/url"

	"tenalyadmin/internal/domain"
	"tenalyadmin/internal/tenaly"
)

// DirectoryClient is the slice of the Tenaly client used for user management.
// Unlike ads, user listing stays server-side: the user base is too large to
// pull into the gateway, so filters travel upstream as query parameters.
type DirectoryClient interface {
	Users(ctx context.Context, token string, q url.Values) ([]domain.UserAccount, *tenaly.Pagination, error)
	SuspendUser(ctx context.Context, token, userID, reason string) error
	DeleteUser(ctx context.Context, token, userID, confirmEmail string) error
	ExportUsersCSV(ctx context.Context, token string, q url.Values) ([]byte, error)
}

// EventSink pushes account actions to connected dashboard clients.
type EventSink interface {
	Broadcast(kind, id, reason string)
}
