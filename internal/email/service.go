package email

import "context"

type Service interface {
	SendPasswordReset(ctx context.Context, to, token string) error
	SendInvite(ctx context.Context, to, fullName string) error
}
