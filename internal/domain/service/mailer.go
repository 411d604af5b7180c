package service

import "context"

// Mailer sends transactional email. Delivery failures are reported to the
// caller, who decides whether they abort the surrounding operation.
type Mailer interface {
	SendWelcome(ctx context.Context, to string) error
}
