package notify

import "context"

type Notifier interface {
	Send(ctx context.Context, subject, body string) error
}
