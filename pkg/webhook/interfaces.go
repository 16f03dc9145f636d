package webhook

import (
	"context"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package webhook_test -source=interfaces.go

type Observer interface {
	Received(ctx context.Context, update InboundUpdate, summary Summary)
	Failed(ctx context.Context, err error)
}
