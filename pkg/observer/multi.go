package observer

import (
	"context"

	"github.com/samber/lo"

	"github.com/codevai-team/codev-bot/pkg/webhook"
)

// Multi forwards every event to each observer in order.
type Multi struct {
	observers []webhook.Observer
}

func NewMulti(observers ...webhook.Observer) *Multi {
	return &Multi{
		observers: lo.Filter(observers, func(o webhook.Observer, _ int) bool {
			return o != nil
		}),
	}
}

func (m *Multi) Received(
	ctx context.Context,
	update webhook.InboundUpdate,
	summary webhook.Summary,
) {
	for _, o := range m.observers {
		o.Received(ctx, update, summary)
	}
}

func (m *Multi) Failed(
	ctx context.Context,
	err error,
) {
	for _, o := range m.observers {
		o.Failed(ctx, err)
	}
}
