package observer

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/codevai-team/codev-bot/pkg/common"
	"github.com/codevai-team/codev-bot/pkg/metrics"
	"github.com/codevai-team/codev-bot/pkg/webhook"
)

const (
	ReasonParse    = "parse"
	ReasonInternal = "internal"
)

type Metrics struct {
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) Received(
	_ context.Context,
	update webhook.InboundUpdate,
	summary webhook.Summary,
) {
	metrics.UpdatesReceivedTotal.WithLabelValues(string(summary.Kind)).Inc()
	metrics.UpdateBytesTotal.Add(float64(len(update)))
}

func (m *Metrics) Failed(
	_ context.Context,
	err error,
) {
	metrics.UpdateFailuresTotal.WithLabelValues(FailureReason(err)).Inc()
}

func FailureReason(err error) string {
	if errors.Is(err, common.ErrParse) {
		return ReasonParse
	}

	return ReasonInternal
}
