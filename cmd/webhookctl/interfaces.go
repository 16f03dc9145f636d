package main

import (
	"context"

	"github.com/codevai-team/codev-bot/pkg/telegram"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package main -source=interfaces.go

type WebhookAdmin interface {
	SetWebhook(ctx context.Context, request telegram.SetWebhookRequest) error
	GetWebhookInfo(ctx context.Context) (*telegram.WebhookInfo, error)
	DeleteWebhook(ctx context.Context, dropPendingUpdates bool) error
}
