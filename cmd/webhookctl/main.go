package main

import (
	"os"

	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/codevai-team/codev-bot/pkg/config"
	"github.com/codevai-team/codev-bot/pkg/telegram"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd(newAdmin).Execute(); err != nil {
		log.Fatal().Err(err).Msg("webhookctl failed")
	}
}

func newAdmin() (WebhookAdmin, error) {
	cfg, err := config.Load(".env")
	if err != nil {
		return nil, err
	}

	if err = cfg.RequireBotToken(); err != nil {
		return nil, err
	}

	return telegram.NewClient(cfg.TelegramAPIURL, cfg.BotToken, req.C()), nil
}
