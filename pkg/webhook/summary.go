package webhook

import (
	"encoding/json"
)

// Summarize extracts a Summary from the update. It never fails: payloads that
// are not Telegram update objects yield a Summary of KindUnknown.
func Summarize(update InboundUpdate) Summary {
	var tg telegramUpdate

	if err := json.Unmarshal(update, &tg); err != nil {
		return Summary{Kind: KindUnknown}
	}

	summary := Summary{
		UpdateID: tg.UpdateID,
		Kind:     KindUnknown,
	}

	switch {
	case tg.Message != nil:
		summary.Kind = KindMessage
		summary.fromMessage(tg.Message)
	case tg.EditedMessage != nil:
		summary.Kind = KindEditedMessage
		summary.fromMessage(tg.EditedMessage)
	case tg.ChannelPost != nil:
		summary.Kind = KindChannelPost
		summary.fromMessage(tg.ChannelPost)
	case tg.EditedChannelPost != nil:
		summary.Kind = KindEditedChannelPost
		summary.fromMessage(tg.EditedChannelPost)
	case tg.CallbackQuery != nil:
		summary.Kind = KindCallbackQuery
		if tg.CallbackQuery.Message != nil {
			summary.fromMessage(tg.CallbackQuery.Message)
		}
	case tg.InlineQuery != nil:
		summary.Kind = KindInlineQuery
	case tg.MyChatMember != nil:
		summary.Kind = KindMyChatMember
		summary.ChatID = tg.MyChatMember.Chat.Id
	case tg.ChatMember != nil:
		summary.Kind = KindChatMember
		summary.ChatID = tg.ChatMember.Chat.Id
	}

	return summary
}

func (s *Summary) fromMessage(msg *message) {
	s.ChatID = msg.Chat.Id
	s.MessageID = msg.MessageID
}
