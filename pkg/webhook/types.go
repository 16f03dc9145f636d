package webhook

import (
	"encoding/json"

	"github.com/codevai-team/codev-bot/pkg/common"
)

// InboundUpdate is the raw JSON payload of a single webhook call.
type InboundUpdate json.RawMessage

type Response struct {
	StatusCode int
	Body       string
}

type State int32

const (
	StateAcknowledged   = State(0)
	StateMethodRejected = State(1)
	StateParseFailed    = State(2)
)

func (s State) String() string {
	switch s {
	case StateAcknowledged:
		return "acknowledged"
	case StateMethodRejected:
		return "method_rejected"
	case StateParseFailed:
		return "parse_failed"
	default:
		return "unknown"
	}
}

// Err maps a terminal state to its error kind; nil for StateAcknowledged.
func (s State) Err() error {
	switch s {
	case StateAcknowledged:
		return nil
	case StateMethodRejected:
		return common.ErrMethodNotAllowed
	default:
		return common.ErrParse
	}
}

type UpdateKind string

const (
	KindUnknown           = UpdateKind("unknown")
	KindMessage           = UpdateKind("message")
	KindEditedMessage     = UpdateKind("edited_message")
	KindChannelPost       = UpdateKind("channel_post")
	KindEditedChannelPost = UpdateKind("edited_channel_post")
	KindCallbackQuery     = UpdateKind("callback_query")
	KindInlineQuery       = UpdateKind("inline_query")
	KindMyChatMember      = UpdateKind("my_chat_member")
	KindChatMember        = UpdateKind("chat_member")
)

// Summary holds the well-known Telegram fields of an update, if present.
// Zero values mean the field was missing or the payload is not an update object.
type Summary struct {
	UpdateID  int64
	ChatID    int64
	MessageID int64
	Kind      UpdateKind
}

type telegramUpdate struct {
	UpdateID          int64          `json:"update_id"`
	Message           *message       `json:"message"`
	EditedMessage     *message       `json:"edited_message"`
	ChannelPost       *message       `json:"channel_post"`
	EditedChannelPost *message       `json:"edited_channel_post"`
	CallbackQuery     *callbackQuery `json:"callback_query"`
	InlineQuery       *inlineQuery   `json:"inline_query"`
	MyChatMember      *memberUpdate  `json:"my_chat_member"`
	ChatMember        *memberUpdate  `json:"chat_member"`
}

type message struct {
	MessageID int64 `json:"message_id"`
	Chat      chat  `json:"chat"`
}

type chat struct {
	Id int64 `json:"id"`
}

type callbackQuery struct {
	Id      string   `json:"id"`
	Message *message `json:"message"`
}

type inlineQuery struct {
	Id string `json:"id"`
}

type memberUpdate struct {
	Chat chat `json:"chat"`
}
