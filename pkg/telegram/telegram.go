package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
)

const DefaultAPIURL = "https://api.telegram.org"

var (
	ErrAPI          = errors.New("telegram api error")
	ErrEmptyURL     = errors.New("webhook url is empty")
	ErrNotConfirmed = errors.New("telegram did not confirm the change")
)

// Client manages the webhook registration of a bot. It does not send messages.
type Client struct {
	client   *req.Client
	apiURL   string
	apiToken string
}

func NewClient(
	apiURL string,
	apiToken string,
	cl *req.Client,
) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	return &Client{
		client:   cl,
		apiURL:   strings.TrimRight(apiURL, "/"),
		apiToken: apiToken,
	}
}

func (c *Client) SetWebhook(
	ctx context.Context,
	request SetWebhookRequest,
) error {
	if request.URL == "" {
		return ErrEmptyURL
	}

	result, err := call[bool](ctx, c, http.MethodPost, "setWebhook", request)
	if err != nil {
		return err
	}

	if !result {
		return errors.Wrap(ErrNotConfirmed, "setWebhook")
	}

	return nil
}

func (c *Client) GetWebhookInfo(
	ctx context.Context,
) (*WebhookInfo, error) {
	info, err := call[WebhookInfo](ctx, c, http.MethodGet, "getWebhookInfo", nil)
	if err != nil {
		return nil, err
	}

	return &info, nil
}

func (c *Client) DeleteWebhook(
	ctx context.Context,
	dropPendingUpdates bool,
) error {
	result, err := call[bool](ctx, c, http.MethodPost, "deleteWebhook", map[string]interface{}{
		"drop_pending_updates": dropPendingUpdates,
	})
	if err != nil {
		return err
	}

	if !result {
		return errors.Wrap(ErrNotConfirmed, "deleteWebhook")
	}

	return nil
}

func call[T any](
	ctx context.Context,
	c *Client,
	httpMethod string,
	method string,
	body interface{},
) (T, error) {
	var apiResp apiResponse[T]

	request := c.client.R().
		SetContext(ctx).
		SetSuccessResult(&apiResp).
		SetErrorResult(&apiResp)

	if body != nil {
		request = request.SetBody(body)
	}

	resp, err := request.Send(httpMethod, c.methodURL(method))
	if err != nil {
		return apiResp.Result, errors.Wrapf(err, "failed to call %s", method)
	}

	if resp.IsErrorState() || !apiResp.Ok {
		description := apiResp.Description
		if description == "" {
			description = resp.String()
		}

		return apiResp.Result, errors.Wrapf(ErrAPI, "%s: status %d: %s", method, resp.StatusCode, description)
	}

	return apiResp.Result, nil
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.apiURL, c.apiToken, method)
}
