package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/codevai-team/codev-bot/pkg/common"
)

const (
	DefaultMaxBodyBytes = int64(1 << 20)

	bodyOK                  = "OK"
	bodyMethodNotAllowed    = "Method not allowed"
	bodyInternalServerError = "Internal Server Error"
)

type Endpoint struct {
	observer     Observer
	maxBodyBytes int64
}

func NewEndpoint(
	observer Observer,
) *Endpoint {
	if observer == nil {
		observer = NopObserver{}
	}

	return &Endpoint{
		observer:     observer,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
}

// WithMaxBodyBytes caps the request body read by ServeHTTP. Zero or negative disables the cap.
func (e *Endpoint) WithMaxBodyBytes(limit int64) *Endpoint {
	e.maxBodyBytes = limit
	return e
}

// Handle maps a single request to its terminal response. It keeps no state
// between calls and is safe for concurrent use.
func (e *Endpoint) Handle(
	ctx context.Context,
	method string,
	body []byte,
) (resp Response, state State) {
	if method != http.MethodPost {
		return Response{
			StatusCode: http.StatusMethodNotAllowed,
			Body:       bodyMethodNotAllowed,
		}, StateMethodRejected
	}

	defer func() {
		if rec := recover(); rec != nil {
			e.fail(ctx, errors.Mark(errors.Newf("panic while processing update: %v", rec), common.ErrInternal))
			resp, state = internalServerError(), StateParseFailed
		}
	}()

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		e.fail(ctx, errors.Mark(errors.Wrap(err, "decode update"), common.ErrParse))
		return internalServerError(), StateParseFailed
	}

	update := InboundUpdate(raw)
	e.observer.Received(ctx, update, Summarize(update))

	return Response{
		StatusCode: http.StatusOK,
		Body:       bodyOK,
	}, StateAcknowledged
}

func (e *Endpoint) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		resp, _ := e.Handle(ctx, r.Method, nil)
		writeResponse(w, resp)
		return
	}

	var reader io.Reader = r.Body
	if e.maxBodyBytes > 0 {
		reader = http.MaxBytesReader(w, r.Body, e.maxBodyBytes)
	}

	b, err := io.ReadAll(reader)
	if err != nil {
		e.fail(ctx, errors.Mark(errors.Wrap(err, "read request body"), common.ErrInternal))
		writeResponse(w, internalServerError())
		return
	}

	resp, _ := e.Handle(ctx, r.Method, b)
	writeResponse(w, resp)
}

// fail reports err to the observer. Observer panics are swallowed.
func (e *Endpoint) fail(ctx context.Context, err error) {
	defer func() {
		_ = recover()
	}()

	e.observer.Failed(ctx, err)
}

func internalServerError() Response {
	return Response{
		StatusCode: http.StatusInternalServerError,
		Body:       bodyInternalServerError,
	}
}

func writeResponse(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write([]byte(resp.Body))
}

type NopObserver struct{}

func (NopObserver) Received(context.Context, InboundUpdate, Summary) {}

func (NopObserver) Failed(context.Context, error) {}
