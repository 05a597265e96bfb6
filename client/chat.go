package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/lifeforge-dev/lifeforge/shared/api"
	"github.com/lifeforge-dev/lifeforge/shared/domain"
	internal_errors "github.com/lifeforge-dev/lifeforge/shared/errors"
)

const defaultChatTimeout = 30 * time.Second

// Fixed user-facing messages for the streaming path. The rate-limit
// advisory deliberately replaces the server's raw detail text.
const (
	rateLimitAdvisory     = "AI rate limit reached. Please wait a moment and try again."
	chatTimeoutMessage    = "The AI companion took too long to respond. Please try again."
	streamUnavailableText = "Streaming is not supported by this connection."
)

// StreamChat sends the conversation to the AI companion and delivers the
// response incrementally: each decoded text fragment is passed to fn in
// arrival order, never buffered until completion. A timeout is armed at
// send time and disarmed the moment the response starts arriving; if it
// fires first the in-flight request is aborted, not just ignored. If fn
// returns an error the stream is abandoned and that error is returned.
func (c *Client) StreamChat(ctx context.Context, req api.ChatRequest, fn func(chunk string) error) error {
	if err := api.Validate(req); err != nil {
		return err
	}

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var timedOut atomic.Bool
	timer := time.AfterFunc(c.chatTimeout, func() {
		timedOut.Store(true)
		cancel()
	})

	resp, err := c.do(streamCtx, http.MethodPost, "/ai/chat", req, nil)
	timer.Stop()
	if err != nil {
		if timedOut.Load() {
			return &internal_errors.Error{Kind: internal_errors.Timeout, Message: chatTimeoutMessage, Err: err}
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &internal_errors.Error{
			Kind:       internal_errors.RateLimit,
			Message:    rateLimitAdvisory,
			StatusCode: resp.StatusCode,
		}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}
	if resp.Body == nil || resp.Body == http.NoBody {
		return &internal_errors.Error{Kind: internal_errors.StreamUnavailable, Message: streamUnavailableText}
	}

	return streamBody(resp.Body, &timedOut, fn)
}

// streamBody drains r chunk by chunk, splitting reads on rune boundaries
// so a multi-byte UTF-8 sequence is never delivered torn across two
// callback invocations.
func streamBody(r io.Reader, timedOut *atomic.Bool, fn func(chunk string) error) error {
	buf := make([]byte, 4096)
	var pending []byte
	for {
		n, err := r.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			complete, rest := splitRunes(pending)
			if len(complete) > 0 {
				if cbErr := fn(string(complete)); cbErr != nil {
					return cbErr
				}
			}
			pending = append(pending[:0], rest...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(pending) > 0 {
					return fn(string(pending))
				}
				return nil
			}
			if timedOut.Load() {
				return &internal_errors.Error{Kind: internal_errors.Timeout, Message: chatTimeoutMessage, Err: err}
			}
			return &internal_errors.Error{
				Kind:    internal_errors.Transport,
				Message: "stream interrupted: " + err.Error(),
				Err:     err,
			}
		}
	}
}

// splitRunes cuts b before any trailing incomplete UTF-8 sequence.
func splitRunes(b []byte) (complete, rest []byte) {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if utf8.FullRune(b[i:]) {
				return b, nil
			}
			return b[:i], b[i:]
		}
	}
	return b, nil
}

// StreamChatAsync is the fire-and-forget adapter over StreamChat for UI
// callers. onDone fires exactly once after the stream is fully drained
// and never fires when onError already has.
func (c *Client) StreamChatAsync(messages []domain.ChatMessage, isUrgent bool, onChunk func(string), onDone func(), onError func(error)) {
	go func() {
		err := c.StreamChat(context.Background(), api.ChatRequest{Messages: messages, IsUrgent: isUrgent}, func(chunk string) error {
			onChunk(chunk)
			return nil
		})
		if err != nil {
			onError(err)
			return
		}
		onDone()
	}()
}

// ChatSync is the non-streaming fallback endpoint; it follows the plain
// executor conventions, including the generic error normalization.
func (c *Client) ChatSync(ctx context.Context, req api.ChatRequest) (*api.ChatSyncResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.ChatSyncResponse
	if err := c.doJSON(ctx, http.MethodPost, "/ai/chat/sync", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
