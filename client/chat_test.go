package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeforge-dev/lifeforge/session"
	"github.com/lifeforge-dev/lifeforge/shared/api"
	"github.com/lifeforge-dev/lifeforge/shared/domain"
	internal_errors "github.com/lifeforge-dev/lifeforge/shared/errors"
)

func chatReq() api.ChatRequest {
	return api.ChatRequest{
		Messages: []domain.ChatMessage{{Role: domain.ChatRoleUser, Content: "Can I donate platelets twice a month?"}},
	}
}

func TestStreamChatChunkOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ai/chat", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		flusher := w.(http.Flusher)
		for _, part := range []string{"ab", "cd", "ef"} {
			fmt.Fprint(w, part)
			flusher.Flush()
			time.Sleep(10 * time.Millisecond)
		}
	}))
	defer server.Close()

	c := New(server.URL, session.NewMemory())
	var chunks []string
	err := c.StreamChat(context.Background(), chatReq(), func(chunk string) error {
		chunks = append(chunks, chunk)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "cd", "ef"}, chunks)
}

func TestStreamChatTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server notices the client's abort, then
		// never respond.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	c := New(server.URL, session.NewMemory(), WithChatTimeout(50*time.Millisecond))
	var chunks int
	err := c.StreamChat(context.Background(), chatReq(), func(string) error {
		chunks++
		return nil
	})
	require.Error(t, err)
	assert.True(t, internal_errors.IsKind(err, internal_errors.Timeout))
	assert.Equal(t, chatTimeoutMessage, err.Error())
	assert.Equal(t, 0, chunks)
}

func TestStreamChatTimerDisarmedAfterResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		fmt.Fprint(w, "first")
		flusher.Flush()
		// Longer than the armed timeout; must not abort a live stream.
		time.Sleep(120 * time.Millisecond)
		fmt.Fprint(w, " second")
	}))
	defer server.Close()

	c := New(server.URL, session.NewMemory(), WithChatTimeout(50*time.Millisecond))
	var got string
	err := c.StreamChat(context.Background(), chatReq(), func(chunk string) error {
		got += chunk
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "first second", got)
}

func TestStreamChatRateLimitAdvisory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"detail":"Requests per minute exceeded on llama-3.3-70b-versatile"}`)
	}))
	defer server.Close()

	c := New(server.URL, session.NewMemory())
	err := c.StreamChat(context.Background(), chatReq(), func(string) error {
		t.Fatal("no chunk expected")
		return nil
	})
	require.Error(t, err)
	assert.True(t, internal_errors.IsKind(err, internal_errors.RateLimit))
	// Fixed advisory, never the server's raw detail.
	assert.Equal(t, rateLimitAdvisory, err.Error())
}

func TestStreamChatErrorDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"detail":"AI service not configured. Set GROQ_API_KEY in your .env file."}`)
	}))
	defer server.Close()

	c := New(server.URL, session.NewMemory())
	err := c.StreamChat(context.Background(), chatReq(), func(string) error { return nil })
	require.Error(t, err)
	assert.True(t, internal_errors.IsKind(err, internal_errors.HTTPStatus))
	assert.Contains(t, err.Error(), "AI service not configured")
}

type noBodyTransport struct{}

func (noBodyTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     make(http.Header),
		Body:       http.NoBody,
		Request:    r,
	}, nil
}

func TestStreamChatUnavailable(t *testing.T) {
	c := New("http://backend", session.NewMemory(), WithHTTPClient(&http.Client{Transport: noBodyTransport{}}))
	err := c.StreamChat(context.Background(), chatReq(), func(string) error {
		t.Fatal("no chunk expected")
		return nil
	})
	require.Error(t, err)
	assert.True(t, internal_errors.IsKind(err, internal_errors.StreamUnavailable))
}

func TestStreamChatAsyncLifecycle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		fmt.Fprint(w, "hello")
		flusher.Flush()
		fmt.Fprint(w, " donor")
	}))
	defer server.Close()

	c := New(server.URL, session.NewMemory())

	var got string
	done := make(chan struct{})
	c.StreamChatAsync(
		[]domain.ChatMessage{{Role: domain.ChatRoleUser, Content: "hi"}},
		false,
		func(chunk string) { got += chunk },
		func() { close(done) },
		func(err error) { t.Errorf("unexpected error: %v", err) },
	)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("onDone never fired")
	}
	assert.Equal(t, "hello donor", got)
}

func TestStreamChatAsyncErrorSuppressesDone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := New(server.URL, session.NewMemory())

	errCh := make(chan error, 1)
	c.StreamChatAsync(
		[]domain.ChatMessage{{Role: domain.ChatRoleUser, Content: "hi"}},
		true,
		func(string) { t.Error("no chunk expected") },
		func() { t.Error("onDone must not fire after onError") },
		func(err error) { errCh <- err },
	)

	select {
	case err := <-errCh:
		assert.Equal(t, rateLimitAdvisory, err.Error())
	case <-time.After(5 * time.Second):
		t.Fatal("onError never fired")
	}
	// Give a wrongly scheduled onDone a chance to show up.
	time.Sleep(50 * time.Millisecond)
}

func TestStreamChatValidatesRequest(t *testing.T) {
	c := New("http://backend", session.NewMemory())
	err := c.StreamChat(context.Background(), api.ChatRequest{}, func(string) error { return nil })
	require.Error(t, err)
	assert.True(t, internal_errors.IsKind(err, internal_errors.HTTPStatus))
}

func TestSplitRunesKeepsMultibyteWhole(t *testing.T) {
	full := []byte("नमस्ते") // 18 bytes of Devanagari
	complete, rest := splitRunes(full[:4])
	assert.Equal(t, full[:3], complete)
	assert.Equal(t, full[3:4], rest)

	complete, rest = splitRunes(full)
	assert.Equal(t, full, complete)
	assert.Empty(t, rest)

	complete, rest = splitRunes([]byte("ascii"))
	assert.Equal(t, []byte("ascii"), complete)
	assert.Empty(t, rest)
}

func TestChatSync(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ai/chat/sync", r.URL.Path)
		fmt.Fprint(w, `{"reply":"Yes, with a two week gap between sessions."}`)
	}))
	defer server.Close()

	c := New(server.URL, session.NewMemory())
	resp, err := c.ChatSync(context.Background(), chatReq())
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "two week gap")
}
