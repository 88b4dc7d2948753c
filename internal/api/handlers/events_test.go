package handlers_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"coach-planner-backend/internal/api/handlers"
	"coach-planner-backend/internal/service"
	"coach-planner-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readEvent returns the next "event:" name from the stream
func readEvent(t *testing.T, lines chan string) string {
	t.Helper()
	for {
		select {
		case line, ok := <-lines:
			require.True(t, ok, "stream closed")
			if name, found := strings.CutPrefix(line, "event:"); found {
				return strings.TrimSpace(name)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for event")
			return ""
		}
	}
}

func openStream(t *testing.T, notifier *service.Notifier, heartbeat time.Duration) (chan string, context.CancelFunc) {
	t.Helper()

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/v1/events", handlers.NewEventsHandler(notifier, heartbeat).Stream)
	server := httptest.NewServer(httpSuite.Router)
	t.Cleanup(server.Close)

	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/v1/events", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines, cancel
}

func TestEventsHandler_StateChanged(t *testing.T) {
	notifier := service.NewNotifier()
	lines, cancel := openStream(t, notifier, time.Hour)
	defer cancel()

	assert.Equal(t, "ready", readEvent(t, lines))
	assert.Equal(t, 1, notifier.Len())

	notifier.Publish()
	assert.Equal(t, handlers.StateChangedEvent, readEvent(t, lines))

	notifier.Publish()
	assert.Equal(t, handlers.StateChangedEvent, readEvent(t, lines))
}

func TestEventsHandler_Heartbeat(t *testing.T) {
	notifier := service.NewNotifier()
	lines, cancel := openStream(t, notifier, 20*time.Millisecond)
	defer cancel()

	assert.Equal(t, "ready", readEvent(t, lines))
	assert.Equal(t, "ping", readEvent(t, lines))
}

func TestEventsHandler_UnsubscribesOnDisconnect(t *testing.T) {
	notifier := service.NewNotifier()
	lines, cancel := openStream(t, notifier, time.Hour)

	assert.Equal(t, "ready", readEvent(t, lines))
	cancel()

	assert.Eventually(t, func() bool { return notifier.Len() == 0 }, 5*time.Second, 10*time.Millisecond)
}
