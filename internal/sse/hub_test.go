package sse

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/event"
)

const waitFor = time.Second

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case ev, ok := <-c.EventChannel:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(waitFor):
		t.Fatal("no event received")
		return Event{}
	}
}

func assertNothing(t *testing.T, c *Client) {
	t.Helper()
	select {
	case ev := <-c.EventChannel:
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, waitFor, 5*time.Millisecond)
}

func TestHub_RoutesByProfile(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	alice := h.Register("alice", nil)
	bob := h.Register("bob", nil)
	waitForClients(t, h, 2)

	h.Broadcast("alice", "garden.plant_planted", map[string]int{"slot": 3})

	ev := receive(t, alice)
	assert.Equal(t, "garden.plant_planted", ev.Type)
	assert.Equal(t, "alice", ev.ProfileID)
	assert.NotEmpty(t, ev.ID)
	assertNothing(t, bob)
}

func TestHub_TypeFilter(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	c := h.Register("alice", []string{"mail"})
	waitForClients(t, h, 1)

	h.Broadcast("alice", "visitor", nil)
	h.Broadcast("alice", "mail", nil)

	assert.Equal(t, "mail", receive(t, c).Type)
	assertNothing(t, c)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	c := h.Register("alice", nil)
	waitForClients(t, h, 1)

	h.Unregister(c.ID)
	waitForClients(t, h, 0)
	_, ok := <-c.EventChannel
	assert.False(t, ok)
}

func TestHub_StopClosesClientsAndRejectsNew(t *testing.T) {
	h := NewHub()
	h.Start()

	c := h.Register("alice", nil)
	waitForClients(t, h, 1)

	h.Stop()
	h.Stop()

	_, ok := <-c.EventChannel
	assert.False(t, ok)
	assert.Zero(t, h.ClientCount())

	late := h.Register("bob", nil)
	_, ok = <-late.EventChannel
	assert.False(t, ok)

	assert.NotPanics(t, func() { h.Unregister(late.ID) })
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "e1", Type: "mail", ProfileID: "alice", Timestamp: 10})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: e1\nevent: mail\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "}\n\n"))
	assert.Contains(t, s, `"profileId":"alice"`)
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(h, bus).Subscribe()

	c := h.Register("alice", nil)
	waitForClients(t, h, 1)

	payload := event.MailPayloadV1{MailID: "welcome", Title: "Welcome"}
	require.NoError(t, bus.Publish(context.Background(), event.New(event.MailReceived, "alice", payload)))

	ev := receive(t, c)
	assert.Equal(t, domain.EventTypeMailReceived, ev.Type)
	assert.Equal(t, payload, ev.Payload)

	// Events without a profile are not streamed
	require.NoError(t, bus.Publish(context.Background(), event.Event{Type: event.MailReceived}))
	assertNothing(t, c)
}

func TestHandler_StreamsProfileEvents(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	resolve := func(r *http.Request) (string, error) {
		if p := r.URL.Query().Get(QueryParamProfile); p != "" {
			return p, nil
		}
		return "", errors.New("profile required")
	}
	srv := httptest.NewServer(Handler(h, resolve))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?profile=alice&types=mail", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := bufio.NewScanner(resp.Body)
	readEvent := func() string {
		for lines.Scan() {
			if name, ok := strings.CutPrefix(lines.Text(), "event: "); ok {
				return name
			}
		}
		return ""
	}

	assert.Equal(t, EventTypeConnected, readEvent())
	waitForClients(t, h, 1)

	h.Broadcast("bob", "mail", nil)
	h.Broadcast("alice", "mail", nil)
	assert.Equal(t, "mail", readEvent())
}
