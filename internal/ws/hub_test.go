package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"zabudowy-service/internal/domain/contact"

	"go.uber.org/zap"
)

func runHub(t *testing.T) (*Hub, context.CancelFunc, chan struct{}) {
	t.Helper()
	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	return hub, cancel, stopped
}

func recvEvent(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case raw, ok := <-c.send:
		if !ok {
			t.Fatal("send channel closed before event arrived")
		}
		var ev Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			t.Fatalf("bad event payload: %v", err)
		}
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestNotifyNewMessageReachesClients(t *testing.T) {
	hub, cancel, stopped := runHub(t)
	defer func() {
		cancel()
		<-stopped
	}()

	client := NewClient(hub, nil, "admin-1")
	hub.register <- client

	if ev := recvEvent(t, client); ev.Type != EventConnected {
		t.Fatalf("first event = %q, want %q", ev.Type, EventConnected)
	}

	hub.NotifyNewMessage(contact.Message{ID: "m1", Name: "Jan", Message: "dzien dobry"})

	if ev := recvEvent(t, client); ev.Type != EventNewMessage {
		t.Fatalf("event = %q, want %q", ev.Type, EventNewMessage)
	}
}

func TestShutdownClosesConnectedClients(t *testing.T) {
	hub, cancel, stopped := runHub(t)

	client := NewClient(hub, nil, "admin-1")
	hub.register <- client
	recvEvent(t, client)

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop after context cancellation")
	}

	select {
	case _, ok := <-client.send:
		if ok {
			t.Fatal("expected send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel still open after shutdown")
	}

	if got := hub.ConnectedClients(); got != 0 {
		t.Fatalf("connected clients after shutdown = %d, want 0", got)
	}
}

func TestAttachAfterShutdownDoesNotBlock(t *testing.T) {
	hub, cancel, stopped := runHub(t)
	cancel()
	<-stopped

	attached := make(chan bool, 1)
	go func() {
		attached <- NewClient(hub, nil, "admin-2").Attach()
	}()

	select {
	case ok := <-attached:
		if ok {
			t.Fatal("Attach succeeded against a stopped hub")
		}
	case <-time.After(time.Second):
		t.Fatal("Attach blocked against a stopped hub")
	}
}
