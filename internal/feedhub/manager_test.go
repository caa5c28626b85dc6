package feedhub_test

import (
	"sync"
	"testing"
	"time"

	"greensentinel/backend/internal/feedhub"
	"greensentinel/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

// fakeClient is an in-memory feed subscriber for hub tests.
type fakeClient struct {
	userID string
	send   chan models.ComplaintEvent

	mu     sync.Mutex
	closed bool
}

func newFakeClient(uid string, buffer int) *fakeClient {
	return &fakeClient{
		userID: uid,
		send:   make(chan models.ComplaintEvent, buffer),
	}
}

func (c *fakeClient) GetUserID() string { return c.userID }

func (c *fakeClient) GetSendChannel() chan<- models.ComplaintEvent { return c.send }

func (c *fakeClient) Run() {}

func (c *fakeClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *fakeClient) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *fakeClient) receive(t *testing.T) models.ComplaintEvent {
	t.Helper()
	select {
	case event := <-c.send:
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for feed event")
		return models.ComplaintEvent{}
	}
}

func (c *fakeClient) expectNothing(t *testing.T) {
	t.Helper()
	select {
	case event := <-c.send:
		t.Fatalf("unexpected feed event: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestManager_BroadcastReachesRegisteredClients(t *testing.T) {
	// Arrange
	hub := feedhub.NewManager(nil)
	go hub.Run()

	alice := newFakeClient("alice", 8)
	bob := newFakeClient("bob", 8)
	hub.RegisterCh <- alice
	hub.RegisterCh <- bob

	event := models.ComplaintEvent{
		Kind:        models.EventComplaintCreated,
		ComplaintID: "c1",
		Region:      "Kochi",
	}

	// Act
	hub.BroadcastCh <- event

	// Assert
	assert.Equal(t, event, alice.receive(t))
	assert.Equal(t, event, bob.receive(t))
}

func TestManager_UnregisteredClientStopsReceiving(t *testing.T) {
	hub := feedhub.NewManager(nil)
	go hub.Run()

	alice := newFakeClient("alice", 8)
	bob := newFakeClient("bob", 8)
	hub.RegisterCh <- alice
	hub.RegisterCh <- bob

	hub.UnregisterCh <- alice
	hub.BroadcastCh <- models.ComplaintEvent{Kind: models.EventStatusChanged, ComplaintID: "c1"}

	// Bob still gets the event; Alice is gone and closed.
	bob.receive(t)
	alice.expectNothing(t)
	assert.True(t, alice.isClosed())
	assert.False(t, bob.isClosed())
}

// TestManager_SlowClientIsDropped: a subscriber whose send buffer is full
// must not stall the feed; the hub evicts it instead.
func TestManager_SlowClientIsDropped(t *testing.T) {
	hub := feedhub.NewManager(nil)
	go hub.Run()

	slow := newFakeClient("slow", 1)
	fast := newFakeClient("fast", 8)
	hub.RegisterCh <- slow
	hub.RegisterCh <- fast

	// First event fills slow's single-slot buffer; the second overflows it.
	hub.BroadcastCh <- models.ComplaintEvent{ComplaintID: "c1"}
	hub.BroadcastCh <- models.ComplaintEvent{ComplaintID: "c2"}
	hub.BroadcastCh <- models.ComplaintEvent{ComplaintID: "c3"}

	assert.Equal(t, "c1", fast.receive(t).ComplaintID)
	assert.Equal(t, "c2", fast.receive(t).ComplaintID)
	assert.Equal(t, "c3", fast.receive(t).ComplaintID)

	// Slow got the first event, was dropped on the second, and the third
	// never reached it.
	assert.Equal(t, "c1", slow.receive(t).ComplaintID)
	slow.expectNothing(t)
	assert.True(t, slow.isClosed())
}

func TestManager_ReregisterReplacesClient(t *testing.T) {
	hub := feedhub.NewManager(nil)
	go hub.Run()

	first := newFakeClient("alice", 8)
	second := newFakeClient("alice", 8)
	hub.RegisterCh <- first
	hub.RegisterCh <- second

	hub.BroadcastCh <- models.ComplaintEvent{ComplaintID: "c1"}

	second.receive(t)
	first.expectNothing(t)
}
