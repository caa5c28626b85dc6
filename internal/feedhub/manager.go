// Package feedhub fans complaint feed events out to live WebSocket
// subscribers. Events arrive over Redis Pub/Sub so every server instance
// sees creations and status changes made anywhere.
package feedhub

import (
	"encoding/json"
	"log"

	"greensentinel/backend/internal/models"
	"greensentinel/backend/internal/storage"
)

// Manager keeps the set of connected feed clients and routes events to
// them. All client set mutations go through the channels and happen on the
// Run goroutine; nothing else touches Clients concurrently.
type Manager struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	BroadcastCh  chan models.ComplaintEvent

	Storage *storage.Service
}

// NewManager creates a hub. Storage may be nil in tests; the Pub/Sub
// listener is only started when it is present.
func NewManager(s *storage.Service) *Manager {
	return &Manager{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		BroadcastCh:  make(chan models.ComplaintEvent),
		Storage:      s,
	}
}

// startPubSubListener forwards Redis feed events into BroadcastCh.
func (m *Manager) startPubSubListener() {
	pubsub := m.Storage.SubscribeComplaintEvents()
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var event models.ComplaintEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("Error unmarshalling feed event: %v", err)
			continue
		}
		m.BroadcastCh <- event
	}
}

// Run is the hub's dispatcher loop. Meant to run as a goroutine for the
// lifetime of the process.
func (m *Manager) Run() {
	if m.Storage != nil {
		go m.startPubSubListener()
	}

	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client.GetUserID()] = client
			log.Printf("Feed client registered: %s (%d connected)", client.GetUserID(), len(m.Clients))

		case client := <-m.UnregisterCh:
			if _, ok := m.Clients[client.GetUserID()]; ok {
				delete(m.Clients, client.GetUserID())
				client.Close()
			}

		case event := <-m.BroadcastCh:
			for uid, client := range m.Clients {
				select {
				case client.GetSendChannel() <- event:
				default:
					// Slow consumer: drop it rather than stall the feed.
					delete(m.Clients, uid)
					client.Close()
				}
			}
		}
	}
}
