package feedhub

import "greensentinel/backend/internal/models"

// Client is one live feed subscriber. It abstracts the underlying
// connection so the hub can manage WebSocket and test clients uniformly.
type Client interface {
	// GetUserID returns the authenticated uid behind the connection.
	GetUserID() string

	// GetSendChannel returns the channel the hub pushes feed events into.
	GetSendChannel() chan<- models.ComplaintEvent

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts the client down and releases its send channel.
	Close()
}
