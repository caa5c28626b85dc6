package handler

import (
	"greensentinel/backend/internal/auth"
	"greensentinel/backend/internal/complaint"
	"greensentinel/backend/internal/feedhub"
	"greensentinel/backend/internal/storage"
)

// Handler groups the HTTP endpoints and their dependencies.
type Handler struct {
	Storage    storage.Storage
	Complaints *complaint.Service
	Auth       *auth.Manager
	Hub        *feedhub.Manager

	// BaseURL prefixes the verification links put into signup emails.
	BaseURL string
}

func NewHandler(s storage.Storage, c *complaint.Service, a *auth.Manager, hub *feedhub.Manager, baseURL string) *Handler {
	return &Handler{
		Storage:    s,
		Complaints: c,
		Auth:       a,
		Hub:        hub,
		BaseURL:    baseURL,
	}
}
