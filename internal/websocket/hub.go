// internal/websocket/hub.go
package websocket

import (
	"context"
	"encoding/json"
	"sync"

	xerrors "gymflow-service/internal/pkg/errors"
	"gymflow-service/internal/pkg/jwt"
	"gymflow-service/internal/pkg/session"

	"go.uber.org/zap"
)

// Hub fans admitted check-ins out to connected staff dashboards. Every
// connected client receives every event; there is no per-channel routing.
type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	verifier   *jwt.Verifier
	revocation *session.RevocationList
	logger     *zap.Logger
}

func NewHub(verifier *jwt.Verifier, revocation *session.RevocationList, logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		verifier:   verifier,
		revocation: revocation,
		logger:     logger,
	}
}

// Authenticate validates the presented token and returns its claims
func (h *Hub) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := h.verifier.Verify(token)
	if err != nil {
		return nil, err
	}

	revoked, err := h.revocation.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, xerrors.ErrTokenRevoked
	}

	return claims, nil
}

// Broadcast queues an event for every connected client. Marshal failures are
// logged and dropped; the feed is best-effort.
func (h *Hub) Broadcast(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Warn("failed to marshal feed event", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn("feed buffer full, dropping event")
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case data := <-h.broadcast:
			h.broadcastToAll(data)
		}
	}
}

// TotalClients reports how many dashboards are connected
func (h *Hub) TotalClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	h.logger.Info("feed client connected",
		zap.Int64("user_id", client.userID),
		zap.Int("total", len(h.clients)))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		client.Close()
		h.logger.Info("feed client disconnected",
			zap.Int64("user_id", client.userID),
			zap.Int("total", len(h.clients)))
	}
}

func (h *Hub) broadcastToAll(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		client.Send(data)
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Close()
	}
	h.clients = make(map[*Client]bool)
}
