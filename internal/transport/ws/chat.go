// Package ws runs the interactive chat socket. Each connection is an
// independent request/response loop: one inbound question frame produces one
// outbound answer frame, with no cross-connection state.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/Maxime-Guy/twigane/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS policy is enforced at the REST layer
	},
}

// Handler handles WebSocket chat connections.
type Handler struct {
	chatSvc *service.ChatService
}

// NewHandler creates a new WebSocket handler.
func NewHandler(chatSvc *service.ChatService) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// chatFrame is one inbound message.
type chatFrame struct {
	Question  string `json:"question"`
	UserEmail string `json:"user_email"`
}

// ChatWS handles GET /v1/ws/chat
func (h *Handler) ChatWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Warn("websocket upgrade failed")
		return
	}
	go h.serve(conn)
}

// serve runs the per-connection loop until the client goes away.
func (h *Handler) serve(conn *websocket.Conn) {
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	// done unblocks the reader's channel send when this loop returns through
	// a write or ping error; closing the conn alone only interrupts reads.
	done := make(chan struct{})
	defer close(done)

	frames := make(chan chatFrame)
	errs := make(chan error, 1)
	go func() {
		for {
			var frame chatFrame
			if err := conn.ReadJSON(&frame); err != nil {
				errs <- err
				return
			}
			select {
			case frames <- frame:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case frame := <-frames:
			resp := h.chatSvc.Ask(context.Background(), frame.UserEmail, frame.Question)
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			payload, err := json.Marshal(resp)
			if err != nil {
				logrus.WithError(err).Warn("failed to encode chat response")
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-errs:
			return
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
