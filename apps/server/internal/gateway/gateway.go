// Package gateway terminates WebSocket connections from the SPA and
// translates JSON envelopes into nexus calls. It owns no game state: the
// session manager holds progression, the nexus service holds the rules.
package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"promptmaster-lite/apps/server/internal/nexus"
	"promptmaster-lite/apps/server/internal/session"
	"promptmaster-lite/content"
	"promptmaster-lite/quest"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: Restrict in production
	},
}

// Connection represents a WebSocket client connection.
type Connection struct {
	ID       string
	Conn     *websocket.Conn
	Send     chan []byte
	Gateway  *Gateway
	LastPing time.Time

	// Bound after a hello frame.
	Player *session.Player
}

// Gateway manages WebSocket connections.
type Gateway struct {
	mu          sync.RWMutex
	connections map[string]*Connection
	nextConnID  uint64
	nextSeq     uint64

	sessions *session.Manager
	nexus    *nexus.Service
}

// New creates a new Gateway instance.
func New(sessions *session.Manager, svc *nexus.Service) *Gateway {
	return &Gateway{
		connections: make(map[string]*Connection),
		sessions:    sessions,
		nexus:       svc,
	}
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (g *Gateway) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Gateway] Upgrade error: %v", err)
		return
	}

	g.mu.Lock()
	g.nextConnID++
	connID := fmt.Sprintf("conn_%d", g.nextConnID)

	c := &Connection{
		ID:       connID,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		Gateway:  g,
		LastPing: time.Now(),
	}
	g.connections[connID] = c
	g.mu.Unlock()

	log.Printf("[Gateway] Client connected: %s, total: %d", connID, len(g.connections))

	go c.readPump()
	go c.writePump()
}

func (c *Connection) readPump() {
	defer func() {
		c.Gateway.removeConnection(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(65536)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		c.LastPing = time.Now()
		return nil
	})

	for {
		messageType, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[Gateway] Read error: %v", err)
			}
			break
		}

		if messageType == websocket.TextMessage {
			c.handleMessage(message)
		}
	}
}

func (c *Connection) handleMessage(data []byte) {
	var env ClientEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Printf("[Gateway] Failed to unmarshal: %v", err)
		c.sendError(CodeBadMessage, "invalid message format")
		return
	}

	switch env.Type {
	case ClientHello:
		c.handleHello(&env)
	case ClientSelectPersona:
		c.handleSelectPersona(&env)
	case ClientListQuests:
		c.send(&ServerEnvelope{Type: ServerQuestList, Quests: c.Gateway.nexus.Quests()})
	case ClientListPersonas:
		c.send(&ServerEnvelope{Type: ServerPersonaList, Personas: c.Gateway.nexus.Personas()})
	case ClientListGear:
		c.handleListGear()
	case ClientProfile:
		c.handleProfile()
	case ClientSubmit:
		c.handleSubmit(&env)
	default:
		log.Printf("[Gateway] Unknown message type: %q", env.Type)
		c.sendError(CodeBadMessage, "unknown message type")
	}
}

// handleHello binds the connection to a session, reusing the client's token
// when it is still valid. A page refresh keeps its XP; a cold start gets a
// fresh cadet.
func (c *Connection) handleHello(env *ClientEnvelope) {
	player, reused := c.Gateway.sessions.ResolveOrIssue(env.Token)
	c.Player = player

	log.Printf("[Gateway] Hello from %s: session %s (reused=%v)", c.ID, player.Token[:8], reused)

	snap := player.Progress.Snapshot()
	c.send(&ServerEnvelope{Type: ServerWelcome, Token: player.Token, Profile: &snap})
}

func (c *Connection) handleSelectPersona(env *ClientEnvelope) {
	if c.Player == nil {
		c.sendError(CodeNoSession, "hello required first")
		return
	}
	if _, err := c.Gateway.nexus.SelectPersona(c.Player.Progress, env.PersonaID); err != nil {
		c.sendError(CodeUnknownEntity, err.Error())
		return
	}
	snap := c.Player.Progress.Snapshot()
	c.send(&ServerEnvelope{Type: ServerProfile, Profile: &snap})
}

func (c *Connection) handleProfile() {
	if c.Player == nil {
		c.sendError(CodeNoSession, "hello required first")
		return
	}
	snap := c.Player.Progress.Snapshot()
	c.send(&ServerEnvelope{Type: ServerProfile, Profile: &snap})
}

// handleListGear answers with the gear unlocked for this session. Gear
// availability depends on completed quests, so a session must be bound.
func (c *Connection) handleListGear() {
	if c.Player == nil {
		c.sendError(CodeNoSession, "hello required first")
		return
	}
	gear := c.Gateway.nexus.AvailableGear(c.Player.Progress)
	c.send(&ServerEnvelope{Type: ServerGearList, Gear: gear})
}

func (c *Connection) handleSubmit(env *ClientEnvelope) {
	if c.Player == nil {
		c.sendError(CodeNoSession, "hello required first")
		return
	}

	res, err := c.Gateway.nexus.Submit(c.Player.Progress, quest.Submission{
		QuestID:   env.QuestID,
		PersonaID: env.PersonaID,
		Text:      env.Text,
	})
	if err != nil {
		// Only the quest lookup can fail; text and persona are never rejected.
		if errors.Is(err, content.ErrQuestNotFound) {
			c.sendError(CodeUnknownEntity, err.Error())
		} else {
			c.sendError(CodeRejected, err.Error())
		}
		return
	}

	c.send(&ServerEnvelope{Type: ServerOutcome, Outcome: res})
}

func (c *Connection) send(env *ServerEnvelope) {
	env.ServerSeq = atomic.AddUint64(&c.Gateway.nextSeq, 1)
	env.ServerTsMs = time.Now().UnixMilli()

	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("[Gateway] Marshal error: %v", err)
		return
	}
	select {
	case c.Send <- data:
	default:
		// Drop if buffer full
	}
}

func (c *Connection) sendError(code int, msg string) {
	c.send(&ServerEnvelope{
		Type:  ServerError,
		Error: &ErrorPayload{Code: code, Message: msg},
	})
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (g *Gateway) removeConnection(c *Connection) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.connections, c.ID)
	log.Printf("[Gateway] Client disconnected: %s, total: %d", c.ID, len(g.connections))
}
