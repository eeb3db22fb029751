package lab

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const liveEndpoint = "wss://generativelanguage.googleapis.com/ws/google.ai.generativelanguage.v1beta.GenerativeService.BidiGenerateContent"

var liveUpgrader = websocket.Upgrader{
	ReadBufferSize:  8192,
	WriteBufferSize: 8192,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: Restrict in production
	},
}

// ProxyLive bridges a browser WebSocket to the Live API. The browser speaks
// the Live wire protocol directly (audio chunks in, audio plus transcripts
// out); the server only injects the setup frame and keeps the key private.
// Either side closing tears down both.
func (c *Client) ProxyLive(w http.ResponseWriter, r *http.Request) {
	browser, err := liveUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Lab] Live upgrade error: %v", err)
		return
	}
	defer browser.Close()

	header := http.Header{}
	header.Set("x-goog-api-key", c.cfg.APIKey)
	upstream, _, err := websocket.DefaultDialer.DialContext(r.Context(), liveEndpoint, header)
	if err != nil {
		log.Printf("[Lab] Live dial error: %v", err)
		browser.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "upstream unavailable"))
		return
	}
	defer upstream.Close()

	setup, err := json.Marshal(map[string]any{
		"setup": map[string]any{
			"model": "models/" + c.cfg.LiveModel,
		},
	})
	if err != nil {
		return
	}
	if err := upstream.WriteMessage(websocket.TextMessage, setup); err != nil {
		log.Printf("[Lab] Live setup error: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go pipe(ctx, cancel, browser, upstream)
	pipe(ctx, cancel, upstream, browser)
}

// pipe copies frames from src to dst until either side fails or ctx ends.
// Interruption handling is the model's job: barge-in audio flows through
// like any other frame and the upstream cancels its own generation.
func pipe(ctx context.Context, cancel context.CancelFunc, src, dst *websocket.Conn) {
	defer cancel()

	for {
		if err := ctx.Err(); err != nil {
			return
		}
		src.SetReadDeadline(time.Now().Add(5 * time.Minute))
		messageType, message, err := src.ReadMessage()
		if err != nil {
			return
		}
		dst.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := dst.WriteMessage(messageType, message); err != nil {
			return
		}
	}
}
