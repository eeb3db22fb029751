package lab

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
)

// Handler exposes the lab over REST plus one WebSocket route. A nil client
// means the lab is disabled (no API key): every route answers 503 and the
// rest of the server is unaffected.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/lab/chat", h.handleChat)
	mux.HandleFunc("/lab/chat/stream", h.handleChatStream)
	mux.HandleFunc("/lab/image", h.handleImage)
	mux.HandleFunc("/lab/image/edit", h.handleImageEdit)
	mux.HandleFunc("/lab/video", h.handleVideo)
	mux.HandleFunc("/lab/video/status", h.handleVideoStatus)
	mux.HandleFunc("/lab/live", h.handleLive)
}

func (h *Handler) guard(w http.ResponseWriter, r *http.Request, method string) bool {
	if h.client == nil {
		writeError(w, http.StatusServiceUnavailable, ErrDisabled.Error())
		return false
	}
	if method != "" && r.Method != method {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r, http.MethodPost) {
		return
	}
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	text, err := h.client.Generate(r.Context(), req)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// handleChatStream emits text chunks as Server-Sent Events, one data line
// per chunk, terminated by a done event.
func (h *Handler) handleChatStream(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r, http.MethodPost) {
		return
	}
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")

	err := h.client.GenerateStream(r.Context(), req, func(chunk string) error {
		payload, err := json.Marshal(map[string]string{"text": chunk})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		// Headers are gone; report in-band.
		fmt.Fprintf(w, "event: error\ndata: %s\n\n", err.Error())
		flusher.Flush()
		return
	}
	fmt.Fprint(w, "event: done\ndata: {}\n\n")
	flusher.Flush()
}

func (h *Handler) handleImage(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r, http.MethodPost) {
		return
	}
	var req ImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	images, err := h.client.GenerateImages(r.Context(), req)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"images": images})
}

func (h *Handler) handleImageEdit(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r, http.MethodPost) {
		return
	}
	var req ImageEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Prompt == "" || len(req.Data) == 0 {
		writeError(w, http.StatusBadRequest, "prompt and image data are required")
		return
	}

	image, err := h.client.EditImage(r.Context(), req)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, image)
}

func (h *Handler) handleVideo(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r, http.MethodPost) {
		return
	}
	var req VideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	op, err := h.client.StartVideo(r.Context(), req)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, op)
}

func (h *Handler) handleVideoStatus(w http.ResponseWriter, r *http.Request) {
	if !h.guard(w, r, http.MethodGet) {
		return
	}
	name := r.URL.Query().Get("op")
	if name == "" {
		writeError(w, http.StatusBadRequest, "op query parameter is required")
		return
	}

	op, err := h.client.PollVideo(r.Context(), name)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, op)
}

func (h *Handler) handleLive(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		writeError(w, http.StatusServiceUnavailable, ErrDisabled.Error())
		return
	}
	h.client.ProxyLive(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Lab] Write response error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeUpstreamError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrEmptyResponse) {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeError(w, http.StatusBadGateway, "upstream error: "+err.Error())
}
