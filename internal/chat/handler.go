package chat

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/qashqai-voice/internal/langid"
)

// maxBodyBytes caps request bodies; the core enforces no text limit itself.
const maxBodyBytes = 1 << 20

// autoLanguage is sent by the web demo when the user picks auto-detect.
const autoLanguage = "auto"

type Handler struct {
	svc Service
	log logrus.FieldLogger
}

func NewHandler(svc Service, log logrus.FieldLogger) *Handler {
	return &Handler{svc: svc, log: log.WithField("component", "http")}
}

// Root — service banner
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"project":  "QashqAI Voice",
		"status":   "running",
		"endpoint": "/chat",
	})
}

// Chat — full pipeline
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Language *string `json:"language"`
		Text     *string `json:"text"`
	}

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if payload.Text == nil {
		http.Error(w, "missing text", http.StatusBadRequest)
		return
	}

	msg := Message{Text: *payload.Text}

	if payload.Language != nil && *payload.Language != "" && *payload.Language != autoLanguage {
		lang, err := langid.ParseLanguage(*payload.Language)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		msg.Language = &lang
	}

	res := h.svc.Run(r.Context(), msg)

	h.log.WithFields(logrus.Fields{
		"request_id": RequestIDFrom(r.Context()),
		"language":   res.DetectedLanguage,
		"steps":      len(res.Steps),
	}).Info("chat handled")

	writeJSON(w, http.StatusOK, res)
}

// Detect — classification without the pipeline
func (h *Handler) Detect(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text *string `json:"text"`
	}

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if payload.Text == nil {
		http.Error(w, "missing text", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.svc.Detect(*payload.Text))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
