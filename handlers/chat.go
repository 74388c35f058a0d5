package handlers

import (
	"net/http"
	"strings"
	"sync"

	"hrassist/chat"
	"hrassist/config"
	"hrassist/store"
)

type ChatMessage struct {
	Role    string
	Content string
}

// ChatHandler keeps a process-local transcript, the same page-local state
// the original tool kept. It is never persisted.
type ChatHandler struct {
	config *config.Config
	client chat.Replier

	mu       sync.Mutex
	messages []ChatMessage
}

func NewChatHandler(cfg *config.Config, client chat.Replier) *ChatHandler {
	return &ChatHandler{
		config: cfg,
		client: client,
	}
}

func (h *ChatHandler) Transcript() []ChatMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]ChatMessage, len(h.messages))
	copy(out, h.messages)
	return out
}

// Send forwards the user's message plus a full dump of the employee and
// leave tables to the model. A collaborator failure becomes the reply text.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/dashboard?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	message := strings.TrimSpace(r.FormValue("message"))
	if message == "" {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	reply := h.generateReply(r, message)

	h.mu.Lock()
	h.messages = append(h.messages,
		ChatMessage{Role: "user", Content: message},
		ChatMessage{Role: "assistant", Content: reply},
	)
	h.mu.Unlock()

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *ChatHandler) generateReply(r *http.Request, message string) string {
	if h.client == nil {
		return "Error: chat is not configured (set GOOGLE_API_KEY)"
	}

	employees, err := store.ListEmployees()
	if err != nil {
		return "Error: " + err.Error()
	}
	leaves, err := store.ListLeaves()
	if err != nil {
		return "Error: " + err.Error()
	}

	prompt := chat.BuildPrompt(employees, leaves, message)
	reply, err := h.client.Reply(r.Context(), prompt)
	if err != nil {
		return "Error: " + err.Error()
	}
	return reply
}

func (h *ChatHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.messages = nil
	h.mu.Unlock()
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
