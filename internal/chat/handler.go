package chat

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type enviarRequest struct {
	SessionID string `json:"sessionId"`
	Mensagem  string `json:"message"`
}

// Handler expõe o chat público do site.
type Handler struct {
	Engine *Engine
}

func NewHandler(e *Engine) *Handler {
	return &Handler{Engine: e}
}

// Enviar processa um turno do visitante. Nunca devolve erro do modelo:
// no pior caso a resposta é o texto de contingência.
func (h *Handler) Enviar(w http.ResponseWriter, r *http.Request) {
	var req enviarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	req.SessionID = strings.TrimSpace(req.SessionID)
	req.Mensagem = strings.TrimSpace(req.Mensagem)
	if req.SessionID == "" || req.Mensagem == "" {
		http.Error(w, "sessionId e message são obrigatórios", http.StatusBadRequest)
		return
	}

	resposta, err := h.Engine.Enviar(r.Context(), req.SessionID, req.Mensagem)
	if err != nil {
		http.Error(w, "erro ao processar mensagem", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"response": resposta})
}

// Historico devolve as mensagens da sessão em ordem cronológica.
func (h *Handler) Historico(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		http.Error(w, "sessionId é obrigatório", http.StatusBadRequest)
		return
	}

	msgs, err := h.Engine.Historico(sessionID)
	if err != nil {
		http.Error(w, "erro ao carregar histórico", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(msgs)
}
