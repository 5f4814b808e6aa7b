package servico

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarServicoRequest struct {
	ClienteID  uint   `json:"clienteId"`
	Nome       string `json:"nome"`
	Descricao  string `json:"descricao"`
	Prioridade string `json:"prioridade"`
	DataPrazo  string `json:"dataPrazo"` // RFC3339, opcional
}

type atualizarStatusRequest struct {
	Status   string `json:"status"`
	Mensagem string `json:"mensagem"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Criar abre um serviço para um cliente (equipe).
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarServicoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.ClienteID == 0 || strings.TrimSpace(req.Nome) == "" {
		http.Error(w, "clienteId e nome são obrigatórios", http.StatusBadRequest)
		return
	}
	if req.Prioridade == "" {
		req.Prioridade = PrioridadeMedium
	}
	if !PrioridadeValida(req.Prioridade) {
		http.Error(w, "prioridade inválida", http.StatusBadRequest)
		return
	}

	s := Servico{
		ClienteID:  req.ClienteID,
		Nome:       strings.TrimSpace(req.Nome),
		Descricao:  req.Descricao,
		Status:     StatusPending,
		Prioridade: req.Prioridade,
	}
	if req.DataPrazo != "" {
		prazo, err := time.Parse(time.RFC3339, req.DataPrazo)
		if err != nil {
			http.Error(w, "dataPrazo inválida (use RFC3339)", http.StatusBadRequest)
			return
		}
		s.DataPrazo = &prazo
	}

	if err := h.Repository.Salvar(h.DB, &s); err != nil {
		http.Error(w, "erro ao salvar serviço", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s)
}

// Listar retorna todos os serviços (equipe).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar serviços", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// AtualizarStatus transiciona o serviço e grava a atualização de auditoria.
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req atualizarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if !StatusValido(req.Status) {
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Mensagem) == "" {
		req.Mensagem = "Status alterado para " + req.Status
	}

	if err := h.Repository.AtualizarStatus(h.DB, uint(id), req.Status, req.Mensagem, userID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "serviço não encontrado", http.StatusNotFound)
		case errors.Is(err, ErrStatusTerminal):
			http.Error(w, "serviço concluído ou cancelado não pode ser alterado", http.StatusConflict)
		default:
			http.Error(w, "erro ao atualizar serviço", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// ListarAtualizacoes devolve a trilha de auditoria do serviço.
func (h *Handler) ListarAtualizacoes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarAtualizacoes(h.DB, uint(id))
	if err != nil {
		http.Error(w, "erro ao listar atualizações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
