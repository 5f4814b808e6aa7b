package agendamento

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/notificacao"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarAgendamentoRequest struct {
	Nome         string `json:"nome"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone"`
	DataAgendada string `json:"dataAgendada"` // RFC3339
	Duracao      int    `json:"duracao"`
	Assunto      string `json:"assunto"`
	Observacoes  string `json:"observacoes"`
}

type atualizarStatusRequest struct {
	Status string `json:"status"`
}

// Handler encapsula DB, repository e o canal de notificação
type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Notificador notificacao.Notificador
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, n notificacao.Notificador) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Notificador: n,
	}
}

// Criar registra um novo agendamento (rota pública).
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarAgendamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Nome) == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}
	if !utils.EmailValido(req.Email) {
		http.Error(w, "email inválido", http.StatusBadRequest)
		return
	}
	data, err := time.Parse(time.RFC3339, req.DataAgendada)
	if err != nil {
		http.Error(w, "dataAgendada inválida (use RFC3339)", http.StatusBadRequest)
		return
	}
	if data.Before(time.Now().Add(-time.Minute)) {
		http.Error(w, "dataAgendada deve ser presente ou futura", http.StatusBadRequest)
		return
	}
	if req.Duracao <= 0 {
		req.Duracao = 30
	}

	a := Agendamento{
		Nome:         strings.TrimSpace(req.Nome),
		Email:        strings.TrimSpace(req.Email),
		Telefone:     strings.TrimSpace(req.Telefone),
		DataAgendada: data,
		Duracao:      req.Duracao,
		Assunto:      req.Assunto,
		Observacoes:  req.Observacoes,
		Status:       StatusPending,
	}
	if err := h.Repository.Salvar(h.DB, &a); err != nil {
		http.Error(w, "erro ao salvar agendamento", http.StatusInternalServerError)
		return
	}

	notificacao.Assinc(h.Notificador, "Novo agendamento solicitado",
		fmt.Sprintf("Nome: %s\nData: %s\nDuração: %d min\nAssunto: %s",
			a.Nome, a.DataAgendada.Format("02/01/2006 15:04"), a.Duracao, a.Assunto))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// Listar retorna todos os agendamentos (autenticado).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar agendamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// AtualizarStatus transiciona o agendamento (autenticado).
// Estados terminais (completed, cancelled) não aceitam nova mutação.
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Repository.AtualizarStatus(h.DB, uint(id), req.Status); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "agendamento não encontrado", http.StatusNotFound)
		case errors.Is(err, ErrStatusTerminal):
			http.Error(w, "agendamento concluído ou cancelado não pode ser alterado", http.StatusConflict)
		default:
			http.Error(w, "erro ao atualizar agendamento", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
