package solicitacao

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/auth"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/cliente"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/notificacao"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/servico"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarSolicitacaoRequest struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
}

type atualizarStatusRequest struct {
	Status string `json:"status"`
}

type converterRequest struct {
	Prioridade string `json:"prioridade"`
}

// Handler encapsula DB, repositories e o canal de notificação
type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Clientes    cliente.Repository
	Notificador notificacao.Notificador
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, n notificacao.Notificador) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Clientes:    cliente.NewRepository(),
		Notificador: n,
	}
}

// Criar abre uma solicitação em nome do cliente logado.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	var req criarSolicitacaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Titulo) == "" {
		http.Error(w, "título é obrigatório", http.StatusBadRequest)
		return
	}

	perfil, err := h.Clientes.BuscarPorUsuario(h.DB, userID)
	if err != nil {
		http.Error(w, "complete seu perfil antes de solicitar um serviço", http.StatusBadRequest)
		return
	}

	s := Solicitacao{
		ClienteID: perfil.ID,
		Titulo:    strings.TrimSpace(req.Titulo),
		Descricao: req.Descricao,
		Status:    StatusPending,
	}
	if err := h.Repository.Salvar(h.DB, &s); err != nil {
		http.Error(w, "erro ao salvar solicitação", http.StatusInternalServerError)
		return
	}

	notificacao.Assinc(h.Notificador, "Nova solicitação de serviço",
		fmt.Sprintf("Cliente: %s\nTítulo: %s\n%s", perfil.Empresa, s.Titulo, s.Descricao))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s)
}

// Listar devolve todas as solicitações (equipe).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar solicitações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// MinhasSolicitacoes devolve as solicitações do cliente logado.
func (h *Handler) MinhasSolicitacoes(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	perfil, err := h.Clientes.BuscarPorUsuario(h.DB, userID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Solicitacao{})
		return
	}

	list, err := h.Repository.ListarPorCliente(h.DB, perfil.ID)
	if err != nil {
		http.Error(w, "erro ao listar solicitações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// AtualizarStatus muda o estado da solicitação (equipe). A transição para
// converted só acontece pela rota de conversão.
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
	if !StatusValido(req.Status) || req.Status == StatusConverted {
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.AtualizarStatus(h.DB, uint(id), req.Status); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "solicitação não encontrada", http.StatusNotFound)
		case errors.Is(err, ErrJaConvertida):
			http.Error(w, "solicitação já convertida não pode ser alterada", http.StatusConflict)
		default:
			http.Error(w, "erro ao atualizar solicitação", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// Converter promove a solicitação a um serviço contratado (equipe).
func (h *Handler) Converter(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req converterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Prioridade == "" {
		req.Prioridade = servico.PrioridadeMedium
	}
	if !servico.PrioridadeValida(req.Prioridade) {
		http.Error(w, "prioridade inválida", http.StatusBadRequest)
		return
	}

	novo, err := h.Repository.Converter(h.DB, uint(id), req.Prioridade)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "solicitação não encontrada", http.StatusNotFound)
		case errors.Is(err, ErrJaConvertida):
			http.Error(w, "solicitação já convertida", http.StatusConflict)
		default:
			http.Error(w, "erro ao converter solicitação", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(novo)
}
