package lead

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/notificacao"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarLeadRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Empresa  string `json:"empresa"`
	Mensagem string `json:"mensagem"`
	Source   string `json:"source"`
}

type atualizarStatusRequest struct {
	Status string `json:"status"`
}

type atribuirRequest struct {
	ResponsavelID *uint `json:"responsavelId"`
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

// Criar registra um novo lead (rota pública: formulário de contato e chatbot).
// A notificação da equipe é disparada fora do caminho da requisição e a sua
// falha não desfaz a gravação.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarLeadRequest
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
	if req.Source == "" {
		req.Source = SourceContactForm
	}
	if !SourceValido(req.Source) {
		http.Error(w, "source inválido", http.StatusBadRequest)
		return
	}

	l := Lead{
		Nome:     strings.TrimSpace(req.Nome),
		Email:    strings.TrimSpace(req.Email),
		Telefone: strings.TrimSpace(req.Telefone),
		Empresa:  strings.TrimSpace(req.Empresa),
		Mensagem: req.Mensagem,
		Source:   req.Source,
		Status:   StatusNew,
	}
	if err := h.Repository.Salvar(h.DB, &l); err != nil {
		http.Error(w, "erro ao salvar lead", http.StatusInternalServerError)
		return
	}

	notificacao.Assinc(h.Notificador, "Novo lead recebido",
		fmt.Sprintf("Nome: %s\nEmail: %s\nTelefone: %s\nOrigem: %s\nMensagem: %s",
			l.Nome, l.Email, l.Telefone, l.Source, l.Mensagem))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(l)
}

// Listar retorna todos os leads (autenticado).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar leads", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(leads)
}

// AtualizarStatus muda o estágio do lead no funil (autenticado).
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
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "lead não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar lead", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// Atribuir define (ou remove) o colaborador responsável pelo lead.
func (h *Handler) Atribuir(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req atribuirRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Atribuir(h.DB, uint(id), req.ResponsavelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "lead não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atribuir lead", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
