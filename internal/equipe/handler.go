package equipe

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/auth"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/presenca"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type colaboradorRequest struct {
	Nome         string `json:"nome"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone"`
	Departamento string `json:"departamento"`
	Cargo        string `json:"cargo"`
}

// Handler encapsula DB, repository e o store de presença
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Presenca   *presenca.Store
}

// NewHandler retorna um handler inicializado. O store de presença é opcional.
func NewHandler(db *gorm.DB, p *presenca.Store) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Presenca:   p,
	}
}

// anexa o sinal de presença vindo do Redis; sem Redis, IsOnline fica false
func (h *Handler) anexarPresenca(r *http.Request, list []Colaborador) {
	if h.Presenca == nil {
		return
	}
	for i := range list {
		online, err := h.Presenca.EstaOnline(r.Context(), list[i].ID)
		if err != nil {
			continue
		}
		list[i].IsOnline = online
	}
}

// Listar retorna os colaboradores ativos (rota pública, página "Equipe").
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarAtivos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar equipe", http.StatusInternalServerError)
		return
	}
	h.anexarPresenca(r, list)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// ListarTodos retorna inclusive os desativados (admin).
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar equipe", http.StatusInternalServerError)
		return
	}
	h.anexarPresenca(r, list)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// PorDepartamento filtra os ativos pelo departamento informado (rota pública).
func (h *Handler) PorDepartamento(w http.ResponseWriter, r *http.Request) {
	departamento := mux.Vars(r)["departamento"]
	if !DepartamentoValido(departamento) {
		http.Error(w, "departamento inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarPorDepartamento(h.DB, departamento)
	if err != nil {
		http.Error(w, "erro ao listar equipe", http.StatusInternalServerError)
		return
	}
	h.anexarPresenca(r, list)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Criar cadastra um novo colaborador (admin).
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req colaboradorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}
	if !DepartamentoValido(req.Departamento) {
		http.Error(w, "departamento inválido", http.StatusBadRequest)
		return
	}
	if !utils.EmailValido(req.Email) {
		http.Error(w, "email inválido", http.StatusBadRequest)
		return
	}

	c := Colaborador{
		Nome:         strings.TrimSpace(req.Nome),
		Email:        strings.TrimSpace(req.Email),
		Telefone:     strings.TrimSpace(req.Telefone),
		Departamento: req.Departamento,
		Cargo:        req.Cargo,
		IsActive:     true,
	}
	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar colaborador", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// Atualizar altera os dados de um colaborador (admin).
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req colaboradorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if !DepartamentoValido(req.Departamento) {
		http.Error(w, "departamento inválido", http.StatusBadRequest)
		return
	}

	dados := Colaborador{
		Nome:         strings.TrimSpace(req.Nome),
		Email:        strings.TrimSpace(req.Email),
		Telefone:     strings.TrimSpace(req.Telefone),
		Departamento: req.Departamento,
		Cargo:        req.Cargo,
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "colaborador não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar colaborador", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// Desativar marca o colaborador como inativo; a linha nunca é removida.
func (h *Handler) Desativar(w http.ResponseWriter, r *http.Request) {
	h.definirAtivo(w, r, false)
}

// Reativar restaura um colaborador desativado.
func (h *Handler) Reativar(w http.ResponseWriter, r *http.Request) {
	h.definirAtivo(w, r, true)
}

func (h *Handler) definirAtivo(w http.ResponseWriter, r *http.Request, ativo bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.DefinirAtivo(h.DB, uint(id), ativo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "colaborador não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar colaborador", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// MarcarOnline renova o sinal de presença do colaborador logado.
func (h *Handler) MarcarOnline(w http.ResponseWriter, r *http.Request) {
	h.marcarPresenca(w, r, true)
}

// MarcarOffline remove o sinal de presença do colaborador logado.
func (h *Handler) MarcarOffline(w http.ResponseWriter, r *http.Request) {
	h.marcarPresenca(w, r, false)
}

func (h *Handler) marcarPresenca(w http.ResponseWriter, r *http.Request, online bool) {
	if h.Presenca == nil {
		http.Error(w, "presença indisponível", http.StatusServiceUnavailable)
		return
	}
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	var err error
	if online {
		err = h.Presenca.MarcarOnline(r.Context(), userID)
	} else {
		err = h.Presenca.MarcarOffline(r.Context(), userID)
	}
	if err != nil {
		http.Error(w, "erro ao atualizar presença", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
