package cliente

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/auth"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/servico"
	"gorm.io/gorm"
)

type perfilRequest struct {
	Empresa  string `json:"empresa"`
	CNPJ     string `json:"cnpj"`
	CPF      string `json:"cpf"`
	Endereco string `json:"endereco"`
	Cidade   string `json:"cidade"`
	UF       string `json:"uf"`
	Telefone string `json:"telefone"`
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

// MeuPerfil retorna o perfil do cliente logado.
func (h *Handler) MeuPerfil(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	c, err := h.Repository.BuscarPorUsuario(h.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "perfil não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao buscar perfil", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// SalvarPerfil cria ou atualiza o perfil do cliente logado.
func (h *Handler) SalvarPerfil(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	var req perfilRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Empresa) == "" {
		http.Error(w, "empresa é obrigatória", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorUsuario(h.DB, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "erro ao buscar perfil", http.StatusInternalServerError)
			return
		}
		c = &Cliente{UsuarioID: userID}
	}

	c.Empresa = strings.TrimSpace(req.Empresa)
	c.CNPJ = strings.TrimSpace(req.CNPJ)
	c.CPF = strings.TrimSpace(req.CPF)
	c.Endereco = req.Endereco
	c.Cidade = req.Cidade
	c.UF = req.UF
	c.Telefone = req.Telefone

	if err := h.Repository.Salvar(h.DB, c); err != nil {
		http.Error(w, "erro ao salvar perfil", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// MeusServicos lista os serviços contratados pelo cliente logado.
func (h *Handler) MeusServicos(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	c, err := h.Repository.BuscarPorUsuario(h.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// sem perfil ainda: lista vazia, não erro
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]servico.Servico{})
			return
		}
		http.Error(w, "erro ao buscar perfil", http.StatusInternalServerError)
		return
	}

	servicos, err := servico.NewRepository().ListarPorCliente(h.DB, c.ID)
	if err != nil {
		http.Error(w, "erro ao listar serviços", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(servicos)
}

// Listar devolve todos os clientes cadastrados (equipe).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar clientes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
