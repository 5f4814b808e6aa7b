package noticia

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type noticiaRequest struct {
	Titulo     string `json:"titulo"`
	Resumo     string `json:"resumo"`
	Conteudo   string `json:"conteudo"`
	Imagem     string `json:"imagem"`
	Categoria  string `json:"categoria"`
	IsFeatured bool   `json:"isFeatured"`
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

// Listar devolve as notícias ativas, paginadas (?limite=&pagina=).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	limite, _ := strconv.Atoi(r.URL.Query().Get("limite"))
	if limite <= 0 || limite > 50 {
		limite = 10
	}
	pagina, _ := strconv.Atoi(r.URL.Query().Get("pagina"))
	if pagina < 1 {
		pagina = 1
	}

	list, err := h.Repository.Listar(h.DB, limite, (pagina-1)*limite)
	if err != nil {
		http.Error(w, "erro ao listar notícias", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Destaques devolve as notícias em destaque.
func (h *Handler) Destaques(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.Destaques(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar destaques", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// PorCategoria filtra por categoria editorial.
func (h *Handler) PorCategoria(w http.ResponseWriter, r *http.Request) {
	categoria := mux.Vars(r)["categoria"]
	if !CategoriaValida(categoria) {
		http.Error(w, "categoria inválida", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.PorCategoria(h.DB, categoria)
	if err != nil {
		http.Error(w, "erro ao listar notícias", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID devolve o detalhe e incrementa o contador de visualizações.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	n, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil || !n.IsActive {
		http.Error(w, "notícia não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Repository.IncrementarVisualizacoes(h.DB, n.ID); err != nil {
		// contador é melhor-esforço; não derruba a leitura
		log.Printf("Erro ao incrementar visualizações da notícia %d: %v", n.ID, err)
	} else {
		n.ViewCount++
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(n)
}

// Buscar pesquisa título e conteúdo (?q=).
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	termo := strings.TrimSpace(r.URL.Query().Get("q"))
	if termo == "" {
		http.Error(w, "parâmetro q é obrigatório", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.Buscar(h.DB, termo)
	if err != nil {
		http.Error(w, "erro na busca", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Criar publica uma nova notícia (admin).
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req noticiaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Titulo) == "" || strings.TrimSpace(req.Conteudo) == "" {
		http.Error(w, "título e conteúdo são obrigatórios", http.StatusBadRequest)
		return
	}
	if req.Categoria == "" {
		req.Categoria = CategoriaGeral
	}
	if !CategoriaValida(req.Categoria) {
		http.Error(w, "categoria inválida", http.StatusBadRequest)
		return
	}

	n := Noticia{
		Titulo:     strings.TrimSpace(req.Titulo),
		Resumo:     req.Resumo,
		Conteudo:   req.Conteudo,
		Imagem:     req.Imagem,
		Categoria:  req.Categoria,
		IsFeatured: req.IsFeatured,
		IsActive:   true,
	}
	if err := h.Repository.Salvar(h.DB, &n); err != nil {
		http.Error(w, "erro ao salvar notícia", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(n)
}

// Atualizar edita uma notícia existente (admin).
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req noticiaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if !CategoriaValida(req.Categoria) {
		http.Error(w, "categoria inválida", http.StatusBadRequest)
		return
	}

	dados := Noticia{
		Titulo:     strings.TrimSpace(req.Titulo),
		Resumo:     req.Resumo,
		Conteudo:   req.Conteudo,
		Imagem:     req.Imagem,
		Categoria:  req.Categoria,
		IsFeatured: req.IsFeatured,
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "notícia não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar notícia", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// Desativar tira a notícia do ar sem removê-la (admin).
func (h *Handler) Desativar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.DefinirAtiva(h.DB, uint(id), false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "notícia não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar notícia", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
