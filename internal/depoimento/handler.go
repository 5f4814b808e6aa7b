package depoimento

import (
	"encoding/json"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

type criarDepoimentoRequest struct {
	NomeCliente string `json:"nomeCliente"`
	Empresa     string `json:"empresa"`
	Conteudo    string `json:"conteudo"`
	Nota        int    `json:"nota"`
}

// Handler encapsula o DB; entidade simples, sem repository dedicado.
type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// Listar devolve os depoimentos ativos (rota pública).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var list []Depoimento
	if err := h.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&list).Error; err != nil {
		http.Error(w, "erro ao listar depoimentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Criar registra um depoimento (autenticado). Nota fora de 1–5 vira 5.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarDepoimentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.NomeCliente) == "" || strings.TrimSpace(req.Conteudo) == "" {
		http.Error(w, "nomeCliente e conteudo são obrigatórios", http.StatusBadRequest)
		return
	}
	if req.Nota < 1 || req.Nota > 5 {
		req.Nota = 5
	}

	d := Depoimento{
		NomeCliente: strings.TrimSpace(req.NomeCliente),
		Empresa:     strings.TrimSpace(req.Empresa),
		Conteudo:    req.Conteudo,
		Nota:        req.Nota,
		IsActive:    true,
	}
	if err := h.DB.Create(&d).Error; err != nil {
		http.Error(w, "erro ao salvar depoimento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
