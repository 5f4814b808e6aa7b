package documento

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/auth"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/cliente"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/notificacao"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// limite de 20 MB por upload
const maxUpload = 20 << 20

// Handler encapsula DB, repository, storage e notificação
type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Clientes    cliente.Repository
	Storage     Storage
	Notificador notificacao.Notificador
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, st Storage, n notificacao.Notificador) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Clientes:    cliente.NewRepository(),
		Storage:     st,
		Notificador: n,
	}
}

// Enviar recebe um arquivo multipart do cliente logado e guarda no bucket.
func (h *Handler) Enviar(w http.ResponseWriter, r *http.Request) {
	if h.Storage == nil {
		http.Error(w, "armazenamento de documentos indisponível", http.StatusServiceUnavailable)
		return
	}

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	perfil, err := h.Clientes.BuscarPorUsuario(h.DB, userID)
	if err != nil {
		http.Error(w, "complete seu perfil antes de enviar documentos", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxUpload); err != nil {
		http.Error(w, "arquivo inválido ou grande demais", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("arquivo")
	if err != nil {
		http.Error(w, "campo 'arquivo' é obrigatório", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	chave, err := h.Storage.Enviar(r.Context(), header.Filename, contentType, header.Size, file)
	if err != nil {
		http.Error(w, "erro ao guardar arquivo", http.StatusInternalServerError)
		return
	}

	d := Documento{
		ClienteID:   perfil.ID,
		NomeArquivo: header.Filename,
		Chave:       chave,
		Tamanho:     header.Size,
		ContentType: contentType,
	}
	if servicoID := r.FormValue("servicoId"); servicoID != "" {
		if id, err := strconv.Atoi(servicoID); err == nil {
			sid := uint(id)
			d.ServicoID = &sid
		}
	}

	if err := h.Repository.Salvar(h.DB, &d); err != nil {
		http.Error(w, "erro ao salvar documento", http.StatusInternalServerError)
		return
	}

	notificacao.Assinc(h.Notificador, "Novo documento recebido",
		fmt.Sprintf("Cliente: %s\nArquivo: %s", perfil.Empresa, d.NomeArquivo))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(d)
}

// MeusDocumentos lista os documentos do cliente logado.
func (h *Handler) MeusDocumentos(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	perfil, err := h.Clientes.BuscarPorUsuario(h.DB, userID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Documento{})
		return
	}

	list, err := h.Repository.ListarPorCliente(h.DB, perfil.ID)
	if err != nil {
		http.Error(w, "erro ao listar documentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// URLDownload devolve uma URL pré-assinada para baixar o documento.
func (h *Handler) URLDownload(w http.ResponseWriter, r *http.Request) {
	if h.Storage == nil {
		http.Error(w, "armazenamento de documentos indisponível", http.StatusServiceUnavailable)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	d, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "documento não encontrado", http.StatusNotFound)
		return
	}

	// cliente só baixa os próprios documentos; equipe baixa qualquer um
	if auth.RoleFromContext(r.Context()) == auth.RoleCliente {
		userID, _ := auth.UserIDFromContext(r.Context())
		perfil, err := h.Clientes.BuscarPorUsuario(h.DB, userID)
		if err != nil || perfil.ID != d.ClienteID {
			http.Error(w, "documento não encontrado", http.StatusNotFound)
			return
		}
	}

	url, err := h.Storage.URLDownload(r.Context(), d.Chave)
	if err != nil {
		http.Error(w, "erro ao gerar URL", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}

// MarcarProcessado marca o documento como tratado pela equipe.
func (h *Handler) MarcarProcessado(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.MarcarProcessado(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "documento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar documento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
