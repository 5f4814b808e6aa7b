package noticia

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepository struct {
	noticias  map[uint]*Noticia
	proximoID uint

	ultimoLimite int
	ultimoOffset int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{noticias: map[uint]*Noticia{}, proximoID: 1}
}

func (f *fakeRepository) Salvar(db *gorm.DB, n *Noticia) error {
	n.ID = f.proximoID
	f.proximoID++
	f.noticias[n.ID] = n
	return nil
}

func (f *fakeRepository) Listar(db *gorm.DB, limite, offset int) ([]Noticia, error) {
	f.ultimoLimite = limite
	f.ultimoOffset = offset
	var list []Noticia
	for _, n := range f.noticias {
		if n.IsActive {
			list = append(list, *n)
		}
	}
	return list, nil
}

func (f *fakeRepository) Destaques(db *gorm.DB) ([]Noticia, error) {
	var list []Noticia
	for _, n := range f.noticias {
		if n.IsActive && n.IsFeatured {
			list = append(list, *n)
		}
	}
	return list, nil
}

func (f *fakeRepository) PorCategoria(db *gorm.DB, categoria string) ([]Noticia, error) {
	var list []Noticia
	for _, n := range f.noticias {
		if n.IsActive && n.Categoria == categoria {
			list = append(list, *n)
		}
	}
	return list, nil
}

func (f *fakeRepository) BuscarPorID(db *gorm.DB, id uint) (*Noticia, error) {
	n, ok := f.noticias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *n
	return &copia, nil
}

func (f *fakeRepository) IncrementarVisualizacoes(db *gorm.DB, id uint) error {
	n, ok := f.noticias[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	n.ViewCount++
	return nil
}

func (f *fakeRepository) Buscar(db *gorm.DB, termo string) ([]Noticia, error) {
	termo = strings.ToLower(termo)
	var list []Noticia
	for _, n := range f.noticias {
		if !n.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(n.Titulo), termo) ||
			strings.Contains(strings.ToLower(n.Conteudo), termo) {
			list = append(list, *n)
		}
	}
	return list, nil
}

func (f *fakeRepository) Atualizar(db *gorm.DB, id uint, novosDados *Noticia) error {
	n, ok := f.noticias[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	n.Titulo = novosDados.Titulo
	n.Resumo = novosDados.Resumo
	n.Conteudo = novosDados.Conteudo
	n.Imagem = novosDados.Imagem
	n.Categoria = novosDados.Categoria
	n.IsFeatured = novosDados.IsFeatured
	return nil
}

func (f *fakeRepository) DefinirAtiva(db *gorm.DB, id uint, ativa bool) error {
	n, ok := f.noticias[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	n.IsActive = ativa
	return nil
}

func TestCriarNoticia(t *testing.T) {
	repo := newFakeRepository()
	h := &Handler{Repository: repo}

	body := `{"titulo": "Novo prazo do Simples", "conteudo": "A Receita prorrogou...", "categoria": "tributario"}`
	req := httptest.NewRequest(http.MethodPost, "/noticias", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Criar(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var criada Noticia
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criada))
	assert.True(t, criada.IsActive)
	assert.Equal(t, CategoriaTributario, criada.Categoria)
	assert.Equal(t, uint(0), criada.ViewCount)
}

func TestCriarNoticiaCategoriaPadrao(t *testing.T) {
	repo := newFakeRepository()
	h := &Handler{Repository: repo}

	body := `{"titulo": "Aviso", "conteudo": "Horário de atendimento no feriado"}`
	req := httptest.NewRequest(http.MethodPost, "/noticias", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Criar(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, CategoriaGeral, repo.noticias[1].Categoria)
}

func TestCriarNoticiaInvalida(t *testing.T) {
	h := &Handler{Repository: newFakeRepository()}

	casos := []string{
		`{"conteudo": "sem título"}`,
		`{"titulo": "sem conteúdo"}`,
		`{"titulo": "t", "conteudo": "c", "categoria": "esportes"}`,
	}
	for _, body := range casos {
		req := httptest.NewRequest(http.MethodPost, "/noticias", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Criar(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "payload: %s", body)
	}
}

func TestBuscarPorIDIncrementaVisualizacoes(t *testing.T) {
	repo := newFakeRepository()
	repo.Salvar(nil, &Noticia{Titulo: "eSocial", Conteudo: "...", Categoria: CategoriaTrabalhista, IsActive: true})
	h := &Handler{Repository: repo}

	for esperado := uint(1); esperado <= 3; esperado++ {
		req := httptest.NewRequest(http.MethodGet, "/noticias/1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		rec := httptest.NewRecorder()
		h.BuscarPorID(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var n Noticia
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
		assert.Equal(t, esperado, n.ViewCount)
	}
	assert.Equal(t, uint(3), repo.noticias[1].ViewCount)
}

func TestBuscarPorIDNoticiaInativa(t *testing.T) {
	repo := newFakeRepository()
	repo.Salvar(nil, &Noticia{Titulo: "Rascunho", Conteudo: "...", IsActive: false})
	h := &Handler{Repository: repo}

	req := httptest.NewRequest(http.MethodGet, "/noticias/1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	rec := httptest.NewRecorder()
	h.BuscarPorID(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	// notícia fora do ar não soma visualização
	assert.Equal(t, uint(0), repo.noticias[1].ViewCount)
}

func TestListarPaginacaoPadrao(t *testing.T) {
	repo := newFakeRepository()
	h := &Handler{Repository: repo}

	req := httptest.NewRequest(http.MethodGet, "/noticias", nil)
	h.Listar(httptest.NewRecorder(), req)
	assert.Equal(t, 10, repo.ultimoLimite)
	assert.Equal(t, 0, repo.ultimoOffset)

	req = httptest.NewRequest(http.MethodGet, "/noticias?limite=5&pagina=3", nil)
	h.Listar(httptest.NewRecorder(), req)
	assert.Equal(t, 5, repo.ultimoLimite)
	assert.Equal(t, 10, repo.ultimoOffset)

	// limite fora da faixa cai no padrão
	req = httptest.NewRequest(http.MethodGet, "/noticias?limite=500", nil)
	h.Listar(httptest.NewRecorder(), req)
	assert.Equal(t, 10, repo.ultimoLimite)
}

func TestPorCategoria(t *testing.T) {
	repo := newFakeRepository()
	repo.Salvar(nil, &Noticia{Titulo: "IRPF 2026", Conteudo: "...", Categoria: CategoriaTributario, IsActive: true})
	repo.Salvar(nil, &Noticia{Titulo: "Férias coletivas", Conteudo: "...", Categoria: CategoriaTrabalhista, IsActive: true})
	h := &Handler{Repository: repo}

	req := httptest.NewRequest(http.MethodGet, "/noticias/categoria/tributario", nil)
	req = mux.SetURLVars(req, map[string]string{"categoria": "tributario"})
	rec := httptest.NewRecorder()
	h.PorCategoria(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var list []Noticia
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "IRPF 2026", list[0].Titulo)
}

func TestPorCategoriaInvalida(t *testing.T) {
	h := &Handler{Repository: newFakeRepository()}

	req := httptest.NewRequest(http.MethodGet, "/noticias/categoria/esportes", nil)
	req = mux.SetURLVars(req, map[string]string{"categoria": "esportes"})
	rec := httptest.NewRecorder()
	h.PorCategoria(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBuscarExigeTermo(t *testing.T) {
	h := &Handler{Repository: newFakeRepository()}

	req := httptest.NewRequest(http.MethodGet, "/noticias/busca", nil)
	rec := httptest.NewRecorder()
	h.Buscar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDesativarNoticia(t *testing.T) {
	repo := newFakeRepository()
	repo.Salvar(nil, &Noticia{Titulo: "Antiga", Conteudo: "...", IsActive: true})
	h := &Handler{Repository: repo}

	req := httptest.NewRequest(http.MethodDelete, "/noticias/1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	rec := httptest.NewRecorder()
	h.Desativar(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, repo.noticias[1].IsActive)

	// desativada some da listagem pública
	list, _ := repo.Listar(nil, 10, 0)
	assert.Empty(t, list)
}
