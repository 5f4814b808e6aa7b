package lead

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepository struct {
	leads []Lead
}

func (f *fakeRepository) Salvar(_ *gorm.DB, l *Lead) error {
	l.ID = uint(len(f.leads) + 1)
	l.CreatedAt = time.Now()
	f.leads = append(f.leads, *l)
	return nil
}

func (f *fakeRepository) ListarTodos(_ *gorm.DB) ([]Lead, error) {
	return f.leads, nil
}

func (f *fakeRepository) BuscarPorID(_ *gorm.DB, id uint) (*Lead, error) {
	for i := range f.leads {
		if f.leads[i].ID == id {
			return &f.leads[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) AtualizarStatus(_ *gorm.DB, id uint, status string) error {
	for i := range f.leads {
		if f.leads[i].ID == id {
			f.leads[i].Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepository) Atribuir(_ *gorm.DB, id uint, responsavelID *uint) error {
	for i := range f.leads {
		if f.leads[i].ID == id {
			f.leads[i].ResponsavelID = responsavelID
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeNotificador struct {
	mu       sync.Mutex
	chamadas int
}

func (f *fakeNotificador) Notificar(titulo, conteudo string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chamadas++
	return nil
}

func (f *fakeNotificador) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.chamadas
}

func novoHandlerDeTeste() (*Handler, *fakeRepository, *fakeNotificador) {
	repo := &fakeRepository{}
	n := &fakeNotificador{}
	return &Handler{DB: nil, Repository: repo, Notificador: n}, repo, n
}

func TestCriarLeadComDefaults(t *testing.T) {
	h, repo, n := novoHandlerDeTeste()

	body, _ := json.Marshal(map[string]string{"nome": "A"})
	req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Criar(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.leads, 1)
	assert.Equal(t, "A", repo.leads[0].Nome)
	assert.Equal(t, StatusNew, repo.leads[0].Status)
	assert.Equal(t, SourceContactForm, repo.leads[0].Source)

	// exatamente uma notificação por lead criado
	assert.Eventually(t, func() bool { return n.total() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestCriarLeadSemNomeRejeita(t *testing.T) {
	h, repo, n := novoHandlerDeTeste()

	body, _ := json.Marshal(map[string]string{"email": "a@b.com"})
	req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Criar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.leads)
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, n.total())
}

func TestCriarLeadEmailInvalidoRejeita(t *testing.T) {
	h, _, _ := novoHandlerDeTeste()

	body, _ := json.Marshal(map[string]string{"nome": "A", "email": "não-é-email"})
	req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Criar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCriarLeadSourceInvalidoRejeita(t *testing.T) {
	h, _, _ := novoHandlerDeTeste()

	body, _ := json.Marshal(map[string]string{"nome": "A", "source": "carrier_pigeon"})
	req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Criar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListarDevolveLeadCriado(t *testing.T) {
	h, _, _ := novoHandlerDeTeste()

	body, _ := json.Marshal(map[string]string{"nome": "A"})
	h.Criar(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader(body)))

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	rec := httptest.NewRecorder()
	h.Listar(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var leads []Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	require.Len(t, leads, 1)
	assert.Equal(t, "A", leads[0].Nome)
	assert.Equal(t, StatusNew, leads[0].Status)
}

func atualizarStatusVia(h *Handler, id, status string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"status": status})
	req := httptest.NewRequest(http.MethodPut, "/leads/"+id+"/status", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.AtualizarStatus(rec, req)
	return rec
}

func TestAtualizarStatusAceitaQualquerEstadoDoEnum(t *testing.T) {
	h, repo, _ := novoHandlerDeTeste()
	repo.leads = []Lead{{ID: 1, Nome: "A", Status: StatusNew}}

	// sem ordem imposta: qualquer valor do enum é aceito diretamente
	for _, s := range []string{StatusLost, StatusConverted, StatusContacted} {
		rec := atualizarStatusVia(h, "1", s)
		require.Equal(t, http.StatusOK, rec.Code, "status %s", s)
		assert.Equal(t, s, repo.leads[0].Status)
	}
}

func TestAtualizarStatusForaDoEnumRejeita(t *testing.T) {
	h, repo, _ := novoHandlerDeTeste()
	repo.leads = []Lead{{ID: 1, Nome: "A", Status: StatusNew}}

	rec := atualizarStatusVia(h, "1", "em_negociacao")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, StatusNew, repo.leads[0].Status)
}

func TestAtualizarStatusIDInexistenteRetorna404(t *testing.T) {
	h, _, _ := novoHandlerDeTeste()

	rec := atualizarStatusVia(h, "99", StatusContacted)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
