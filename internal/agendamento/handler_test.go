package agendamento

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepository struct {
	itens []Agendamento
}

func (f *fakeRepository) Salvar(_ *gorm.DB, a *Agendamento) error {
	a.ID = uint(len(f.itens) + 1)
	f.itens = append(f.itens, *a)
	return nil
}

func (f *fakeRepository) ListarTodos(_ *gorm.DB) ([]Agendamento, error) {
	return f.itens, nil
}

func (f *fakeRepository) BuscarPorID(_ *gorm.DB, id uint) (*Agendamento, error) {
	for i := range f.itens {
		if f.itens[i].ID == id {
			return &f.itens[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) AtualizarStatus(_ *gorm.DB, id uint, status string) error {
	for i := range f.itens {
		if f.itens[i].ID == id {
			if StatusTerminal(f.itens[i].Status) {
				return ErrStatusTerminal
			}
			f.itens[i].Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type notificadorNulo struct{}

func (notificadorNulo) Notificar(string, string) error { return nil }

func novoHandlerDeTeste() (*Handler, *fakeRepository) {
	repo := &fakeRepository{}
	return &Handler{DB: nil, Repository: repo, Notificador: notificadorNulo{}}, repo
}

func criarVia(h *Handler, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/agendamentos", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Criar(rec, req)
	return rec
}

func TestCriarAgendamentoComDuracaoPadrao(t *testing.T) {
	h, repo := novoHandlerDeTeste()

	rec := criarVia(h, map[string]interface{}{
		"nome":         "Maria",
		"dataAgendada": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.itens, 1)
	assert.Equal(t, 30, repo.itens[0].Duracao)
	assert.Equal(t, StatusPending, repo.itens[0].Status)
}

func TestCriarAgendamentoDataPassadaRejeita(t *testing.T) {
	h, repo := novoHandlerDeTeste()

	rec := criarVia(h, map[string]interface{}{
		"nome":         "Maria",
		"dataAgendada": time.Now().Add(-24 * time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.itens)
}

func TestCriarAgendamentoDataMalformadaRejeita(t *testing.T) {
	h, _ := novoHandlerDeTeste()

	rec := criarVia(h, map[string]interface{}{
		"nome":         "Maria",
		"dataAgendada": "amanhã de manhã",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func atualizarStatusVia(h *Handler, id, status string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"status": status})
	req := httptest.NewRequest(http.MethodPut, "/agendamentos/"+id+"/status", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.AtualizarStatus(rec, req)
	return rec
}

func TestAtualizarStatusEnumFechado(t *testing.T) {
	h, repo := novoHandlerDeTeste()
	repo.itens = []Agendamento{{ID: 1, Status: StatusPending}}

	// valores do enum passam
	rec := atualizarStatusVia(h, "1", StatusConfirmed)
	require.Equal(t, http.StatusOK, rec.Code)

	// qualquer outra string é erro de validação
	rec = atualizarStatusVia(h, "1", "remarcado")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, StatusConfirmed, repo.itens[0].Status)
}

func TestAtualizarStatusEstadoTerminalBloqueia(t *testing.T) {
	h, repo := novoHandlerDeTeste()
	repo.itens = []Agendamento{
		{ID: 1, Status: StatusCompleted},
		{ID: 2, Status: StatusCancelled},
	}

	for _, id := range []string{"1", "2"} {
		rec := atualizarStatusVia(h, id, StatusPending)
		assert.Equal(t, http.StatusConflict, rec.Code, "id %s", id)
	}
	assert.Equal(t, StatusCompleted, repo.itens[0].Status)
	assert.Equal(t, StatusCancelled, repo.itens[1].Status)
}

func TestAtualizarStatusIDInexistenteRetorna404(t *testing.T) {
	h, _ := novoHandlerDeTeste()

	rec := atualizarStatusVia(h, "42", StatusConfirmed)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
