package chat

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// repositório em memória; ignora o *gorm.DB
type fakeRepository struct {
	mensagens []Mensagem
	falhar    bool
}

func (f *fakeRepository) Salvar(_ *gorm.DB, m *Mensagem) error {
	if f.falhar {
		return fmt.Errorf("banco indisponível")
	}
	m.ID = uint(len(f.mensagens) + 1)
	m.CreatedAt = time.Now()
	f.mensagens = append(f.mensagens, *m)
	return nil
}

func (f *fakeRepository) ListarPorSessao(_ *gorm.DB, sessionID string) ([]Mensagem, error) {
	var out []Mensagem
	for _, m := range f.mensagens {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeLLM struct {
	resposta string
	err      error
	contexto []llm.Mensagem
}

func (f *fakeLLM) Completar(_ context.Context, msgs []llm.Mensagem) (string, error) {
	f.contexto = msgs
	return f.resposta, f.err
}

type fakeNotificador struct {
	chamadas []string
}

func (f *fakeNotificador) Notificar(titulo, conteudo string) error {
	f.chamadas = append(f.chamadas, titulo+": "+conteudo)
	return nil
}

func novoEngineDeTeste(repo *fakeRepository, client *fakeLLM, n *fakeNotificador) *Engine {
	return &Engine{
		DB:              nil,
		Repository:      repo,
		LLM:             client,
		Notificador:     n,
		TelefoneContato: "(11) 4002-8922",
	}
}

// espera até o fan-out assíncrono de notificações assentar
func esperarNotificacoes() { time.Sleep(50 * time.Millisecond) }

func TestEnviarRespondePersistindoOsDoisTurnos(t *testing.T) {
	repo := &fakeRepository{}
	client := &fakeLLM{resposta: "Olá! Como posso ajudar?"}
	e := novoEngineDeTeste(repo, client, &fakeNotificador{})

	resp, err := e.Enviar(context.Background(), "sessao-1", "Bom dia")
	require.NoError(t, err)
	assert.Equal(t, "Olá! Como posso ajudar?", resp)

	historico, err := e.Historico("sessao-1")
	require.NoError(t, err)
	require.Len(t, historico, 2)
	assert.Equal(t, RoleUser, historico[0].Role)
	assert.Equal(t, "Bom dia", historico[0].Conteudo)
	assert.Equal(t, RoleAssistant, historico[1].Role)
	assert.Equal(t, "Olá! Como posso ajudar?", historico[1].Conteudo)
}

func TestEnviarJanelaDeContextoLimitadaADezMensagens(t *testing.T) {
	repo := &fakeRepository{}
	// 15 mensagens anteriores na sessão
	for i := 0; i < 15; i++ {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		repo.mensagens = append(repo.mensagens, Mensagem{
			ID:        uint(i + 1),
			SessionID: "sessao-cheia",
			Role:      role,
			Conteudo:  fmt.Sprintf("mensagem %d", i+1),
		})
	}

	client := &fakeLLM{resposta: "ok"}
	e := novoEngineDeTeste(repo, client, &fakeNotificador{})

	_, err := e.Enviar(context.Background(), "sessao-cheia", "última pergunta")
	require.NoError(t, err)

	// 1 instrução de sistema + no máximo 10 mensagens recentes
	require.Len(t, client.contexto, 11)
	assert.Equal(t, llm.RoleSystem, client.contexto[0].Role)
	// a janela termina na mensagem recém-enviada
	assert.Equal(t, "última pergunta", client.contexto[len(client.contexto)-1].Content)
	// a mais antiga da janela é a 7ª das 16 agora gravadas
	assert.Equal(t, "mensagem 7", client.contexto[1].Content)
}

func TestEnviarFallbackQuandoModeloFalha(t *testing.T) {
	repo := &fakeRepository{}
	client := &fakeLLM{err: fmt.Errorf("timeout")}
	e := novoEngineDeTeste(repo, client, &fakeNotificador{})

	resp, err := e.Enviar(context.Background(), "sessao-2", "Olá")
	require.NoError(t, err)
	assert.NotEmpty(t, resp)
	assert.Contains(t, resp, "(11) 4002-8922")

	// o texto de contingência também fica persistido como fala do assistente
	historico, _ := e.Historico("sessao-2")
	require.Len(t, historico, 2)
	assert.Equal(t, RoleAssistant, historico[1].Role)
	assert.Contains(t, historico[1].Conteudo, "(11) 4002-8922")
}

func TestEnviarFallbackQuandoRespostaVazia(t *testing.T) {
	repo := &fakeRepository{}
	client := &fakeLLM{resposta: ""}
	e := novoEngineDeTeste(repo, client, &fakeNotificador{})

	resp, err := e.Enviar(context.Background(), "sessao-3", "Olá")
	require.NoError(t, err)
	assert.Contains(t, resp, "(11) 4002-8922")
}

func TestEnviarNotificaIntencaoDeCompraUmaVez(t *testing.T) {
	repo := &fakeRepository{}
	client := &fakeLLM{resposta: "posso ajudar"}
	n := &fakeNotificador{}
	e := novoEngineDeTeste(repo, client, n)

	_, err := e.Enviar(context.Background(), "sessao-4", "QUANTO CUSTA abrir uma empresa?")
	require.NoError(t, err)
	esperarNotificacoes()
	assert.Len(t, n.chamadas, 1)
	assert.Contains(t, n.chamadas[0], "QUANTO CUSTA abrir uma empresa?")
}

func TestEnviarSemIntencaoNaoNotifica(t *testing.T) {
	repo := &fakeRepository{}
	client := &fakeLLM{resposta: "claro"}
	n := &fakeNotificador{}
	e := novoEngineDeTeste(repo, client, n)

	_, err := e.Enviar(context.Background(), "sessao-5", "Bom dia, tudo bem?")
	require.NoError(t, err)
	esperarNotificacoes()
	assert.Empty(t, n.chamadas)
}

func TestEnviarValidaArgumentos(t *testing.T) {
	e := novoEngineDeTeste(&fakeRepository{}, &fakeLLM{}, &fakeNotificador{})

	_, err := e.Enviar(context.Background(), "", "oi")
	assert.Error(t, err)

	_, err = e.Enviar(context.Background(), "sessao", "")
	assert.Error(t, err)
}

func TestEnviarPropagaFalhaDeGravacao(t *testing.T) {
	repo := &fakeRepository{falhar: true}
	e := novoEngineDeTeste(repo, &fakeLLM{resposta: "ok"}, &fakeNotificador{})

	_, err := e.Enviar(context.Background(), "sessao-6", "oi")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "erro ao gravar"))
}

func TestHistoricoEhSomenteLeitura(t *testing.T) {
	repo := &fakeRepository{mensagens: []Mensagem{
		{ID: 1, SessionID: "s", Role: RoleUser, Conteudo: "a"},
		{ID: 2, SessionID: "s", Role: RoleAssistant, Conteudo: "b"},
		{ID: 3, SessionID: "outra", Role: RoleUser, Conteudo: "c"},
	}}
	e := novoEngineDeTeste(repo, &fakeLLM{}, &fakeNotificador{})

	historico, err := e.Historico("s")
	require.NoError(t, err)
	require.Len(t, historico, 2)
	assert.Len(t, repo.mensagens, 3) // nada foi gravado
}
