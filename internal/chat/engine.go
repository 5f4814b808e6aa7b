package chat

import (
	"context"
	"fmt"
	"log"

	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/llm"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/notificacao"
	"gorm.io/gorm"
)

// janela de contexto enviada ao modelo: as 10 mensagens mais recentes
const janelaContexto = 10

// instrução fixa que abre todo contexto enviado ao modelo
const promptSistema = `Você é o assistente virtual do Contexto Contábil, um escritório de contabilidade brasileiro.
Atendemos empresas de todos os portes nas áreas fiscal, contábil, departamento pessoal e paralegal.
Responda de forma cordial e objetiva, em português, sobre abertura de empresas, obrigações fiscais,
folha de pagamento, regularização e nossos serviços. Quando o visitante quiser contratar ou pedir
orçamento, oriente-o a deixar seus dados de contato ou agendar uma conversa pela página de contato.
Não invente valores nem prazos; para casos específicos, indique o atendimento humano.`

// Engine mantém a conversa por sessão e produz a próxima fala do assistente.
// Sem estado em memória entre chamadas: a sessão inteira vive no banco,
// identificada pelo sessionId fornecido pelo chamador.
type Engine struct {
	DB          *gorm.DB
	Repository  Repository
	LLM         llm.Client
	Notificador notificacao.Notificador

	// telefone humano incluído na resposta de contingência
	TelefoneContato string
}

func NewEngine(db *gorm.DB, client llm.Client, n notificacao.Notificador, telefone string) *Engine {
	return &Engine{
		DB:          db,
		Repository:  NewRepository(),
		LLM:         client,
		Notificador: n,
		TelefoneContato: telefone,
	}
}

// fallback devolve o texto fixo usado quando o modelo falha ou responde vazio.
func (e *Engine) fallback() string {
	return fmt.Sprintf("Desculpe, estou com dificuldades técnicas no momento. "+
		"Por favor, tente novamente em instantes ou fale com nossa equipe pelo telefone %s.",
		e.TelefoneContato)
}

// Enviar grava a mensagem do visitante, consulta o modelo com a janela de
// contexto e devolve a resposta do assistente. Nunca propaga falha do modelo:
// em qualquer problema a resposta é o texto de contingência, também persistido.
func (e *Engine) Enviar(ctx context.Context, sessionID, mensagem string) (string, error) {
	if sessionID == "" || mensagem == "" {
		return "", fmt.Errorf("sessionId e mensagem são obrigatórios")
	}

	msgUsuario := Mensagem{SessionID: sessionID, Role: RoleUser, Conteudo: mensagem}
	if err := e.Repository.Salvar(e.DB, &msgUsuario); err != nil {
		return "", fmt.Errorf("erro ao gravar mensagem: %w", err)
	}

	historico, err := e.Repository.ListarPorSessao(e.DB, sessionID)
	if err != nil {
		return "", fmt.Errorf("erro ao carregar histórico: %w", err)
	}

	// janela: só as mais recentes, mantendo a ordem cronológica
	if len(historico) > janelaContexto {
		historico = historico[len(historico)-janelaContexto:]
	}

	contexto := make([]llm.Mensagem, 0, len(historico)+1)
	contexto = append(contexto, llm.Mensagem{Role: llm.RoleSystem, Content: promptSistema})
	for _, m := range historico {
		contexto = append(contexto, llm.Mensagem{Role: m.Role, Content: m.Conteudo})
	}

	resposta, err := e.LLM.Completar(ctx, contexto)
	if err != nil || resposta == "" {
		if err != nil {
			log.Printf("Erro na chamada ao modelo (sessão %s): %v", sessionID, err)
		}
		resposta = e.fallback()
	}

	msgAssistente := Mensagem{SessionID: sessionID, Role: RoleAssistant, Conteudo: resposta}
	if err := e.Repository.Salvar(e.DB, &msgAssistente); err != nil {
		// a resposta já existe; histórico incompleto é preferível a falhar o chat
		log.Printf("Erro ao gravar resposta do assistente (sessão %s): %v", sessionID, err)
	}

	// detecção de intenção sobre a mensagem crua do visitante; notifica a
	// equipe mas não cria lead automaticamente
	if TemIntencaoDeCompra(mensagem) {
		notificacao.Assinc(e.Notificador, "Possível interesse de contratação no chat",
			fmt.Sprintf("Sessão: %s\nMensagem: %s", sessionID, mensagem))
	}

	return resposta, nil
}

// Historico devolve todas as mensagens da sessão em ordem cronológica.
// Leitura pura, sem efeitos colaterais.
func (e *Engine) Historico(sessionID string) ([]Mensagem, error) {
	return e.Repository.ListarPorSessao(e.DB, sessionID)
}
