package notificacao

import (
	"fmt"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
)

// Telegram envia notificações para o chat do responsável pelo escritório.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram inicializa o bot. Retorna erro se o token for inválido.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	if token == "" {
		return nil, fmt.Errorf("token Telegram não fornecido")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar Telegram Bot API: %w", err)
	}
	return &Telegram{api: api, chatID: chatID}, nil
}

func (t *Telegram) Notificar(titulo, conteudo string) error {
	msg := tgbotapi.NewMessage(t.chatID, fmt.Sprintf("*%s*\n\n%s", titulo, conteudo))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("erro ao enviar mensagem Telegram: %w", err)
	}
	return nil
}
