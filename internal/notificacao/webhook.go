package notificacao

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Webhook envia alertas em JSON para uma URL configurada (ex.: canal interno).
type Webhook struct {
	URL    string
	Client *http.Client
}

func NewWebhook(url string) *Webhook {
	return &Webhook{URL: url, Client: http.DefaultClient}
}

func (wh *Webhook) Notificar(titulo, conteudo string) error {
	if wh.URL == "" {
		return nil
	}
	payload := map[string]string{
		"titulo":   titulo,
		"mensagem": conteudo,
	}
	body, _ := json.Marshal(payload)

	resp, err := wh.Client.Post(wh.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("erro ao enviar webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook respondeu %d", resp.StatusCode)
	}
	return nil
}
