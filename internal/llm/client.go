// Package llm fala com uma API de chat-completions compatível com OpenAI.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Papéis aceitos na montagem do contexto.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Mensagem é um turno rotulado enviado ao modelo.
type Mensagem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client produz a próxima fala do assistente dado o contexto ordenado.
type Client interface {
	Completar(ctx context.Context, mensagens []Mensagem) (string, error)
}

// timeout da chamada ao provedor; estouro vira erro e o chat usa o fallback
const timeoutPadrao = 20 * time.Second

// HTTPClient implementa Client sobre o endpoint /chat/completions.
type HTTPClient struct {
	BaseURL string
	APIKey  string
	Model   string
	HTTP    *http.Client
}

func NewHTTPClient(baseURL, apiKey, model string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		HTTP:    &http.Client{Timeout: timeoutPadrao},
	}
}

type completionRequest struct {
	Model    string     `json:"model"`
	Messages []Mensagem `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *HTTPClient) Completar(ctx context.Context, mensagens []Mensagem) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:    c.Model,
		Messages: mensagens,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao montar requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro na chamada ao modelo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("modelo respondeu %d: %s", resp.StatusCode, raw)
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("erro ao decodificar resposta: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("resposta sem conteúdo")
	}

	return parsed.Choices[0].Message.Content, nil
}
