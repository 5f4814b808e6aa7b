package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemIntencaoDeCompra(t *testing.T) {
	casos := []struct {
		texto   string
		espera  bool
	}{
		{"quero contratar o serviço de vocês", true},
		{"Qual o PREÇO da contabilidade mensal?", true},
		{"quanto custa abrir um MEI?", true},
		{"Gostaria de um orçamento", true},
		{"preciso de ajuda com a folha", true},
		{"Tenho interesse nos serviços", true},
		{"bom dia, tudo bem?", false},
		{"como funciona o simples nacional?", false},
		{"", false},
	}

	for _, c := range casos {
		assert.Equal(t, c.espera, TemIntencaoDeCompra(c.texto), "texto: %q", c.texto)
	}
}
