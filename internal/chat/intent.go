package chat

import "strings"

// Palavras que sinalizam intenção de contratação. Varredura simples por
// substring, isolada aqui para poder ser trocada por um classificador
// sem mexer no fluxo do engine.
var palavrasDeIntencao = []string{
	"contratar",
	"orçamento",
	"preço",
	"valor",
	"quanto custa",
	"interesse",
	"quero",
	"preciso de",
}

// TemIntencaoDeCompra detecta, sem diferenciar maiúsculas, se a mensagem
// sugere interesse em contratar os serviços.
func TemIntencaoDeCompra(texto string) bool {
	t := strings.ToLower(texto)
	for _, p := range palavrasDeIntencao {
		if strings.Contains(t, p) {
			return true
		}
	}
	return false
}
