package notificacao

import "log"

// Notificador entrega um aviso curto (título + conteúdo) ao escritório.
// Entrega é melhor-esforço: falhas são logadas e nunca propagadas.
type Notificador interface {
	Notificar(titulo, conteudo string) error
}

// Multi repassa a notificação para todos os canais configurados.
type Multi []Notificador

func (m Multi) Notificar(titulo, conteudo string) error {
	for _, n := range m {
		if err := n.Notificar(titulo, conteudo); err != nil {
			log.Printf("Erro ao enviar notificação: %v", err)
		}
	}
	return nil
}

// Assinc dispara a notificação em uma goroutine separada, fora do caminho
// da requisição. O chamador nunca espera nem vê o resultado.
func Assinc(n Notificador, titulo, conteudo string) {
	if n == nil {
		return
	}
	go func() {
		if err := n.Notificar(titulo, conteudo); err != nil {
			log.Printf("Erro ao enviar notificação: %v", err)
		}
	}()
}
