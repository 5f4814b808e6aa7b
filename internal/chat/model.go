package chat

import "time"

// Papéis de uma mensagem de chat.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Mensagem é uma fala persistida de uma sessão de chat. Append-only;
// a ordem é a ordem de gravação.
type Mensagem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	SessionID string `json:"sessionId" gorm:"index"`
	Role      string `json:"role"` // "user" | "assistant"
	Conteudo  string `json:"conteudo"`
}

// TableName fixa o nome da tabela para não colidir com outras "mensagens".
func (Mensagem) TableName() string { return "chat_mensagens" }
