package lead

import (
	"time"

	"gorm.io/gorm"
)

// Origens possíveis de um lead.
const (
	SourceChatbot     = "chatbot"
	SourceContactForm = "contact_form"
	SourceWhatsapp    = "whatsapp"
)

// Funil de qualificação.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusConverted = "converted"
	StatusLost      = "lost"
)

// Lead representa um contato de prospecção capturado pelo site,
// pelo chatbot ou via WhatsApp.
type Lead struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Empresa  string `json:"empresa"`
	Mensagem string `json:"mensagem"`

	Source string `json:"source"` // "chatbot" | "contact_form" | "whatsapp"
	Status string `json:"status"` // funil: new → contacted → qualified → converted, lost

	// Colaborador responsável pelo atendimento (opcional)
	ResponsavelID *uint `json:"responsavelId,omitempty"`
}

// SourceValido confere se a origem informada é uma das aceitas.
func SourceValido(s string) bool {
	switch s {
	case SourceChatbot, SourceContactForm, SourceWhatsapp:
		return true
	}
	return false
}

// StatusValido confere se o status pertence ao enum do funil.
// Nenhuma ordem é imposta entre os estados: qualquer um dos cinco
// pode ser definido diretamente por um usuário autenticado.
func StatusValido(s string) bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusLost:
		return true
	}
	return false
}
