package agendamento

import (
	"time"

	"gorm.io/gorm"
)

// Estados de um agendamento.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Agendamento representa uma reunião marcada entre um prospect/cliente
// e o escritório.
type Agendamento struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`

	DataAgendada time.Time `json:"dataAgendada"`
	Duracao      int       `json:"duracao"` // minutos
	Assunto      string    `json:"assunto"`
	Observacoes  string    `json:"observacoes"`

	Status string `json:"status"` // pending → confirmed → completed; cancelled

	ResponsavelID *uint `json:"responsavelId,omitempty"`
}

// StatusValido confere se o status pertence ao enum.
func StatusValido(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// StatusTerminal indica estados que não aceitam mais mutação.
func StatusTerminal(s string) bool {
	return s == StatusCompleted || s == StatusCancelled
}
