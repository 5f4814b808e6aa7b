package servico

import (
	"time"

	"gorm.io/gorm"
)

// Estados de um serviço contratado.
const (
	StatusPending      = "pending"
	StatusInProgress   = "in_progress"
	StatusAwaitingDocs = "awaiting_docs"
	StatusReview       = "review"
	StatusCompleted    = "completed"
	StatusCancelled    = "cancelled"
)

// Prioridades.
const (
	PrioridadeLow    = "low"
	PrioridadeMedium = "medium"
	PrioridadeHigh   = "high"
	PrioridadeUrgent = "urgent"
)

// Servico é um serviço contratado por um cliente do portal.
type Servico struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	ClienteID uint   `json:"clienteId"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`

	Status     string `json:"status"`     // pending → in_progress → awaiting_docs → review → completed; cancelled
	Prioridade string `json:"prioridade"` // low | medium | high | urgent

	DataInicio    *time.Time `json:"dataInicio,omitempty"`
	DataPrazo     *time.Time `json:"dataPrazo,omitempty"`
	DataConclusao *time.Time `json:"dataConclusao,omitempty"`

	ResponsavelID *uint `json:"responsavelId,omitempty"`

	// Trilha de auditoria: toda mudança de status gera uma Atualizacao.
	Atualizacoes []Atualizacao `gorm:"foreignKey:ServicoID;constraint:OnDelete:CASCADE" json:"atualizacoes,omitempty"`
}

// Atualizacao é o registro append-only de uma mudança de status.
type Atualizacao struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	ServicoID uint   `json:"servicoId"`
	Status    string `json:"status"`
	Mensagem  string `json:"mensagem"`
	AutorID   uint   `json:"autorId"` // colaborador que efetuou a mudança
}

// StatusValido confere se o status pertence ao enum.
func StatusValido(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusAwaitingDocs, StatusReview, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// StatusTerminal indica estados que encerram o ciclo de vida do serviço.
func StatusTerminal(s string) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// PrioridadeValida confere se a prioridade pertence ao enum.
func PrioridadeValida(p string) bool {
	switch p {
	case PrioridadeLow, PrioridadeMedium, PrioridadeHigh, PrioridadeUrgent:
		return true
	}
	return false
}
