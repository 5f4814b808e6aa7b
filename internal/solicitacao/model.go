package solicitacao

import (
	"time"

	"gorm.io/gorm"
)

// Estados de uma solicitação de serviço.
const (
	StatusPending   = "pending"
	StatusInReview  = "in_review"
	StatusApproved  = "approved"
	StatusConverted = "converted"
	StatusRejected  = "rejected"
)

// Solicitacao é um pedido do cliente por um novo serviço. Pode terminar
// convertida em um Servico, quando ConvertidaEmServicoID é preenchido e
// passa a ser imutável.
type Solicitacao struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	ClienteID uint   `json:"clienteId"`
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`

	Status string `json:"status"` // pending | in_review | approved | converted | rejected

	ConvertidaEmServicoID *uint `json:"convertedToServiceId,omitempty"`
}

// StatusValido confere se o status pertence ao enum.
func StatusValido(s string) bool {
	switch s {
	case StatusPending, StatusInReview, StatusApproved, StatusConverted, StatusRejected:
		return true
	}
	return false
}
