package equipe

import (
	"time"

	"gorm.io/gorm"
)

// Departamentos do escritório.
const (
	DepartamentoFiscal    = "fiscal"
	DepartamentoContabil  = "contabil"
	DepartamentoPessoal   = "pessoal"
	DepartamentoParalegal = "paralegal"
)

// Colaborador é um membro da equipe do escritório.
// Desativação é sempre lógica: a linha permanece com IsActive=false.
type Colaborador struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome         string `json:"nome"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone"`
	Departamento string `json:"departamento"` // fiscal | contabil | pessoal | paralegal
	Cargo        string `json:"cargo"`

	IsActive bool `json:"isActive" gorm:"default:true"`

	// Presença consultada no Redis a cada requisição; nunca persistida aqui.
	IsOnline bool `json:"isOnline" gorm:"-"`
}

// DepartamentoValido confere se o departamento é um dos quatro aceitos.
func DepartamentoValido(d string) bool {
	switch d {
	case DepartamentoFiscal, DepartamentoContabil, DepartamentoPessoal, DepartamentoParalegal:
		return true
	}
	return false
}
