package agendamento

import (
	"fmt"

	"gorm.io/gorm"
)

// ErrStatusTerminal sinaliza tentativa de mutação sobre um agendamento
// já concluído ou cancelado.
var ErrStatusTerminal = fmt.Errorf("agendamento em estado terminal")

type Repository interface {
	Salvar(db *gorm.DB, a *Agendamento) error
	ListarTodos(db *gorm.DB) ([]Agendamento, error)
	BuscarPorID(db *gorm.DB, id uint) (*Agendamento, error)
	AtualizarStatus(db *gorm.DB, id uint, status string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, a *Agendamento) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Agendamento, error) {
	var list []Agendamento
	err := db.Order("data_agendada ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Agendamento, error) {
	var a Agendamento
	err := db.First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status string) error {
	var existente Agendamento
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	// completed e cancelled são terminais
	if StatusTerminal(existente.Status) {
		return ErrStatusTerminal
	}
	existente.Status = status
	return db.Save(&existente).Error
}
