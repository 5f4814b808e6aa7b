package servico

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrStatusTerminal sinaliza mutação sobre serviço concluído ou cancelado.
var ErrStatusTerminal = fmt.Errorf("serviço em estado terminal")

type Repository interface {
	Salvar(db *gorm.DB, s *Servico) error
	ListarTodos(db *gorm.DB) ([]Servico, error)
	ListarPorCliente(db *gorm.DB, clienteID uint) ([]Servico, error)
	BuscarPorID(db *gorm.DB, id uint) (*Servico, error)
	AtualizarStatus(db *gorm.DB, id uint, status, mensagem string, autorID uint) error
	ListarAtualizacoes(db *gorm.DB, servicoID uint) ([]Atualizacao, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, s *Servico) error {
	return db.Create(s).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Servico, error) {
	var list []Servico
	err := db.Preload("Atualizacoes").Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorCliente(db *gorm.DB, clienteID uint) ([]Servico, error) {
	var list []Servico
	err := db.Where("cliente_id = ?", clienteID).
		Preload("Atualizacoes").
		Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Servico, error) {
	var s Servico
	err := db.Preload("Atualizacoes").First(&s, id).Error
	return &s, err
}

// AtualizarStatus muda o estado do serviço e grava a Atualizacao de auditoria
// na mesma transação, mantendo o invariante "uma linha por transição".
func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status, mensagem string, autorID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existente Servico
		if err := tx.First(&existente, id).Error; err != nil {
			return err
		}
		if StatusTerminal(existente.Status) {
			return ErrStatusTerminal
		}

		existente.Status = status
		now := time.Now()
		switch status {
		case StatusInProgress:
			if existente.DataInicio == nil {
				existente.DataInicio = &now
			}
		case StatusCompleted:
			existente.DataConclusao = &now
		}
		if err := tx.Save(&existente).Error; err != nil {
			return err
		}

		atualizacao := Atualizacao{
			ServicoID: id,
			Status:    status,
			Mensagem:  mensagem,
			AutorID:   autorID,
		}
		return tx.Create(&atualizacao).Error
	})
}

func (r *repositoryImpl) ListarAtualizacoes(db *gorm.DB, servicoID uint) ([]Atualizacao, error) {
	var list []Atualizacao
	err := db.Where("servico_id = ?", servicoID).Order("created_at ASC").Find(&list).Error
	return list, err
}
