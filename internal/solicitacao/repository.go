package solicitacao

import (
	"fmt"

	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/servico"
	"gorm.io/gorm"
)

// ErrJaConvertida sinaliza mutação sobre solicitação já convertida em serviço.
var ErrJaConvertida = fmt.Errorf("solicitação já convertida")

type Repository interface {
	Salvar(db *gorm.DB, s *Solicitacao) error
	ListarTodas(db *gorm.DB) ([]Solicitacao, error)
	ListarPorCliente(db *gorm.DB, clienteID uint) ([]Solicitacao, error)
	BuscarPorID(db *gorm.DB, id uint) (*Solicitacao, error)
	AtualizarStatus(db *gorm.DB, id uint, status string) error
	Converter(db *gorm.DB, id uint, prioridade string) (*servico.Servico, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, s *Solicitacao) error {
	return db.Create(s).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Solicitacao, error) {
	var list []Solicitacao
	err := db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorCliente(db *gorm.DB, clienteID uint) ([]Solicitacao, error) {
	var list []Solicitacao
	err := db.Where("cliente_id = ?", clienteID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Solicitacao, error) {
	var s Solicitacao
	err := db.First(&s, id).Error
	return &s, err
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status string) error {
	var existente Solicitacao
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	// uma vez convertida, status e vínculo ficam congelados
	if existente.Status == StatusConverted {
		return ErrJaConvertida
	}
	existente.Status = status
	return db.Save(&existente).Error
}

// Converter promove a solicitação a um Servico do cliente. O serviço criado
// e a marcação da solicitação acontecem na mesma transação.
func (r *repositoryImpl) Converter(db *gorm.DB, id uint, prioridade string) (*servico.Servico, error) {
	var novo *servico.Servico
	err := db.Transaction(func(tx *gorm.DB) error {
		var existente Solicitacao
		if err := tx.First(&existente, id).Error; err != nil {
			return err
		}
		if existente.Status == StatusConverted {
			return ErrJaConvertida
		}

		s := servico.Servico{
			ClienteID:  existente.ClienteID,
			Nome:       existente.Titulo,
			Descricao:  existente.Descricao,
			Status:     servico.StatusPending,
			Prioridade: prioridade,
		}
		if err := tx.Create(&s).Error; err != nil {
			return err
		}

		existente.Status = StatusConverted
		existente.ConvertidaEmServicoID = &s.ID
		if err := tx.Save(&existente).Error; err != nil {
			return err
		}

		novo = &s
		return nil
	})
	return novo, err
}
