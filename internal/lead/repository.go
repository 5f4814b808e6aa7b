package lead

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, l *Lead) error
	ListarTodos(db *gorm.DB) ([]Lead, error)
	BuscarPorID(db *gorm.DB, id uint) (*Lead, error)
	AtualizarStatus(db *gorm.DB, id uint, status string) error
	Atribuir(db *gorm.DB, id uint, responsavelID *uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, l *Lead) error {
	return db.Create(l).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Lead, error) {
	var list []Lead
	err := db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Lead, error) {
	var l Lead
	err := db.First(&l, id).Error
	return &l, err
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status string) error {
	var existente Lead
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	existente.Status = status
	return db.Save(&existente).Error
}

func (r *repositoryImpl) Atribuir(db *gorm.DB, id uint, responsavelID *uint) error {
	var existente Lead
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	existente.ResponsavelID = responsavelID
	return db.Save(&existente).Error
}
