package documento

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, d *Documento) error
	ListarPorCliente(db *gorm.DB, clienteID uint) ([]Documento, error)
	BuscarPorID(db *gorm.DB, id uint) (*Documento, error)
	MarcarProcessado(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, d *Documento) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) ListarPorCliente(db *gorm.DB, clienteID uint) ([]Documento, error) {
	var list []Documento
	err := db.Where("cliente_id = ?", clienteID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Documento, error) {
	var d Documento
	err := db.First(&d, id).Error
	return &d, err
}

func (r *repositoryImpl) MarcarProcessado(db *gorm.DB, id uint) error {
	var existente Documento
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	existente.IsProcessed = true
	return db.Save(&existente).Error
}
