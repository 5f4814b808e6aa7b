package cliente

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, c *Cliente) error
	BuscarPorUsuario(db *gorm.DB, usuarioID uint) (*Cliente, error)
	BuscarPorID(db *gorm.DB, id uint) (*Cliente, error)
	ListarTodos(db *gorm.DB) ([]Cliente, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Cliente) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorUsuario(db *gorm.DB, usuarioID uint) (*Cliente, error) {
	var c Cliente
	err := db.Where("usuario_id = ?", usuarioID).First(&c).Error
	return &c, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cliente, error) {
	var c Cliente
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Cliente, error) {
	var list []Cliente
	err := db.Order("empresa ASC").Find(&list).Error
	return list, err
}
