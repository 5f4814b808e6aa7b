package equipe

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, c *Colaborador) error
	ListarTodos(db *gorm.DB) ([]Colaborador, error)
	ListarAtivos(db *gorm.DB) ([]Colaborador, error)
	ListarPorDepartamento(db *gorm.DB, departamento string) ([]Colaborador, error)
	BuscarPorID(db *gorm.DB, id uint) (*Colaborador, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Colaborador) error
	DefinirAtivo(db *gorm.DB, id uint, ativo bool) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Colaborador) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Colaborador, error) {
	var list []Colaborador
	err := db.Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarAtivos(db *gorm.DB) ([]Colaborador, error) {
	var list []Colaborador
	err := db.Where("is_active = ?", true).Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorDepartamento(db *gorm.DB, departamento string) ([]Colaborador, error) {
	var list []Colaborador
	err := db.Where("is_active = ? AND departamento = ?", true, departamento).
		Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Colaborador, error) {
	var c Colaborador
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Colaborador) error {
	var existente Colaborador
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Email = novosDados.Email
	existente.Telefone = novosDados.Telefone
	existente.Departamento = novosDados.Departamento
	existente.Cargo = novosDados.Cargo

	return db.Save(&existente).Error
}

// DefinirAtivo liga/desliga o colaborador sem nunca remover a linha.
func (r *repositoryImpl) DefinirAtivo(db *gorm.DB, id uint, ativo bool) error {
	var existente Colaborador
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	existente.IsActive = ativo
	return db.Save(&existente).Error
}
