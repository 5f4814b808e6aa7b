package noticia

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, n *Noticia) error
	Listar(db *gorm.DB, limite, offset int) ([]Noticia, error)
	Destaques(db *gorm.DB) ([]Noticia, error)
	PorCategoria(db *gorm.DB, categoria string) ([]Noticia, error)
	BuscarPorID(db *gorm.DB, id uint) (*Noticia, error)
	IncrementarVisualizacoes(db *gorm.DB, id uint) error
	Buscar(db *gorm.DB, termo string) ([]Noticia, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Noticia) error
	DefinirAtiva(db *gorm.DB, id uint, ativa bool) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, n *Noticia) error {
	return db.Create(n).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB, limite, offset int) ([]Noticia, error) {
	var list []Noticia
	err := db.Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limite).Offset(offset).
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Destaques(db *gorm.DB) ([]Noticia, error) {
	var list []Noticia
	err := db.Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) PorCategoria(db *gorm.DB, categoria string) ([]Noticia, error) {
	var list []Noticia
	err := db.Where("is_active = ? AND categoria = ?", true, categoria).
		Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Noticia, error) {
	var n Noticia
	err := db.First(&n, id).Error
	return &n, err
}

// IncrementarVisualizacoes soma 1 ao contador direto no banco, evitando
// perder incrementos entre leituras concorrentes.
func (r *repositoryImpl) IncrementarVisualizacoes(db *gorm.DB, id uint) error {
	return db.Model(&Noticia{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *repositoryImpl) Buscar(db *gorm.DB, termo string) ([]Noticia, error) {
	var list []Noticia
	padrao := "%" + termo + "%"
	err := db.Where("is_active = ? AND (titulo ILIKE ? OR conteudo ILIKE ?)", true, padrao, padrao).
		Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Noticia) error {
	var existente Noticia
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Titulo = novosDados.Titulo
	existente.Resumo = novosDados.Resumo
	existente.Conteudo = novosDados.Conteudo
	existente.Imagem = novosDados.Imagem
	existente.Categoria = novosDados.Categoria
	existente.IsFeatured = novosDados.IsFeatured

	return db.Save(&existente).Error
}

func (r *repositoryImpl) DefinirAtiva(db *gorm.DB, id uint, ativa bool) error {
	var existente Noticia
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	existente.IsActive = ativa
	return db.Save(&existente).Error
}
