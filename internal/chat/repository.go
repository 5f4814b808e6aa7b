package chat

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, m *Mensagem) error
	ListarPorSessao(db *gorm.DB, sessionID string) ([]Mensagem, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, m *Mensagem) error {
	return db.Create(m).Error
}

func (r *repositoryImpl) ListarPorSessao(db *gorm.DB, sessionID string) ([]Mensagem, error) {
	var list []Mensagem
	err := db.Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, err
}
