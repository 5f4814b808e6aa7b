package noticia

import (
	"time"

	"gorm.io/gorm"
)

// Categorias editoriais.
const (
	CategoriaTributario  = "tributario"
	CategoriaTrabalhista = "trabalhista"
	CategoriaContabil    = "contabil"
	CategoriaEmpresarial = "empresarial"
	CategoriaGeral       = "geral"
)

// Noticia é um conteúdo editorial publicado no site.
type Noticia struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Titulo   string `json:"titulo"`
	Resumo   string `json:"resumo"`
	Conteudo string `json:"conteudo"`
	Imagem   string `json:"imagem"`

	Categoria  string `json:"categoria"`
	IsFeatured bool   `json:"isFeatured"`
	IsActive   bool   `json:"isActive" gorm:"default:true"`

	// Contador monotônico, incrementado a cada visualização de detalhe.
	ViewCount uint `json:"viewCount"`

	AutorID *uint `json:"autorId,omitempty"`
}

// CategoriaValida confere se a categoria pertence ao enum.
func CategoriaValida(c string) bool {
	switch c {
	case CategoriaTributario, CategoriaTrabalhista, CategoriaContabil, CategoriaEmpresarial, CategoriaGeral:
		return true
	}
	return false
}
