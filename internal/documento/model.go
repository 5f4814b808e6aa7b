package documento

import (
	"time"

	"gorm.io/gorm"
)

// Documento é a referência a um arquivo enviado pelo cliente e guardado
// no armazenamento de objetos. A linha guarda apenas a chave/URL.
type Documento struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	ClienteID uint  `json:"clienteId"`
	ServicoID *uint `json:"servicoId,omitempty"`

	NomeArquivo string `json:"nomeArquivo"`
	Chave       string `json:"chave"` // chave do objeto no bucket
	Tamanho     int64  `json:"tamanho"`
	ContentType string `json:"contentType"`

	// Só a equipe marca como processado.
	IsProcessed bool `json:"isProcessed"`
}
