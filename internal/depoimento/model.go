package depoimento

import "gorm.io/gorm"

// Depoimento é um relato de cliente exibido no site.
type Depoimento struct {
	gorm.Model
	NomeCliente string `json:"nomeCliente"`
	Empresa     string `json:"empresa"`
	Conteudo    string `json:"conteudo"`
	Nota        int    `json:"nota"` // 1 a 5
	IsActive    bool   `json:"isActive" gorm:"default:true"`
}
