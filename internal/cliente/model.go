package cliente

import "gorm.io/gorm"

// Cliente é o perfil empresarial de um usuário do portal (relação 1-1 com Usuario).
type Cliente struct {
	gorm.Model
	UsuarioID uint   `json:"usuarioId" gorm:"uniqueIndex"`
	Empresa   string `json:"empresa"`
	CNPJ      string `json:"cnpj"`
	CPF       string `json:"cpf"`
	Endereco  string `json:"endereco"`
	Cidade    string `json:"cidade"`
	UF        string `json:"uf"`
	Telefone  string `json:"telefone"`
}
