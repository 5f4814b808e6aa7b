package usuario

import "gorm.io/gorm"

// Usuario é a conta de acesso ao sistema (equipe, admin ou cliente do portal).
type Usuario struct {
	gorm.Model
	Nome  string `json:"nome"`
	Email string `json:"email" gorm:"unique"`
	Senha string `json:"-"`
	Role  string `json:"role"` // "admin" | "staff" | "client"
}
