// internal/usuario/model.go
package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario é a tabela de contas individuais. Ela é criada na migração mas o
// fluxo de login atual não a consulta: a autenticação usa a tabela fixa de
// credenciais e o cadastro de vendedores. Mantida para o futuro cadastro de
// contas por usuário.
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"not null" json:"nome"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Senha     string    `gorm:"not null" json:"-"`
	Tipo      string    `gorm:"not null;default:'vendedor'" json:"tipo"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName fixa o nome da tabela.
func (Usuario) TableName() string { return "usuarios" }

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
