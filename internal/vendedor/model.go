// internal/vendedor/model.go
package vendedor

import (
	"time"

	"gorm.io/gorm"
)

// Vendedor representa um vendedor cadastrado. Datas de admissão são guardadas
// como texto ISO (YYYY-MM-DD); a API fala DD/MM/YYYY.
type Vendedor struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nome         string    `gorm:"not null" json:"nome"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Telefone     string    `json:"telefone"`
	DataAdmissao *string   `json:"dataAdmissao"`
	Observacoes  string    `json:"observacoes"`
	DataCadastro time.Time `gorm:"autoCreateTime" json:"dataCadastro"`
}

// TableName fixa o nome da tabela.
func (Vendedor) TableName() string { return "vendedores" }

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Vendedor{})
}
