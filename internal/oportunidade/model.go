// internal/oportunidade/model.go
package oportunidade

import (
	"time"

	"gorm.io/gorm"
)

// Oportunidade representa uma oportunidade de venda fechada. O campo vendedor
// é texto livre, sem chave estrangeira para a tabela de vendedores. Valor
// líquido e comissão são calculados na criação e nunca recalculados.
type Oportunidade struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Cliente        string    `gorm:"not null" json:"cliente"`
	Vendedor       string    `gorm:"not null" json:"vendedor"`
	TipoConta      string    `gorm:"not null" json:"tipoConta"`
	Mensalidade    float64   `gorm:"not null;default:0" json:"mensalidade"`
	Servicos       float64   `gorm:"not null;default:0" json:"servicos"`
	ValorTotal     float64   `gorm:"not null" json:"valorTotal"`
	ValorLiquido   float64   `gorm:"not null" json:"valorLiquido"`
	Comissao       float64   `gorm:"not null" json:"comissao"`
	DataFechamento *string   `json:"dataFechamento"`
	Descricao      string    `json:"descricao"`
	DataCadastro   time.Time `gorm:"autoCreateTime" json:"dataCadastro"`
}

// TableName fixa o nome da tabela.
func (Oportunidade) TableName() string { return "oportunidades" }

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Oportunidade{})
}
