// internal/parcela/model.go
package parcela

import (
	"time"

	"gorm.io/gorm"
)

// Parcela representa uma parcela de pagamento de uma oportunidade. O vínculo
// com a oportunidade é opcional e não há enforcement de integridade
// referencial no banco. Valor líquido e comissão derivam do valor bruto da
// própria parcela, independentes dos totais da oportunidade.
type Parcela struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	OportunidadeID      *uint     `gorm:"index" json:"oportunidadeId"`
	Cliente             string    `gorm:"not null" json:"cliente"`
	Vendedor            string    `gorm:"not null" json:"vendedor"`
	Numero              string    `gorm:"not null" json:"numero"`
	Valor               float64   `gorm:"not null" json:"valor"`
	ValorLiquido        float64   `gorm:"not null" json:"valorLiquido"`
	Vencimento          *string   `json:"vencimento"`
	PagamentoComissao   *string   `json:"pagamentoComissao"`
	Comissao            float64   `gorm:"not null" json:"comissao"`
	Observacoes         string    `json:"observacoes"`
	PrimeiraMensalidade bool      `gorm:"not null;default:false" json:"primeiraMensalidade"`
	RecebidaPeloCliente bool      `gorm:"not null;default:false" json:"recebidaPeloCliente"`
	ComissaoPaga        bool      `gorm:"not null;default:false" json:"comissaoPaga"`
	DataCadastro        time.Time `gorm:"autoCreateTime" json:"dataCadastro"`
}

// TableName fixa o nome da tabela.
func (Parcela) TableName() string { return "parcelas" }

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parcela{})
}
