// internal/dashboard/repository.go
package dashboard

import (
	"github.com/ObjetivaSolucao/api-comissoes/internal/oportunidade"
	"github.com/ObjetivaSolucao/api-comissoes/internal/parcela"
	"github.com/ObjetivaSolucao/api-comissoes/internal/vendedor"
	"gorm.io/gorm"
)

// Totais agrega as contagens e somas exibidas no painel.
type Totais struct {
	TotalOportunidades int64
	TotalVendedores    int64
	TotalParcelas      int64
	ParcelasPagas      int64
	TotalComissoes     float64
	ComissoesPagas     float64
}

// Repository calcula os agregados do painel. Sem cache: cada chamada refaz
// todas as consultas.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Calcular executa as contagens e somas contra o banco.
func (r *Repository) Calcular() (*Totais, error) {
	var t Totais

	if err := r.DB.Model(&oportunidade.Oportunidade{}).Count(&t.TotalOportunidades).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&vendedor.Vendedor{}).Count(&t.TotalVendedores).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&parcela.Parcela{}).Count(&t.TotalParcelas).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&parcela.Parcela{}).
		Where("comissao_paga = ?", true).
		Count(&t.ParcelasPagas).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&parcela.Parcela{}).
		Select("COALESCE(SUM(comissao), 0)").
		Scan(&t.TotalComissoes).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&parcela.Parcela{}).
		Where("comissao_paga = ?", true).
		Select("COALESCE(SUM(comissao), 0)").
		Scan(&t.ComissoesPagas).Error; err != nil {
		return nil, err
	}

	return &t, nil
}
