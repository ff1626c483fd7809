// internal/oportunidade/repository.go
package oportunidade

import (
	"github.com/ObjetivaSolucao/api-comissoes/internal/parcela"
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de oportunidades.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Salvar cria uma oportunidade.
func (r *Repository) Salvar(o *Oportunidade) error {
	return r.DB.Create(o).Error
}

// ListarTodas retorna todas as oportunidades, mais recentes primeiro.
func (r *Repository) ListarTodas() ([]Oportunidade, error) {
	var oportunidades []Oportunidade
	err := r.DB.Order("data_cadastro DESC").Find(&oportunidades).Error
	return oportunidades, err
}

// DeletarComParcelas apaga as parcelas vinculadas e a oportunidade dentro de
// uma única transação; qualquer falha desfaz as duas exclusões.
func (r *Repository) DeletarComParcelas(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("oportunidade_id = ?", id).Delete(&parcela.Parcela{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Oportunidade{}, id).Error
	})
}
