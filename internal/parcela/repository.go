// internal/parcela/repository.go
package parcela

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de parcelas.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Salvar cria uma parcela.
func (r *Repository) Salvar(p *Parcela) error {
	return r.DB.Create(p).Error
}

// ListarTodas retorna todas as parcelas ordenadas por vencimento.
func (r *Repository) ListarTodas() ([]Parcela, error) {
	var parcelas []Parcela
	err := r.DB.Order("vencimento").Find(&parcelas).Error
	return parcelas, err
}

// AtualizarPagamento sobrescreve os dois flags de pagamento da parcela.
func (r *Repository) AtualizarPagamento(id uint, recebida, comissaoPaga bool) error {
	return r.DB.Model(&Parcela{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"recebida_pelo_cliente": recebida,
			"comissao_paga":         comissaoPaga,
		}).Error
}

// DeletarPorID apaga a parcela pelo ID.
func (r *Repository) DeletarPorID(id uint) error {
	return r.DB.Delete(&Parcela{}, id).Error
}
