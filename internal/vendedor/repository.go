// internal/vendedor/repository.go
package vendedor

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de vendedores.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Salvar cria um vendedor; email duplicado viola o índice único.
func (r *Repository) Salvar(v *Vendedor) error {
	return r.DB.Create(v).Error
}

// ListarTodos retorna todos os vendedores ordenados por nome.
func (r *Repository) ListarTodos() ([]Vendedor, error) {
	var vendedores []Vendedor
	err := r.DB.Order("nome").Find(&vendedores).Error
	return vendedores, err
}

// BuscarPorEmail busca um vendedor pelo email.
func (r *Repository) BuscarPorEmail(email string) (*Vendedor, error) {
	var v Vendedor
	if err := r.DB.Where("email = ?", email).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// DeletarPorID apaga o vendedor pelo ID.
func (r *Repository) DeletarPorID(id uint) error {
	return r.DB.Delete(&Vendedor{}, id).Error
}
