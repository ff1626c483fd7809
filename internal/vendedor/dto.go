// internal/vendedor/dto.go
package vendedor

import (
	"strconv"

	"github.com/ObjetivaSolucao/api-comissoes/internal/datas"
)

// CreateVendedorDTO é o corpo do POST /api/vendedores.
type CreateVendedorDTO struct {
	Nome         string `json:"nome"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone"`
	DataAdmissao string `json:"dataAdmissao"`
	Observacoes  string `json:"observacoes"`
}

// VendedorDTO é a projeção de resposta: ids como string e datas no formato
// brasileiro.
type VendedorDTO struct {
	ID           string `json:"id"`
	Nome         string `json:"nome"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone"`
	DataAdmissao string `json:"dataAdmissao"`
	Observacoes  string `json:"observacoes"`
	DataCadastro string `json:"dataCadastro"`
}

func toDTO(v Vendedor) VendedorDTO {
	return VendedorDTO{
		ID:           strconv.FormatUint(uint64(v.ID), 10),
		Nome:         v.Nome,
		Email:        v.Email,
		Telefone:     v.Telefone,
		DataAdmissao: datas.FormatarBRPtr(v.DataAdmissao),
		Observacoes:  v.Observacoes,
		DataCadastro: datas.FormatarBRTime(v.DataCadastro),
	}
}
