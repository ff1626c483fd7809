// internal/oportunidade/dto.go
package oportunidade

import (
	"strconv"

	"github.com/ObjetivaSolucao/api-comissoes/internal/datas"
)

// CreateOportunidadeDTO é o corpo do POST /api/oportunidades. Valor líquido e
// comissão não são aceitos do cliente; são derivados no servidor.
type CreateOportunidadeDTO struct {
	Cliente        string  `json:"cliente"`
	Vendedor       string  `json:"vendedor"`
	TipoConta      string  `json:"tipoConta"`
	Mensalidade    float64 `json:"mensalidade"`
	Servicos       float64 `json:"servicos"`
	ValorTotal     float64 `json:"valorTotal"`
	DataFechamento string  `json:"dataFechamento"`
	Descricao      string  `json:"descricao"`
}

// OportunidadeDTO é a projeção de resposta.
type OportunidadeDTO struct {
	ID             string  `json:"id"`
	Cliente        string  `json:"cliente"`
	Vendedor       string  `json:"vendedor"`
	TipoConta      string  `json:"tipoConta"`
	Mensalidade    float64 `json:"mensalidade"`
	Servicos       float64 `json:"servicos"`
	ValorTotal     float64 `json:"valorTotal"`
	ValorLiquido   float64 `json:"valorLiquido"`
	Comissao       float64 `json:"comissao"`
	DataFechamento string  `json:"dataFechamento"`
	Descricao      string  `json:"descricao"`
	DataCadastro   string  `json:"dataCadastro"`
}

func toDTO(o Oportunidade) OportunidadeDTO {
	return OportunidadeDTO{
		ID:             strconv.FormatUint(uint64(o.ID), 10),
		Cliente:        o.Cliente,
		Vendedor:       o.Vendedor,
		TipoConta:      o.TipoConta,
		Mensalidade:    o.Mensalidade,
		Servicos:       o.Servicos,
		ValorTotal:     o.ValorTotal,
		ValorLiquido:   o.ValorLiquido,
		Comissao:       o.Comissao,
		DataFechamento: datas.FormatarBRPtr(o.DataFechamento),
		Descricao:      o.Descricao,
		DataCadastro:   datas.FormatarBRTime(o.DataCadastro),
	}
}
