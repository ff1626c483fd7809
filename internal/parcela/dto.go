// internal/parcela/dto.go
package parcela

import (
	"strconv"

	"github.com/ObjetivaSolucao/api-comissoes/internal/datas"
)

// CreateParcelaDTO é o corpo do POST /api/parcelas. O id da oportunidade
// trafega como string, como todos os ids da API.
type CreateParcelaDTO struct {
	OportunidadeID      string  `json:"oportunidadeId"`
	Cliente             string  `json:"cliente"`
	Vendedor            string  `json:"vendedor"`
	Numero              string  `json:"numero"`
	Valor               float64 `json:"valor"`
	Vencimento          string  `json:"vencimento"`
	PagamentoComissao   string  `json:"pagamentoComissao"`
	Observacoes         string  `json:"observacoes"`
	PrimeiraMensalidade bool    `json:"primeiraMensalidade"`
	RecebidaPeloCliente bool    `json:"recebidaPeloCliente"`
	ComissaoPaga        bool    `json:"comissaoPaga"`
}

// UpdatePagamentoDTO é o corpo do PUT /api/parcelas/{id}: apenas os dois
// flags de pagamento são mutáveis após a criação.
type UpdatePagamentoDTO struct {
	RecebidaPeloCliente bool `json:"recebidaPeloCliente"`
	ComissaoPaga        bool `json:"comissaoPaga"`
}

// ParcelaDTO é a projeção de resposta.
type ParcelaDTO struct {
	ID                  string  `json:"id"`
	OportunidadeID      string  `json:"oportunidadeId"`
	Cliente             string  `json:"cliente"`
	Vendedor            string  `json:"vendedor"`
	Numero              string  `json:"numero"`
	Valor               float64 `json:"valor"`
	ValorLiquido        float64 `json:"valorLiquido"`
	Vencimento          string  `json:"vencimento"`
	PagamentoComissao   string  `json:"pagamentoComissao"`
	Comissao            float64 `json:"comissao"`
	Observacoes         string  `json:"observacoes"`
	PrimeiraMensalidade bool    `json:"primeiraMensalidade"`
	RecebidaPeloCliente bool    `json:"recebidaPeloCliente"`
	ComissaoPaga        bool    `json:"comissaoPaga"`
	DataCadastro        string  `json:"dataCadastro"`
}

func toDTO(p Parcela) ParcelaDTO {
	oportunidadeID := ""
	if p.OportunidadeID != nil {
		oportunidadeID = strconv.FormatUint(uint64(*p.OportunidadeID), 10)
	}
	return ParcelaDTO{
		ID:                  strconv.FormatUint(uint64(p.ID), 10),
		OportunidadeID:      oportunidadeID,
		Cliente:             p.Cliente,
		Vendedor:            p.Vendedor,
		Numero:              p.Numero,
		Valor:               p.Valor,
		ValorLiquido:        p.ValorLiquido,
		Vencimento:          datas.FormatarBRPtr(p.Vencimento),
		PagamentoComissao:   datas.FormatarBRPtr(p.PagamentoComissao),
		Comissao:            p.Comissao,
		Observacoes:         p.Observacoes,
		PrimeiraMensalidade: p.PrimeiraMensalidade,
		RecebidaPeloCliente: p.RecebidaPeloCliente,
		ComissaoPaga:        p.ComissaoPaga,
		DataCadastro:        datas.FormatarBRTime(p.DataCadastro),
	}
}
