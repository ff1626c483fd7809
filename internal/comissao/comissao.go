// internal/comissao/comissao.go
package comissao

import "math"

// Percentuais fixos da política de comissionamento da Objetiva.
const (
	// FatorLiquido aplica o desconto de 15% sobre o valor bruto.
	FatorLiquido = 0.85
	// TaxaComissao é a comissão de 10% sobre o valor líquido.
	TaxaComissao = 0.10
)

// ValorLiquido calcula o valor líquido a partir do valor bruto.
func ValorLiquido(valorTotal float64) float64 {
	return valorTotal * FatorLiquido
}

// Calcular retorna valor líquido e comissão derivados do valor bruto.
// A mesma regra vale para oportunidades e parcelas, cada uma calculada
// sobre o próprio valor bruto.
func Calcular(valorTotal float64) (valorLiquido, comissao float64) {
	valorLiquido = ValorLiquido(valorTotal)
	comissao = valorLiquido * TaxaComissao
	return valorLiquido, comissao
}

// Arredondar2 arredonda um valor monetário para duas casas decimais.
func Arredondar2(v float64) float64 {
	return math.Round(v*100) / 100
}
