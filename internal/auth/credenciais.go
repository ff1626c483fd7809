// internal/auth/credenciais.go
package auth

import (
	"log"
	"strings"

	"github.com/ObjetivaSolucao/api-comissoes/internal/utils"
)

// Credencial é um registro de identidade com papel e hash bcrypt da senha.
type Credencial struct {
	Email     string
	Nome      string
	Tipo      string
	SenhaHash string
}

// Provedor resolve credenciais por email. A tabela fixa embutida implementa a
// interface; um provedor apoiado em banco pode substituí-la sem tocar no
// handler de login.
type Provedor interface {
	BuscarPorEmail(email string) (*Credencial, bool)
}

// TabelaFixa é um Provedor em memória, somente leitura após a construção.
type TabelaFixa struct {
	credenciais map[string]Credencial
}

// NovaTabelaFixa monta a tabela a partir dos registros informados.
func NovaTabelaFixa(registros []Credencial) *TabelaFixa {
	t := &TabelaFixa{credenciais: make(map[string]Credencial, len(registros))}
	for _, c := range registros {
		t.credenciais[strings.ToLower(strings.TrimSpace(c.Email))] = c
	}
	return t
}

// BuscarPorEmail devolve a credencial do email, se cadastrada.
func (t *TabelaFixa) BuscarPorEmail(email string) (*Credencial, bool) {
	c, ok := t.credenciais[email]
	if !ok {
		return nil, false
	}
	return &c, true
}

// TabelaPadrao devolve as duas contas fixas do sistema com as senhas já
// hasheadas. Falha de hash aborta o processo na inicialização.
func TabelaPadrao() *TabelaFixa {
	registros := []struct {
		email, nome, tipo, senha string
	}{
		{"thiago@objetivasolucao.com.br", "Thiago Teles Xavier", "master", "vendas123"},
		{"dalzia.reis@objetivasolucao.com.br", "Dalzia Reis", "visualizador", "dalzia123"},
	}

	credenciais := make([]Credencial, 0, len(registros))
	for _, reg := range registros {
		hash, err := utils.HashSenha(reg.senha)
		if err != nil {
			log.Fatal("Erro ao preparar credenciais fixas:", err)
		}
		credenciais = append(credenciais, Credencial{
			Email:     reg.email,
			Nome:      reg.nome,
			Tipo:      reg.tipo,
			SenhaHash: hash,
		})
	}
	return NovaTabelaFixa(credenciais)
}
