// internal/datas/datas.go
package datas

import (
	"fmt"
	"strings"
	"time"
)

// Tipo classifica o resultado da conversão de uma data recebida no formato
// brasileiro. Em vez de engolir entradas inválidas, o parse devolve um valor
// etiquetado e o chamador decide entre comportamento estrito ou leniente.
type Tipo int

const (
	// Ausente indica entrada vazia; persiste como NULL.
	Ausente Tipo = iota
	// Valida indica uma data DD/MM/YYYY reconhecida; ISO carrega YYYY-MM-DD.
	Valida
	// Texto indica entrada que não é uma data brasileira; ISO carrega a
	// string original, repassada sem alteração.
	Texto
)

// Valor é o resultado etiquetado de ParseBR.
type Valor struct {
	Tipo Tipo
	ISO  string
}

// Ptr devolve o valor de armazenamento: nil para Ausente, senão a string ISO
// (ou o texto repassado).
func (v Valor) Ptr() *string {
	if v.Tipo == Ausente {
		return nil
	}
	s := v.ISO
	return &s
}

// ParseBR converte DD/MM/YYYY para YYYY-MM-DD. Dia e mês são completados com
// zero à esquerda. Entradas sem barra ou que não formam uma data de calendário
// são repassadas como Texto.
func ParseBR(s string) Valor {
	s = strings.TrimSpace(s)
	if s == "" {
		return Valor{Tipo: Ausente}
	}
	if !strings.Contains(s, "/") {
		return Valor{Tipo: Texto, ISO: s}
	}
	partes := strings.Split(s, "/")
	if len(partes) != 3 || len(partes[2]) != 4 {
		return Valor{Tipo: Texto, ISO: s}
	}
	iso := fmt.Sprintf("%s-%s-%s", partes[2], pad2(partes[1]), pad2(partes[0]))
	if _, err := time.Parse("2006-01-02", iso); err != nil {
		return Valor{Tipo: Texto, ISO: s}
	}
	return Valor{Tipo: Valida, ISO: iso}
}

// FormatarBR converte uma data ISO (com ou sem hora) para DD/MM/YYYY.
// Entrada vazia vira string vazia; entrada que não parseia volta inalterada.
func FormatarBR(s string) string {
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "-") {
		return s
	}
	layouts := []string{
		"2006-01-02",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		time.RFC3339,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return s
}

// FormatarBRPtr formata uma coluna de data opcional.
func FormatarBRPtr(s *string) string {
	if s == nil {
		return ""
	}
	return FormatarBR(*s)
}

// FormatarBRTime formata um timestamp para DD/MM/YYYY.
func FormatarBRTime(t time.Time) string {
	return t.Format("02/01/2006")
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
