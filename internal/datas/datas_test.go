package datas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBR(t *testing.T) {
	casos := []struct {
		nome    string
		entrada string
		tipo    Tipo
		iso     string
	}{
		{"data completa", "25/12/2024", Valida, "2024-12-25"},
		{"dia e mes sem zero", "5/3/2024", Valida, "2024-03-05"},
		{"vazio", "", Ausente, ""},
		{"apenas espacos", "   ", Ausente, ""},
		{"sem barra passa direto", "2024-12-25", Texto, "2024-12-25"},
		{"texto qualquer", "amanha", Texto, "amanha"},
		{"dia inexistente", "31/02/2024", Texto, "31/02/2024"},
		{"ano curto", "01/02/99", Texto, "01/02/99"},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			v := ParseBR(caso.entrada)
			assert.Equal(t, caso.tipo, v.Tipo)
			assert.Equal(t, caso.iso, v.ISO)
		})
	}
}

func TestFormatarBR(t *testing.T) {
	assert.Equal(t, "25/12/2024", FormatarBR("2024-12-25"))
	assert.Equal(t, "25/12/2024", FormatarBR("2024-12-25 10:30:00"))
	assert.Equal(t, "25/12/2024", FormatarBR("2024-12-25T10:30:00"))
	assert.Equal(t, "", FormatarBR(""))
	// entrada que não parseia volta inalterada
	assert.Equal(t, "nao-e-data", FormatarBR("nao-e-data"))
	assert.Equal(t, "texto solto", FormatarBR("texto solto"))
}

func TestIdaEVolta(t *testing.T) {
	// parse(format(d)) == d para ISO válido
	for _, iso := range []string{"2024-01-01", "1999-06-15", "2030-12-31"} {
		v := ParseBR(FormatarBR(iso))
		assert.Equal(t, Valida, v.Tipo)
		assert.Equal(t, iso, v.ISO)
	}
	// format(parse(s)) == s para DD/MM/YYYY válido
	for _, br := range []string{"01/01/2024", "15/06/1999", "31/12/2030"} {
		v := ParseBR(br)
		assert.Equal(t, Valida, v.Tipo)
		assert.Equal(t, br, FormatarBR(v.ISO))
	}
}

func TestPtr(t *testing.T) {
	assert.Nil(t, ParseBR("").Ptr())

	p := ParseBR("10/04/2025").Ptr()
	if assert.NotNil(t, p) {
		assert.Equal(t, "2025-04-10", *p)
	}

	texto := ParseBR("sem formato").Ptr()
	if assert.NotNil(t, texto) {
		assert.Equal(t, "sem formato", *texto)
	}
}

func TestFormatarBRTime(t *testing.T) {
	instante := time.Date(2024, 7, 9, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, "09/07/2024", FormatarBRTime(instante))
}
