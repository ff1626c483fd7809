package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ObjetivaSolucao/api-comissoes/internal/oportunidade"
	"github.com/ObjetivaSolucao/api-comissoes/internal/parcela"
	"github.com/ObjetivaSolucao/api-comissoes/internal/vendedor"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func novoBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "teste.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, vendedor.Migrate(db))
	require.NoError(t, oportunidade.Migrate(db))
	require.NoError(t, parcela.Migrate(db))
	return db
}

func TestStatsVazio(t *testing.T) {
	h := NewHandler(novoBancoTeste(t))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats StatsDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	require.Zero(t, stats.TotalOportunidades)
	require.Zero(t, stats.TotalParcelas)
	require.Zero(t, stats.TotalComissoes)
	require.Zero(t, stats.ComissoesPendentes)
}

func TestStatsAgregaComissoes(t *testing.T) {
	db := novoBancoTeste(t)
	h := NewHandler(db)

	require.NoError(t, db.Create(&vendedor.Vendedor{Nome: "Bruno", Email: "bruno@x.com"}).Error)
	require.NoError(t, db.Create(&oportunidade.Oportunidade{
		Cliente: "Padaria", Vendedor: "Bruno", TipoConta: "PJ",
		ValorTotal: 1000, ValorLiquido: 850, Comissao: 85,
	}).Error)

	parcelas := []parcela.Parcela{
		{Cliente: "Padaria", Vendedor: "Bruno", Numero: "1/3", Valor: 100, Comissao: 8.50, ComissaoPaga: true},
		{Cliente: "Padaria", Vendedor: "Bruno", Numero: "2/3", Valor: 100, Comissao: 8.50, ComissaoPaga: true},
		{Cliente: "Padaria", Vendedor: "Bruno", Numero: "3/3", Valor: 100, Comissao: 8.50},
	}
	for i := range parcelas {
		require.NoError(t, db.Create(&parcelas[i]).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats StatsDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	require.Equal(t, int64(1), stats.TotalOportunidades)
	require.Equal(t, int64(1), stats.TotalVendedores)
	require.Equal(t, int64(3), stats.TotalParcelas)
	require.Equal(t, int64(2), stats.ParcelasPagas)
	require.InDelta(t, 25.50, stats.TotalComissoes, 1e-9)
	require.InDelta(t, 17.00, stats.ComissoesPagas, 1e-9)
	require.InDelta(t, 8.50, stats.ComissoesPendentes, 1e-9)
}
