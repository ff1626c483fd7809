package oportunidade

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ObjetivaSolucao/api-comissoes/internal/parcela"
	"github.com/gorilla/mux"
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
	require.NoError(t, Migrate(db))
	require.NoError(t, parcela.Migrate(db))
	return db
}

func novoRouterTeste(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/oportunidades", h.Listar).Methods("GET")
	r.HandleFunc("/api/oportunidades", h.Criar).Methods("POST")
	r.HandleFunc("/api/oportunidades/{id}", h.Deletar).Methods("DELETE")
	return r
}

func TestCriarOportunidadeCalculaComissao(t *testing.T) {
	h := NewHandler(novoBancoTeste(t))
	r := novoRouterTeste(h)

	corpo := `{"cliente":"Padaria Central","vendedor":"Bruno Lima","tipoConta":"PJ","valorTotal":1000.00,"mensalidade":150,"servicos":850,"dataFechamento":"20/05/2024","descricao":"conta nova"}`
	req := httptest.NewRequest(http.MethodPost, "/api/oportunidades", bytes.NewBufferString(corpo))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var criada OportunidadeDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&criada))
	require.Equal(t, "1", criada.ID)
	require.InDelta(t, 850.00, criada.ValorLiquido, 1e-9)
	require.InDelta(t, 85.00, criada.Comissao, 1e-9)
	require.Equal(t, "20/05/2024", criada.DataFechamento)
}

func TestListarOportunidadesMaisRecentesPrimeiro(t *testing.T) {
	h := NewHandler(novoBancoTeste(t))
	r := novoRouterTeste(h)

	primeira := Oportunidade{Cliente: "Antiga", Vendedor: "Bruno", TipoConta: "PJ", ValorTotal: 100}
	require.NoError(t, h.Repo.Salvar(&primeira))
	// força ordenação determinística mesmo com timestamps próximos
	require.NoError(t, h.Repo.DB.Model(&primeira).
		Update("data_cadastro", "2024-01-01 10:00:00").Error)

	segunda := Oportunidade{Cliente: "Recente", Vendedor: "Bruno", TipoConta: "PJ", ValorTotal: 200}
	require.NoError(t, h.Repo.Salvar(&segunda))
	require.NoError(t, h.Repo.DB.Model(&segunda).
		Update("data_cadastro", "2024-06-01 10:00:00").Error)

	req := httptest.NewRequest(http.MethodGet, "/api/oportunidades", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var lista []OportunidadeDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&lista))
	require.Len(t, lista, 2)
	require.Equal(t, "Recente", lista[0].Cliente)
	require.Equal(t, "Antiga", lista[1].Cliente)
}

func TestDeletarOportunidadeRemoveParcelas(t *testing.T) {
	db := novoBancoTeste(t)
	h := NewHandler(db)
	r := novoRouterTeste(h)

	o := Oportunidade{Cliente: "Padaria", Vendedor: "Bruno", TipoConta: "PJ", ValorTotal: 1000}
	require.NoError(t, h.Repo.Salvar(&o))

	parcelas := parcela.NewRepository(db)
	for i := 0; i < 3; i++ {
		id := o.ID
		require.NoError(t, parcelas.Salvar(&parcela.Parcela{
			OportunidadeID: &id,
			Cliente:        "Padaria",
			Vendedor:       "Bruno",
			Numero:         "1/3",
			Valor:          100,
		}))
	}
	// parcela avulsa, sem oportunidade, deve sobreviver
	require.NoError(t, parcelas.Salvar(&parcela.Parcela{
		Cliente: "Outro Cliente", Vendedor: "Bruno", Numero: "1/1", Valor: 50,
	}))

	req := httptest.NewRequest(http.MethodDelete, "/api/oportunidades/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true}`, rec.Body.String())

	restantes, err := parcelas.ListarTodas()
	require.NoError(t, err)
	require.Len(t, restantes, 1)
	require.Nil(t, restantes[0].OportunidadeID)

	oportunidades, err := h.Repo.ListarTodas()
	require.NoError(t, err)
	require.Empty(t, oportunidades)
}
