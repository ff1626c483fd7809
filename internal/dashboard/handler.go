// internal/dashboard/handler.go
package dashboard

import (
	"net/http"

	"github.com/ObjetivaSolucao/api-comissoes/internal/comissao"
	"github.com/ObjetivaSolucao/api-comissoes/internal/utils"
	"gorm.io/gorm"
)

// StatsDTO é a resposta do GET /api/dashboard/stats.
type StatsDTO struct {
	TotalOportunidades int64   `json:"totalOportunidades"`
	TotalVendedores    int64   `json:"totalVendedores"`
	TotalParcelas      int64   `json:"totalParcelas"`
	ParcelasPagas      int64   `json:"parcelasPagas"`
	TotalComissoes     float64 `json:"totalComissoes"`
	ComissoesPagas     float64 `json:"comissoesPagas"`
	ComissoesPendentes float64 `json:"comissoesPendentes"`
}

// Handler gerencia a rota de estatísticas do painel.
type Handler struct {
	Repo *Repository
}

// NewHandler retorna um handler inicializado.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Stats responde GET /api/dashboard/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	t, err := h.Repo.Calcular()
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao calcular estatísticas")
		return
	}

	utils.RespondJSON(w, http.StatusOK, StatsDTO{
		TotalOportunidades: t.TotalOportunidades,
		TotalVendedores:    t.TotalVendedores,
		TotalParcelas:      t.TotalParcelas,
		ParcelasPagas:      t.ParcelasPagas,
		TotalComissoes:     comissao.Arredondar2(t.TotalComissoes),
		ComissoesPagas:     comissao.Arredondar2(t.ComissoesPagas),
		ComissoesPendentes: comissao.Arredondar2(t.TotalComissoes - t.ComissoesPagas),
	})
}
