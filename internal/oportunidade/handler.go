// internal/oportunidade/handler.go
package oportunidade

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ObjetivaSolucao/api-comissoes/internal/comissao"
	"github.com/ObjetivaSolucao/api-comissoes/internal/datas"
	"github.com/ObjetivaSolucao/api-comissoes/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de oportunidades.
type Handler struct {
	Repo *Repository
}

// NewHandler retorna um handler inicializado.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Listar responde GET /api/oportunidades.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	oportunidades, err := h.Repo.ListarTodas()
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao listar oportunidades")
		return
	}

	result := make([]OportunidadeDTO, 0, len(oportunidades))
	for _, o := range oportunidades {
		result = append(result, toDTO(o))
	}
	utils.RespondJSON(w, http.StatusOK, result)
}

// Criar responde POST /api/oportunidades. Valor líquido e comissão são
// derivados do valor total no momento da gravação.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CreateOportunidadeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}

	valorLiquido, valorComissao := comissao.Calcular(dto.ValorTotal)

	o := Oportunidade{
		Cliente:        dto.Cliente,
		Vendedor:       dto.Vendedor,
		TipoConta:      dto.TipoConta,
		Mensalidade:    dto.Mensalidade,
		Servicos:       dto.Servicos,
		ValorTotal:     dto.ValorTotal,
		ValorLiquido:   valorLiquido,
		Comissao:       valorComissao,
		DataFechamento: datas.ParseBR(dto.DataFechamento).Ptr(),
		Descricao:      dto.Descricao,
	}

	if err := h.Repo.Salvar(&o); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao salvar oportunidade")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, toDTO(o))
}

// Deletar responde DELETE /api/oportunidades/{id}, removendo também as
// parcelas vinculadas.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.Repo.DeletarComParcelas(uint(id)); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao deletar oportunidade")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
