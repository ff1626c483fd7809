// internal/parcela/handler.go
package parcela

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

// Handler gerencia as rotas de parcelas.
type Handler struct {
	Repo *Repository
}

// NewHandler retorna um handler inicializado.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Listar responde GET /api/parcelas.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	parcelas, err := h.Repo.ListarTodas()
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao listar parcelas")
		return
	}

	result := make([]ParcelaDTO, 0, len(parcelas))
	for _, p := range parcelas {
		result = append(result, toDTO(p))
	}
	utils.RespondJSON(w, http.StatusOK, result)
}

// Criar responde POST /api/parcelas. A comissão é derivada do valor bruto da
// própria parcela.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CreateParcelaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}

	var oportunidadeID *uint
	if dto.OportunidadeID != "" {
		id, err := strconv.Atoi(dto.OportunidadeID)
		if err != nil {
			utils.RespondErro(w, http.StatusBadRequest, "ID de oportunidade inválido")
			return
		}
		u := uint(id)
		oportunidadeID = &u
	}

	valorLiquido, valorComissao := comissao.Calcular(dto.Valor)

	p := Parcela{
		OportunidadeID:      oportunidadeID,
		Cliente:             dto.Cliente,
		Vendedor:            dto.Vendedor,
		Numero:              dto.Numero,
		Valor:               dto.Valor,
		ValorLiquido:        valorLiquido,
		Vencimento:          datas.ParseBR(dto.Vencimento).Ptr(),
		PagamentoComissao:   datas.ParseBR(dto.PagamentoComissao).Ptr(),
		Comissao:            valorComissao,
		Observacoes:         dto.Observacoes,
		PrimeiraMensalidade: dto.PrimeiraMensalidade,
		RecebidaPeloCliente: dto.RecebidaPeloCliente,
		ComissaoPaga:        dto.ComissaoPaga,
	}

	if err := h.Repo.Salvar(&p); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao salvar parcela")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, toDTO(p))
}

// AtualizarPagamento responde PUT /api/parcelas/{id}.
func (h *Handler) AtualizarPagamento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var dto UpdatePagamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}

	if err := h.Repo.AtualizarPagamento(uint(id), dto.RecebidaPeloCliente, dto.ComissaoPaga); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar parcela")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Deletar responde DELETE /api/parcelas/{id}.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.Repo.DeletarPorID(uint(id)); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao deletar parcela")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
