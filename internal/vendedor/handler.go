// internal/vendedor/handler.go
package vendedor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ObjetivaSolucao/api-comissoes/internal/datas"
	"github.com/ObjetivaSolucao/api-comissoes/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de vendedores.
type Handler struct {
	Repo *Repository
}

// NewHandler retorna um handler inicializado.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Listar responde GET /api/vendedores.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	vendedores, err := h.Repo.ListarTodos()
	if err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao listar vendedores")
		return
	}

	result := make([]VendedorDTO, 0, len(vendedores))
	for _, v := range vendedores {
		result = append(result, toDTO(v))
	}
	utils.RespondJSON(w, http.StatusOK, result)
}

// Criar responde POST /api/vendedores.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CreateVendedorDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}

	v := Vendedor{
		Nome:         dto.Nome,
		Email:        dto.Email,
		Telefone:     dto.Telefone,
		DataAdmissao: datas.ParseBR(dto.DataAdmissao).Ptr(),
		Observacoes:  dto.Observacoes,
	}

	if err := h.Repo.Salvar(&v); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao salvar vendedor")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, toDTO(v))
}

// Deletar responde DELETE /api/vendedores/{id}.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.Repo.DeletarPorID(uint(id)); err != nil {
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao deletar vendedor")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
