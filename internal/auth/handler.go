// internal/auth/handler.go
package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ObjetivaSolucao/api-comissoes/internal/utils"
	"github.com/ObjetivaSolucao/api-comissoes/internal/vendedor"
	"gorm.io/gorm"
)

// LoginRequest é o corpo do POST /api/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type usuarioDTO struct {
	Email string `json:"email"`
	Nome  string `json:"nome"`
	Tipo  string `json:"tipo"`
}

type loginResponse struct {
	Success bool       `json:"success"`
	User    usuarioDTO `json:"user"`
}

// Handler autentica logins. Cada requisição é autenticada isoladamente; não
// há emissão de token, sessão ou cookie.
type Handler struct {
	Provedor      Provedor
	Vendedores    *vendedor.Repository
	SenhaVendedor string // hash bcrypt da senha compartilhada dos vendedores
}

// NewHandler retorna um handler de login. senhaVendedor é a senha
// compartilhada em texto puro; apenas o hash fica retido no handler.
func NewHandler(db *gorm.DB, provedor Provedor, senhaVendedor string) (*Handler, error) {
	hash, err := utils.HashSenha(senhaVendedor)
	if err != nil {
		return nil, err
	}
	return &Handler{
		Provedor:      provedor,
		Vendedores:    vendedor.NewRepository(db),
		SenhaVendedor: hash,
	}, nil
}

// Login responde POST /api/login. Primeiro consulta o provedor de credenciais
// fixas; depois cai para o cadastro de vendedores com a senha compartilhada.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.negar(w)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if cred, ok := h.Provedor.BuscarPorEmail(email); ok {
		if utils.VerificarSenha(cred.SenhaHash, req.Senha) {
			utils.RespondJSON(w, http.StatusOK, loginResponse{
				Success: true,
				User:    usuarioDTO{Email: email, Nome: cred.Nome, Tipo: cred.Tipo},
			})
			return
		}
		h.negar(w)
		return
	}

	// Senha única compartilhada por todos os vendedores cadastrados. Política
	// herdada do sistema original; a troca por senha individual passa por
	// popular a tabela de usuarios.
	if v, err := h.Vendedores.BuscarPorEmail(email); err == nil {
		if utils.VerificarSenha(h.SenhaVendedor, req.Senha) {
			utils.RespondJSON(w, http.StatusOK, loginResponse{
				Success: true,
				User:    usuarioDTO{Email: email, Nome: v.Nome, Tipo: "vendedor"},
			})
			return
		}
	}

	h.negar(w)
}

func (h *Handler) negar(w http.ResponseWriter) {
	utils.RespondJSON(w, http.StatusUnauthorized, map[string]interface{}{
		"success": false,
		"message": "Email ou senha incorretos",
	})
}
