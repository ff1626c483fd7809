package main

import (
	"log"
	"net/http"
	"os"

	"github.com/ObjetivaSolucao/api-comissoes/internal/auth"
	"github.com/ObjetivaSolucao/api-comissoes/internal/dashboard"
	"github.com/ObjetivaSolucao/api-comissoes/internal/oportunidade"
	"github.com/ObjetivaSolucao/api-comissoes/internal/parcela"
	"github.com/ObjetivaSolucao/api-comissoes/internal/usuario"
	"github.com/ObjetivaSolucao/api-comissoes/internal/utils/db"
	"github.com/ObjetivaSolucao/api-comissoes/internal/vendedor"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Aviso: erro ao carregar .env: %v", err)
	}

	conn, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// Migrações idempotentes de todas as tabelas
	if err := conn.AutoMigrate(
		&usuario.Usuario{},
		&vendedor.Vendedor{},
		&oportunidade.Oportunidade{},
		&parcela.Parcela{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	senhaVendedor := os.Getenv("SENHA_VENDEDOR")
	if senhaVendedor == "" {
		senhaVendedor = "vendas123"
	}

	// Handlers
	authHandler, err := auth.NewHandler(conn, auth.TabelaPadrao(), senhaVendedor)
	if err != nil {
		log.Fatal("Erro ao preparar autenticação:", err)
	}
	vendedorHandler := vendedor.NewHandler(conn)
	oportunidadeHandler := oportunidade.NewHandler(conn)
	parcelaHandler := parcela.NewHandler(conn)
	dashboardHandler := dashboard.NewHandler(conn)

	// Router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Rota de login
	api.HandleFunc("/login", authHandler.Login).Methods("POST")

	// Rotas de vendedores
	api.HandleFunc("/vendedores", vendedorHandler.Listar).Methods("GET")
	api.HandleFunc("/vendedores", vendedorHandler.Criar).Methods("POST")
	api.HandleFunc("/vendedores/{id}", vendedorHandler.Deletar).Methods("DELETE")

	// Rotas de oportunidades
	api.HandleFunc("/oportunidades", oportunidadeHandler.Listar).Methods("GET")
	api.HandleFunc("/oportunidades", oportunidadeHandler.Criar).Methods("POST")
	api.HandleFunc("/oportunidades/{id}", oportunidadeHandler.Deletar).Methods("DELETE")

	// Rotas de parcelas
	api.HandleFunc("/parcelas", parcelaHandler.Listar).Methods("GET")
	api.HandleFunc("/parcelas", parcelaHandler.Criar).Methods("POST")
	api.HandleFunc("/parcelas/{id}", parcelaHandler.AtualizarPagamento).Methods("PUT")
	api.HandleFunc("/parcelas/{id}", parcelaHandler.Deletar).Methods("DELETE")

	// Rota de estatísticas do painel
	api.HandleFunc("/dashboard/stats", dashboardHandler.Stats).Methods("GET")

	// Cliente single-page
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "static"
	}
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("Servidor rodando em http://localhost:%s", port)
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(r)))
}
