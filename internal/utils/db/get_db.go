package db

import (
	"os"

	"gorm.io/gorm"
)

// CaminhoPadrao é o arquivo de banco criado na primeira execução.
const CaminhoPadrao = "database/comissoes.db"

// GetDB resolve o caminho do banco via DB_PATH e abre a conexão.
func GetDB() (*gorm.DB, error) {
	caminho := os.Getenv("DB_PATH")
	if caminho == "" {
		caminho = CaminhoPadrao
	}
	return ConnectDataBase(caminho)
}
