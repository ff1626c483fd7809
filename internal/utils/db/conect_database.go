package db

import (
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDataBase abre o arquivo SQLite no caminho informado, criando o
// diretório pai se necessário.
func ConnectDataBase(caminho string) (*gorm.DB, error) {
	if dir := filepath.Dir(caminho); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return gorm.Open(sqlite.Open(caminho), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}
