// Package testdb abre bancos sqlite em memória com o schema da aplicação para testes
package testdb

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/dealflow-backend/internal/infrastructure/persistence/postgres"
)

// TB é o subconjunto de testing.TB usado aqui; permite uso com GinkgoT()
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
	Cleanup(func())
}

// Open cria um banco isolado por teste
func Open(t TB) *gorm.DB {
	t.Helper()

	db, err := New()
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// New cria um banco sqlite em memória com nome único e aplica o schema
func New() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	cfg := postgres.NewGormConfig("error")
	cfg.Logger = logger.Default.LogMode(logger.Silent)

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// conexão única: o banco em memória vive enquanto ela estiver aberta
	sqlDB.SetMaxOpenConns(1)

	if err := postgres.AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}
