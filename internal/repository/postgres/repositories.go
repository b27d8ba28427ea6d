package postgres

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/pizzariapopovici/orderapi/internal/repository"
)

// NewRepositories wires all Postgres-backed repositories
func NewRepositories(db *sql.DB, logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		Operator: NewOperatorRepository(db, logger),
		Session:  NewSessionRepository(db, logger),
	}
}
