package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/pizzariapopovici/orderapi/internal/domain"
)

// OperatorRepository stores console operator accounts
type OperatorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error)
	GetByEmail(ctx context.Context, email string) (*domain.Operator, error)
	Create(ctx context.Context, operator *domain.Operator) error
	Update(ctx context.Context, operator *domain.Operator) error
}

// SessionRepository stores issued operator login tokens
type SessionRepository interface {
	Create(ctx context.Context, session *domain.OperatorSession) error
	GetByToken(ctx context.Context, token uuid.UUID) (*domain.OperatorSession, error)
	Delete(ctx context.Context, token uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// Repositories bundles all persistence dependencies
type Repositories struct {
	Operator OperatorRepository
	Session  SessionRepository
}
