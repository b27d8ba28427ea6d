package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pizzariapopovici/orderapi/internal/domain"
	apperrors "github.com/pizzariapopovici/orderapi/pkg/errors"
)

type operatorRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewOperatorRepository creates a new operator repository
func NewOperatorRepository(db *sql.DB, logger *zap.Logger) *operatorRepository {
	return &operatorRepository{
		db:     db,
		logger: logger,
	}
}

func (r *operatorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error) {
	query := `
		SELECT id, name, email, password_hash, is_active, created_at, updated_at
		FROM operators
		WHERE id = $1
	`

	var operator domain.Operator

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&operator.ID,
		&operator.Name,
		&operator.Email,
		&operator.PasswordHash,
		&operator.IsActive,
		&operator.CreatedAt,
		&operator.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &apperrors.ErrNotFound{Resource: "operator", ID: id.String()}
	}
	if err != nil {
		r.logger.Error("Failed to get operator by ID", zap.Error(err))
		return nil, err
	}

	return &operator, nil
}

func (r *operatorRepository) GetByEmail(ctx context.Context, email string) (*domain.Operator, error) {
	query := `
		SELECT id, name, email, password_hash, is_active, created_at, updated_at
		FROM operators
		WHERE email = $1
	`

	var operator domain.Operator

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&operator.ID,
		&operator.Name,
		&operator.Email,
		&operator.PasswordHash,
		&operator.IsActive,
		&operator.CreatedAt,
		&operator.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &apperrors.ErrNotFound{Resource: "operator", ID: email}
	}
	if err != nil {
		r.logger.Error("Failed to get operator by email", zap.Error(err))
		return nil, err
	}

	return &operator, nil
}

func (r *operatorRepository) Create(ctx context.Context, operator *domain.Operator) error {
	query := `
		INSERT INTO operators (id, name, email, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	now := time.Now()
	if operator.ID == uuid.Nil {
		operator.ID = uuid.New()
	}
	if operator.CreatedAt.IsZero() {
		operator.CreatedAt = now
	}
	if operator.UpdatedAt.IsZero() {
		operator.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, query,
		operator.ID,
		operator.Name,
		operator.Email,
		operator.PasswordHash,
		operator.IsActive,
		operator.CreatedAt,
		operator.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create operator", zap.Error(err))
		return err
	}

	return nil
}

func (r *operatorRepository) Update(ctx context.Context, operator *domain.Operator) error {
	query := `
		UPDATE operators
		SET name = $2, email = $3, password_hash = $4, is_active = $5, updated_at = $6
		WHERE id = $1
	`

	operator.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		operator.ID,
		operator.Name,
		operator.Email,
		operator.PasswordHash,
		operator.IsActive,
		operator.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to update operator", zap.Error(err))
		return err
	}

	return nil
}
