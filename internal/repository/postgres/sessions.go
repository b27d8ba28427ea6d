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

type sessionRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSessionRepository creates a new operator session repository
func NewSessionRepository(db *sql.DB, logger *zap.Logger) *sessionRepository {
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.OperatorSession) error {
	query := `
		INSERT INTO operator_sessions (token, operator_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`

	if session.Token == uuid.Nil {
		session.Token = uuid.New()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		session.Token,
		session.OperatorID,
		session.ExpiresAt,
		session.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create operator session", zap.Error(err))
		return err
	}

	return nil
}

func (r *sessionRepository) GetByToken(ctx context.Context, token uuid.UUID) (*domain.OperatorSession, error) {
	query := `
		SELECT token, operator_id, expires_at, created_at
		FROM operator_sessions
		WHERE token = $1
	`

	var session domain.OperatorSession

	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&session.Token,
		&session.OperatorID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &apperrors.ErrNotFound{Resource: "session", ID: token.String()}
	}
	if err != nil {
		r.logger.Error("Failed to get operator session", zap.Error(err))
		return nil, err
	}

	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token uuid.UUID) error {
	query := `DELETE FROM operator_sessions WHERE token = $1`

	_, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		r.logger.Error("Failed to delete operator session", zap.Error(err))
		return err
	}

	return nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM operator_sessions WHERE expires_at < NOW()`

	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to delete expired operator sessions", zap.Error(err))
		return 0, err
	}

	removed, _ := result.RowsAffected()
	return removed, nil
}
