package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/preqsy/monetra-server/internal/apperrors"
	"github.com/preqsy/monetra-server/internal/core/domain"
	portsrepo "github.com/preqsy/monetra-server/internal/core/ports/repositories"
	"github.com/preqsy/monetra-server/internal/models"
	"github.com/preqsy/monetra-server/internal/utils/mapping"
)

type PgxUserCurrencyRepository struct {
	BaseRepository
}

// newPgxUserCurrencyRepository creates a new repository for per-user currency sets.
func newPgxUserCurrencyRepository(pool *pgxpool.Pool) portsrepo.UserCurrencyRepositoryWithTx {
	return &PgxUserCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.UserCurrencyRepositoryWithTx = (*PgxUserCurrencyRepository)(nil)

const userCurrencyColumns = `user_currency_id, user_id, currency_code, exchange_rate, is_default, created_at, created_by, last_updated_at, last_updated_by`

func scanUserCurrency(row pgx.CollectableRow) (models.UserCurrency, error) {
	var uc models.UserCurrency
	err := row.Scan(
		&uc.UserCurrencyID,
		&uc.UserID,
		&uc.CurrencyCode,
		&uc.ExchangeRate,
		&uc.IsDefault,
		&uc.CreatedAt,
		&uc.CreatedBy,
		&uc.LastUpdatedAt,
		&uc.LastUpdatedBy,
	)
	return uc, err
}

// ListUserCurrencies retrieves the user's full currency set, default first.
func (r *PgxUserCurrencyRepository) ListUserCurrencies(ctx context.Context, userID string) ([]domain.UserCurrency, error) {
	query := `
		SELECT ` + userCurrencyColumns + `
		FROM users_currencies
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user currencies: %w", err)
	}
	defer rows.Close()

	modelUCs, err := pgx.CollectRows(rows, scanUserCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to scan user currencies: %w", err)
	}

	return mapping.ToDomainUserCurrencySlice(modelUCs), nil
}

// FindUserCurrencyByCode retrieves the user's entry for a currency code, if any.
func (r *PgxUserCurrencyRepository) FindUserCurrencyByCode(ctx context.Context, userID, currencyCode string) (*domain.UserCurrency, error) {
	query := `
		SELECT ` + userCurrencyColumns + `
		FROM users_currencies
		WHERE user_id = $1 AND currency_code = $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query user currency: %w", err)
	}
	defer rows.Close()

	modelUC, err := pgx.CollectOneRow(rows, scanUserCurrency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user currency %s/%s: %w", userID, currencyCode, err)
	}

	domainUC := mapping.ToDomainUserCurrency(modelUC)
	return &domainUC, nil
}

// SaveUserCurrency persists a single new user currency entry.
func (r *PgxUserCurrencyRepository) SaveUserCurrency(ctx context.Context, userCurrency domain.UserCurrency) error {
	modelUC := mapping.ToModelUserCurrency(userCurrency)

	query := `
		INSERT INTO users_currencies (` + userCurrencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelUC.UserCurrencyID,
		modelUC.UserID,
		modelUC.CurrencyCode,
		modelUC.ExchangeRate,
		modelUC.IsDefault,
		modelUC.CreatedAt,
		modelUC.CreatedBy,
		modelUC.LastUpdatedAt,
		modelUC.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save user currency %s: %w", modelUC.UserCurrencyID, err)
	}
	return nil
}

// ReplaceUserCurrencies rewrites every currency row for the user and the
// stored default-currency amount on each transaction in a single database
// transaction. The
// user's rows are locked first so a concurrent rebase cannot interleave and
// break the one-default invariant.
func (r *PgxUserCurrencyRepository) ReplaceUserCurrencies(ctx context.Context, userID string, currencies []domain.UserCurrency, amountsInDefault map[string]int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	lockQuery := `SELECT user_currency_id FROM users_currencies WHERE user_id = $1 FOR UPDATE;`
	if _, err := tx.Exec(ctx, lockQuery, userID); err != nil {
		return fmt.Errorf("failed to lock user currencies: %w", err)
	}

	updateCurrency := `
		UPDATE users_currencies
		SET exchange_rate = $1, is_default = $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_currency_id = $5 AND user_id = $6;
	`
	for _, uc := range currencies {
		modelUC := mapping.ToModelUserCurrency(uc)
		tag, err := tx.Exec(ctx, updateCurrency,
			modelUC.ExchangeRate,
			modelUC.IsDefault,
			modelUC.LastUpdatedAt,
			modelUC.LastUpdatedBy,
			modelUC.UserCurrencyID,
			modelUC.UserID,
		)
		if err != nil {
			return fmt.Errorf("failed to update user currency %s: %w", modelUC.UserCurrencyID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: user currency %s", apperrors.ErrNotFound, modelUC.UserCurrencyID)
		}
	}

	updateAmount := `
		UPDATE transactions
		SET amount_in_default = $1
		WHERE transaction_id = $2 AND user_id = $3;
	`
	for transactionID, amount := range amountsInDefault {
		if _, err := tx.Exec(ctx, updateAmount, amount, transactionID, userID); err != nil {
			return fmt.Errorf("failed to update amount for transaction %s: %w", transactionID, err)
		}
	}

	return r.Commit(ctx, tx)
}
