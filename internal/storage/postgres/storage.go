package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/repository"
)

const uniqueViolation = "23505"

// querier is the statement surface shared by the pool and transactions.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgxPool interface {
	querier
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	repositories
	pool   pgxPool
	logger *slog.Logger
}

var _ repository.Store = (*Storage)(nil)

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := wrap(pool, logger)
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

func wrap(pool pgxPool, logger *slog.Logger) *Storage {
	return &Storage{repositories: repositories{q: pool}, pool: pool, logger: logger}
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) initSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				s.logger.Warn("rollback failed", slog.String("error", rbErr.Error()))
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// Transact runs fn with repositories bound to a single transaction.
func (s *Storage) Transact(ctx context.Context, fn func(repository.Factory) error) error {
	return s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return fn(repositories{q: tx})
	})
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// repositories binds every repository to one querier.
type repositories struct {
	q querier
}

func (r repositories) Users() repository.UserRepository { return &userRepository{q: r.q} }

func (r repositories) Services() repository.ServiceRepository { return &serviceRepository{q: r.q} }

func (r repositories) Orders() repository.OrderRepository { return &orderRepository{q: r.q} }

func (r repositories) Proposals() repository.ProposalRepository { return &proposalRepository{q: r.q} }

func (r repositories) ChangeRequests() repository.ChangeRequestRepository {
	return &changeRequestRepository{q: r.q}
}

func (r repositories) Reviews() repository.ReviewRepository { return &reviewRepository{q: r.q} }

func (r repositories) Balances() repository.BalanceRepository { return &balanceRepository{q: r.q} }

func (r repositories) Withdrawals() repository.WithdrawalRepository {
	return &withdrawalRepository{q: r.q}
}

func (r repositories) PayoutInfo() repository.PayoutInfoRepository {
	return &payoutInfoRepository{q: r.q}
}

func (r repositories) Notifications() repository.NotificationRepository {
	return &notificationRepository{q: r.q}
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
