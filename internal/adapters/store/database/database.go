package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/juvelir/workshop/internal/adapters/store/errstore"
	"github.com/juvelir/workshop/internal/adapters/store/model"
)

type Config struct {
	DSN string `env:"DATABASE_DSN"`
}

type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

type option func(*Store)

func Logger(log *zap.Logger) option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

func New(ctx context.Context, cfg *Config, options ...option) (*Store, error) {
	s := &Store{
		log: zap.NewNop(),
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed connect to database: %w", err)
	}

	s.db = db.WithContext(ctx)

	for _, opt := range options {
		opt(s)
	}

	err = s.db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Client{},
		&model.Material{},
		&model.ProductType{},
		&model.Order{},
		&model.OrderMaterial{},
	)
	if err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return s, nil
}

func (s *Store) CloseDB() error {
	db, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed getting database connection: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed close database connection: %w", err)
	}

	return nil
}

// asStoreError converts driver constraint failures to errstore sentinels.
func asStoreError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errstore.ErrNotUniqueData
		case pgerrcode.ForeignKeyViolation:
			return errstore.ErrReferenceViolation
		}
	}
	return err
}
