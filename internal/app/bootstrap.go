package app

import (
	"fmt"

	"mentor_matching/internal/infra/config"
	idb "mentor_matching/internal/infra/database"
	"mentor_matching/internal/infra/logger"

	"github.com/jmoiron/sqlx"
)

// Open loads the environment configuration, initializes logging, connects
// to Postgres and wires the service. The caller closes the returned pool.
func Open() (*MatchmakingService, *sqlx.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load configuration: %w", err)
	}
	logger.Init(cfg)

	db, err := idb.NewPostgresConnection(cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}
	logger.Log.WithField("environment", cfg.Environment).Info("Database connection established")

	return New(db), db, nil
}

// New wires the service over an existing pool.
func New(db *sqlx.DB) *MatchmakingService {
	return NewMatchmakingService(
		idb.NewPostgresStudentRepository(db),
		idb.NewPostgresTeacherRepository(db),
		idb.NewPostgresMatchRepository(db),
		logger.Component("matchmaking"),
	)
}
