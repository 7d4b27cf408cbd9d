package repos

import (
	"context"
	"errors"
	"fmt"

	"catalogproxy/internal/config"
)

// Open returns the store selected by cfg.DBDriver.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.DBDriver {
	case "", "sqlite":
		s, err := OpenSQLStore(cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.DBDSN, err)
		}
		return s, nil
	case "mongo":
		if cfg.MongoURI == "" {
			return nil, errors.New("DB_DRIVER=mongo needs MONGO_URI")
		}
		s, err := OpenMongoStore(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}
