package external

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// SourceConfig binds an external calendar to the local activity its entries
// count towards. At most one binding exists.
type SourceConfig struct {
	CalendarID string
	ActivityID int
}

type SourceConfigRepo interface {
	Get(ctx context.Context) (*SourceConfig, error)
	Save(ctx context.Context, cfg SourceConfig) error
	Delete(ctx context.Context) error
}

type SourceConfigRepoImpl struct {
	db *sql.DB
}

func NewSourceConfigRepo(db *sql.DB) *SourceConfigRepoImpl {
	return &SourceConfigRepoImpl{db: db}
}

func (r *SourceConfigRepoImpl) Get(ctx context.Context) (*SourceConfig, error) {
	query := "SELECT calendar_id, activity_id FROM external_source_config WHERE id = 1"
	var cfg SourceConfig
	err := r.db.QueryRowContext(ctx, query).Scan(&cfg.CalendarID, &cfg.ActivityID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		err := fmt.Errorf("could not read external source config: %w", err)
		log.Error(err)
		return nil, err
	}
	return &cfg, nil
}

func (r *SourceConfigRepoImpl) Save(ctx context.Context, cfg SourceConfig) error {
	query := `INSERT INTO external_source_config (id, calendar_id, activity_id) VALUES (1, ?, ?)
			ON CONFLICT (id) DO UPDATE SET calendar_id = excluded.calendar_id, activity_id = excluded.activity_id`
	_, err := r.db.ExecContext(ctx, query, cfg.CalendarID, cfg.ActivityID)
	if err != nil {
		err := fmt.Errorf("could not store external source config: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *SourceConfigRepoImpl) Delete(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM external_source_config")
	if err != nil {
		err := fmt.Errorf("could not delete external source config: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
