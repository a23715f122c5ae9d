package checkbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type CheckboxRepo interface {
	// Upsert stores the checked state for (activityId, date), creating the
	// record when it does not exist yet. Concurrent writes to the same record
	// are serialized by the conflict clause.
	Upsert(ctx context.Context, activityId int, date string, isChecked bool) (Checkbox, error)
	Find(ctx context.Context, activityId int, date string) (*Checkbox, error)
	ListForDate(ctx context.Context, date string) ([]Checkbox, error)
	ListForActivityBetween(ctx context.Context, activityId int, fromDate string, toDate string) ([]Checkbox, error)
	GetAll(ctx context.Context) ([]Checkbox, error)
}

type CheckboxRepoImpl struct {
	db *sql.DB
}

func NewCheckboxRepo(db *sql.DB) *CheckboxRepoImpl {
	return &CheckboxRepoImpl{db: db}
}

func (r *CheckboxRepoImpl) Upsert(ctx context.Context, activityId int, date string, isChecked bool) (Checkbox, error) {
	query := `INSERT INTO daily_checkbox (activity_id, date, is_checked) VALUES (?, ?, ?)
			ON CONFLICT (activity_id, date) DO UPDATE SET is_checked = excluded.is_checked`
	_, err := r.db.ExecContext(ctx, query, activityId, date, isChecked)
	if err != nil {
		err := fmt.Errorf("could not upsert checkbox: %v", err)
		log.Error(err)
		return Checkbox{}, err
	}

	stored, err := r.Find(ctx, activityId, date)
	if err != nil {
		return Checkbox{}, err
	}
	if stored == nil {
		err := fmt.Errorf("checkbox disappeared after upsert (activity %d, date %s)", activityId, date)
		log.Error(err)
		return Checkbox{}, err
	}
	return *stored, nil
}

func (r *CheckboxRepoImpl) Find(ctx context.Context, activityId int, date string) (*Checkbox, error) {
	query := `SELECT id, activity_id, date, is_checked FROM daily_checkbox
			WHERE activity_id = ? AND date = ?`
	row := r.db.QueryRowContext(ctx, query, activityId, date)

	var checkbox Checkbox
	err := row.Scan(&checkbox.ID, &checkbox.ActivityID, &checkbox.Date, &checkbox.IsChecked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		err := fmt.Errorf("could not scan checkbox: %w", err)
		log.Error(err)
		return nil, err
	}
	return &checkbox, nil
}

func (r *CheckboxRepoImpl) ListForDate(ctx context.Context, date string) ([]Checkbox, error) {
	query := `SELECT id, activity_id, date, is_checked FROM daily_checkbox WHERE date = ? ORDER BY activity_id`
	return r.queryCheckboxes(ctx, query, date)
}

func (r *CheckboxRepoImpl) ListForActivityBetween(ctx context.Context, activityId int, fromDate string, toDate string) ([]Checkbox, error) {
	// ISO day strings order lexicographically
	query := `SELECT id, activity_id, date, is_checked FROM daily_checkbox
			WHERE activity_id = ? AND date >= ? AND date <= ? ORDER BY date`
	return r.queryCheckboxes(ctx, query, activityId, fromDate, toDate)
}

func (r *CheckboxRepoImpl) GetAll(ctx context.Context) ([]Checkbox, error) {
	query := `SELECT id, activity_id, date, is_checked FROM daily_checkbox ORDER BY date, activity_id`
	return r.queryCheckboxes(ctx, query)
}

func (r *CheckboxRepoImpl) queryCheckboxes(ctx context.Context, query string, args ...any) ([]Checkbox, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query checkboxes: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var checkboxes []Checkbox
	for rows.Next() {
		var checkbox Checkbox
		if err := rows.Scan(&checkbox.ID, &checkbox.ActivityID, &checkbox.Date, &checkbox.IsChecked); err != nil {
			err := fmt.Errorf("could not scan checkbox: %w", err)
			log.Error(err)
			return nil, err
		}
		checkboxes = append(checkboxes, checkbox)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return checkboxes, nil
}
