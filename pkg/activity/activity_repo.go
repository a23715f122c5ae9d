package activity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrActivityNotFound = errors.New("activity not found")

type ActivityRepo interface {
	// Store stores a new Activity to the database and returns its id.
	Store(ctx context.Context, activity Activity) (int, error)
	GetAll(ctx context.Context, includeInactive bool) ([]Activity, error)
	FindById(ctx context.Context, id int) (*Activity, error)
	Update(ctx context.Context, activity Activity) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ActivityRepoImpl struct {
	db *sql.DB
}

func NewActivityRepo(db *sql.DB) *ActivityRepoImpl {
	return &ActivityRepoImpl{db: db}
}

func (r *ActivityRepoImpl) Store(ctx context.Context, activity Activity) (int, error) {
	query := `INSERT INTO activity (
                    name,
                    category,
                    color,
                    is_active,
                    type,
                    reset_period,
                    goal_period,
                    target_minutes,
                    goal_is_active
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		activity.Name,
		activity.Category,
		activity.Color,
		activity.IsActive,
		string(activity.Type),
		nullablePeriod(activity.ResetPeriod),
		nullablePeriod(activity.GoalPeriod),
		nullableInt(activity.TargetMinutes),
		activity.GoalIsActive,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return 0, err
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return 0, err
	}

	return int(lastInsertID), nil
}

func (r *ActivityRepoImpl) GetAll(ctx context.Context, includeInactive bool) ([]Activity, error) {
	activeWhereQuery := "WHERE is_active = 1"
	if includeInactive {
		activeWhereQuery = ""
	}
	query := fmt.Sprintf(
		`SELECT id, name, category, color, is_active, type, reset_period, goal_period, target_minutes, goal_is_active
				FROM activity %s ORDER BY id`,
		activeWhereQuery,
	)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query activities: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		activity, err := scanActivity(rows.Scan)
		if err != nil {
			err := fmt.Errorf("could not scan activity: %w", err)
			log.Error(err)
			return nil, err
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return activities, nil
}

func (r *ActivityRepoImpl) FindById(ctx context.Context, id int) (*Activity, error) {
	query := `SELECT id, name, category, color, is_active, type, reset_period, goal_period, target_minutes, goal_is_active
			FROM activity WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	activity, err := scanActivity(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		err := fmt.Errorf("could not scan activity: %w", err)
		log.Error(err)
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepoImpl) Update(ctx context.Context, activity Activity) (bool, error) {
	query := `UPDATE activity SET
                  name = ?,
                  category = ?,
                  color = ?,
                  is_active = ?,
                  type = ?,
                  reset_period = ?,
                  goal_period = ?,
                  target_minutes = ?,
                  goal_is_active = ?
              WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		activity.Name,
		activity.Category,
		activity.Color,
		activity.IsActive,
		string(activity.Type),
		nullablePeriod(activity.ResetPeriod),
		nullablePeriod(activity.GoalPeriod),
		nullableInt(activity.TargetMinutes),
		activity.GoalIsActive,
		activity.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}

	return rowsAffected == 1, nil
}

func (r *ActivityRepoImpl) Delete(ctx context.Context, id int) (bool, error) {
	query := "DELETE FROM activity WHERE id = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()
	result, err := stmt.ExecContext(ctx, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func scanActivity(scan func(dest ...any) error) (Activity, error) {
	var activity Activity
	var resetPeriod, goalPeriod sql.NullString
	var targetMinutes sql.NullInt64
	err := scan(
		&activity.ID,
		&activity.Name,
		&activity.Category,
		&activity.Color,
		&activity.IsActive,
		(*string)(&activity.Type),
		&resetPeriod,
		&goalPeriod,
		&targetMinutes,
		&activity.GoalIsActive,
	)
	if err != nil {
		return Activity{}, err
	}
	if resetPeriod.Valid {
		activity.ResetPeriod = Period(resetPeriod.String)
	}
	if goalPeriod.Valid {
		activity.GoalPeriod = Period(goalPeriod.String)
	}
	if targetMinutes.Valid {
		activity.TargetMinutes = int(targetMinutes.Int64)
	}
	return activity, nil
}

func nullablePeriod(p Period) interface{} {
	if p == "" {
		return nil
	}
	return string(p)
}

func nullableInt(i int) interface{} {
	if i == 0 {
		return nil
	}
	return i
}
