package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type SessionRepo interface {
	// Store stores a new Session to the database and returns it with its id set.
	Store(ctx context.Context, session Session) (Session, error)
	// Finish marks the running session with the given id as stopped.
	Finish(ctx context.Context, id int, endTime time.Time, duration time.Duration) (bool, error)
	FindRunning(ctx context.Context, activityId int) (*Session, error)
	DeleteRunning(ctx context.Context, activityId int) error
	GetAll(ctx context.Context) ([]Session, error)
	ListRecent(ctx context.Context, limit int) ([]Session, error)
}

type SessionRepoImpl struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepoImpl {
	return &SessionRepoImpl{db: db}
}

func (r *SessionRepoImpl) Store(ctx context.Context, session Session) (Session, error) {
	query := `INSERT INTO session (uid, activity_id, start_time, end_time, duration_seconds, date, is_running)
			VALUES (?, ?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return Session{}, err
	}
	defer stmt.Close()

	var endTimeUnix *int64 = nil
	if !session.EndTime.IsZero() {
		unixValue := session.EndTime.Unix()
		endTimeUnix = &unixValue
	}
	var durationSeconds *int64 = nil
	if !session.IsRunning {
		seconds := int64(session.Duration.Seconds())
		durationSeconds = &seconds
	}
	result, err := stmt.ExecContext(ctx,
		session.UID,
		session.ActivityID,
		session.StartTime.Unix(),
		endTimeUnix,
		durationSeconds,
		session.Date,
		session.IsRunning,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return Session{}, err
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return Session{}, err
	}
	session.ID = int(lastInsertID)

	return session, nil
}

func (r *SessionRepoImpl) Finish(ctx context.Context, id int, endTime time.Time, duration time.Duration) (bool, error) {
	query := `UPDATE session SET end_time = ?, duration_seconds = ?, is_running = 0
			WHERE id = ? AND is_running = 1`
	result, err := r.db.ExecContext(ctx, query, endTime.Unix(), int64(duration.Seconds()), id)
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

func (r *SessionRepoImpl) FindRunning(ctx context.Context, activityId int) (*Session, error) {
	query := `SELECT id, uid, activity_id, start_time, end_time, duration_seconds, date, is_running
			FROM session WHERE activity_id = ? AND is_running = 1 LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, activityId)

	session, err := scanSession(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		err := fmt.Errorf("failed when trying to find running session: %w", err)
		log.Error(err)
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepoImpl) DeleteRunning(ctx context.Context, activityId int) error {
	query := "DELETE FROM session WHERE activity_id = ? AND is_running = 1"
	_, err := r.db.ExecContext(ctx, query, activityId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *SessionRepoImpl) GetAll(ctx context.Context) ([]Session, error) {
	query := `SELECT id, uid, activity_id, start_time, end_time, duration_seconds, date, is_running
			FROM session ORDER BY start_time`
	return r.querySessions(ctx, query)
}

func (r *SessionRepoImpl) ListRecent(ctx context.Context, limit int) ([]Session, error) {
	query := `SELECT id, uid, activity_id, start_time, end_time, duration_seconds, date, is_running
			FROM session ORDER BY start_time DESC LIMIT ?`
	return r.querySessions(ctx, query, limit)
}

func (r *SessionRepoImpl) querySessions(ctx context.Context, query string, args ...any) ([]Session, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query sessions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		session, err := scanSession(rows.Scan)
		if err != nil {
			err := fmt.Errorf("could not scan session: %w", err)
			log.Error(err)
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return sessions, nil
}

func scanSession(scan func(dest ...any) error) (Session, error) {
	var session Session
	var startTimeUnix int64
	var endTimeUnix, durationSeconds sql.NullInt64
	err := scan(
		&session.ID,
		&session.UID,
		&session.ActivityID,
		&startTimeUnix,
		&endTimeUnix,
		&durationSeconds,
		&session.Date,
		&session.IsRunning,
	)
	if err != nil {
		return Session{}, err
	}
	session.StartTime = time.Unix(startTimeUnix, 0)
	if endTimeUnix.Valid {
		session.EndTime = time.Unix(endTimeUnix.Int64, 0)
	}
	if durationSeconds.Valid {
		session.Duration = time.Duration(durationSeconds.Int64) * time.Second
	}
	return session, nil
}
