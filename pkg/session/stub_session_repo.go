package session

import (
	"context"
	"time"
)

type StubSessionRepo struct {
	nextId int
	data   map[int]Session
}

func NewStubSessionRepo() *StubSessionRepo {
	return &StubSessionRepo{data: map[int]Session{}}
}

func (s *StubSessionRepo) Store(ctx context.Context, session Session) (Session, error) {
	s.nextId++
	session.ID = s.nextId
	s.data[session.ID] = session
	return session, nil
}

func (s *StubSessionRepo) Finish(ctx context.Context, id int, endTime time.Time, duration time.Duration) (bool, error) {
	session, ok := s.data[id]
	if !ok || !session.IsRunning {
		return false, nil
	}
	session.EndTime = endTime
	session.Duration = duration
	session.IsRunning = false
	s.data[id] = session
	return true, nil
}

func (s *StubSessionRepo) FindRunning(ctx context.Context, activityId int) (*Session, error) {
	for _, session := range s.data {
		if session.ActivityID == activityId && session.IsRunning {
			found := session
			return &found, nil
		}
	}
	return nil, nil
}

func (s *StubSessionRepo) DeleteRunning(ctx context.Context, activityId int) error {
	for id, session := range s.data {
		if session.ActivityID == activityId && session.IsRunning {
			delete(s.data, id)
		}
	}
	return nil
}

func (s *StubSessionRepo) GetAll(ctx context.Context) ([]Session, error) {
	sessions := make([]Session, 0, len(s.data))
	for id := 1; id <= s.nextId; id++ {
		if session, ok := s.data[id]; ok {
			sessions = append(sessions, session)
		}
	}
	return sessions, nil
}

func (s *StubSessionRepo) ListRecent(ctx context.Context, limit int) ([]Session, error) {
	sessions, _ := s.GetAll(ctx)
	if len(sessions) > limit {
		sessions = sessions[len(sessions)-limit:]
	}
	// newest first
	for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}
	return sessions, nil
}

func (s *StubSessionRepo) Cleanup() {
	s.nextId = 0
	s.data = map[int]Session{}
}
