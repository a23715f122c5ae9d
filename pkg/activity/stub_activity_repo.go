package activity

import (
	"context"
)

type StubActivityRepo struct {
	nextId int
	data   map[int]Activity
}

func NewStubActivityRepo() *StubActivityRepo {
	return &StubActivityRepo{data: map[int]Activity{}}
}

func (s *StubActivityRepo) Store(ctx context.Context, activity Activity) (int, error) {
	s.nextId++
	activity.ID = s.nextId
	s.data[activity.ID] = activity
	return activity.ID, nil
}

func (s *StubActivityRepo) GetAll(ctx context.Context, includeInactive bool) ([]Activity, error) {
	activities := make([]Activity, 0, len(s.data))
	for id := 1; id <= s.nextId; id++ {
		activity, ok := s.data[id]
		if !ok {
			continue
		}
		if activity.IsActive || includeInactive {
			activities = append(activities, activity)
		}
	}
	return activities, nil
}

func (s *StubActivityRepo) FindById(ctx context.Context, id int) (*Activity, error) {
	activity, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	return &activity, nil
}

func (s *StubActivityRepo) Update(ctx context.Context, activity Activity) (bool, error) {
	if _, ok := s.data[activity.ID]; !ok {
		return false, nil
	}
	s.data[activity.ID] = activity
	return true, nil
}

func (s *StubActivityRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubActivityRepo) Cleanup() {
	s.nextId = 0
	s.data = map[int]Activity{}
}
