package activity

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type ActivityService interface {
	GetAll(ctx context.Context, includeInactive bool) ([]Activity, error)
	Get(ctx context.Context, id int) (*Activity, error)
	Create(ctx context.Context, activity Activity) (Activity, error)
	Update(ctx context.Context, activity Activity) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ActivityServiceImpl struct {
	repo ActivityRepo
}

func NewActivityServiceImpl(repo ActivityRepo) *ActivityServiceImpl {
	return &ActivityServiceImpl{repo: repo}
}

func (s *ActivityServiceImpl) GetAll(ctx context.Context, includeInactive bool) ([]Activity, error) {
	return s.repo.GetAll(ctx, includeInactive)
}

func (s *ActivityServiceImpl) Get(ctx context.Context, id int) (*Activity, error) {
	return s.repo.FindById(ctx, id)
}

func (s *ActivityServiceImpl) Create(ctx context.Context, activity Activity) (Activity, error) {
	if err := activity.Validate(); err != nil {
		return Activity{}, err
	}
	id, err := s.repo.Store(ctx, activity)
	if err != nil {
		return Activity{}, err
	}
	activity.ID = id
	return activity, nil
}

func (s *ActivityServiceImpl) Update(ctx context.Context, activity Activity) (bool, error) {
	if err := activity.Validate(); err != nil {
		return false, err
	}
	updated, err := s.repo.Update(ctx, activity)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("activity not updated, probably because it does not exist (%d)", activity.ID)
		return false, fmt.Errorf("activity not updated")
	}
	return true, nil
}

func (s *ActivityServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("activity not deleted, probably because it does not exist (%d)", id)
		return false, fmt.Errorf("activity not deleted")
	}
	return true, nil
}
