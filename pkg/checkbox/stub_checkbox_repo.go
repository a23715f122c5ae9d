package checkbox

import (
	"context"
	"fmt"
	"sort"
)

type StubCheckboxRepo struct {
	checkboxes map[string]Checkbox
	nextId     int
}

func NewStubCheckboxRepo() *StubCheckboxRepo {
	return &StubCheckboxRepo{checkboxes: make(map[string]Checkbox), nextId: 1}
}

func key(activityId int, date string) string {
	return fmt.Sprintf("%d/%s", activityId, date)
}

func (r *StubCheckboxRepo) Upsert(_ context.Context, activityId int, date string, isChecked bool) (Checkbox, error) {
	k := key(activityId, date)
	existing, ok := r.checkboxes[k]
	if ok {
		existing.IsChecked = isChecked
		r.checkboxes[k] = existing
		return existing, nil
	}
	checkbox := Checkbox{ID: r.nextId, ActivityID: activityId, Date: date, IsChecked: isChecked}
	r.nextId++
	r.checkboxes[k] = checkbox
	return checkbox, nil
}

func (r *StubCheckboxRepo) Find(_ context.Context, activityId int, date string) (*Checkbox, error) {
	checkbox, ok := r.checkboxes[key(activityId, date)]
	if !ok {
		return nil, nil
	}
	return &checkbox, nil
}

func (r *StubCheckboxRepo) ListForDate(_ context.Context, date string) ([]Checkbox, error) {
	var result []Checkbox
	for _, checkbox := range r.checkboxes {
		if checkbox.Date == date {
			result = append(result, checkbox)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ActivityID < result[j].ActivityID })
	return result, nil
}

func (r *StubCheckboxRepo) ListForActivityBetween(_ context.Context, activityId int, fromDate string, toDate string) ([]Checkbox, error) {
	var result []Checkbox
	for _, checkbox := range r.checkboxes {
		if checkbox.ActivityID == activityId && checkbox.Date >= fromDate && checkbox.Date <= toDate {
			result = append(result, checkbox)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (r *StubCheckboxRepo) GetAll(_ context.Context) ([]Checkbox, error) {
	var result []Checkbox
	for _, checkbox := range r.checkboxes {
		result = append(result, checkbox)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].ActivityID < result[j].ActivityID
	})
	return result, nil
}

func (r *StubCheckboxRepo) Cleanup() {
	r.checkboxes = make(map[string]Checkbox)
	r.nextId = 1
}
