package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

type fakeWindowRepo struct {
	windows []model.AvailabilityWindow
	nextID  int64
}

func (f *fakeWindowRepo) Create(_ context.Context, w *model.AvailabilityWindow) error {
	f.nextID++
	w.ID = f.nextID
	f.windows = append(f.windows, *w)
	return nil
}

func (f *fakeWindowRepo) Update(_ context.Context, w *model.AvailabilityWindow) error {
	for i := range f.windows {
		if f.windows[i].ID == w.ID && f.windows[i].CompanyID == w.CompanyID {
			f.windows[i] = *w
			return nil
		}
	}
	return model.ErrNotFound
}

func (f *fakeWindowRepo) Delete(_ context.Context, id, companyID int64) error {
	for i := range f.windows {
		if f.windows[i].ID == id && f.windows[i].CompanyID == companyID {
			f.windows = append(f.windows[:i], f.windows[i+1:]...)
			return nil
		}
	}
	return model.ErrNotFound
}

func (f *fakeWindowRepo) ListByCompany(_ context.Context, companyID int64) ([]model.AvailabilityWindow, error) {
	var out []model.AvailabilityWindow
	for _, w := range f.windows {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out, nil
}

func newScheduleService() (*ScheduleService, *fakeWindowRepo) {
	repo := &fakeWindowRepo{}
	return NewScheduleService(repo, zap.NewNop()), repo
}

func TestAddWindow(t *testing.T) {
	svc, repo := newScheduleService()

	w, err := svc.AddWindow(context.Background(), 7, WindowInput{
		DayOfWeek: "Monday",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), w.ID)
	assert.Equal(t, int64(7), w.CompanyID)
	assert.Equal(t, "Monday", w.DayOfWeek)
	assert.Equal(t, "09:00", w.StartTime.String())
	assert.Equal(t, "10:00", w.EndTime.String())
	assert.True(t, w.Active, "windows default to active")
	assert.Len(t, repo.windows, 1)
}

func TestAddWindowValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    WindowInput
		field string
	}{
		{"missing day", WindowInput{StartTime: "09:00", EndTime: "10:00"}, "day_of_week"},
		{"bad day name", WindowInput{DayOfWeek: "Funday", StartTime: "09:00", EndTime: "10:00"}, "day_of_week"},
		{"missing start", WindowInput{DayOfWeek: "Monday", EndTime: "10:00"}, "start_time"},
		{"missing end", WindowInput{DayOfWeek: "Monday", StartTime: "09:00"}, "end_time"},
		{"unparseable start", WindowInput{DayOfWeek: "Monday", StartTime: "quarter past", EndTime: "10:00"}, "start_time"},
		{"start after end", WindowInput{DayOfWeek: "Monday", StartTime: "11:00", EndTime: "10:00"}, "end_time"},
		{"start equals end", WindowInput{DayOfWeek: "Monday", StartTime: "10:00", EndTime: "10:00"}, "end_time"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newScheduleService()

			_, err := svc.AddWindow(context.Background(), 7, tc.in)

			var vErr *model.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.Empty(t, repo.windows, "rejected before any write")
		})
	}
}

func TestEditWindow(t *testing.T) {
	svc, repo := newScheduleService()
	created, err := svc.AddWindow(context.Background(), 7, WindowInput{
		DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.EditWindow(context.Background(), created.ID, 7, WindowInput{
		DayOfWeek: "Tuesday", StartTime: "14:00", EndTime: "16:30", Active: &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, "Tuesday", updated.DayOfWeek)
	assert.Equal(t, "14:00", updated.StartTime.String())
	assert.False(t, updated.Active)
	assert.Equal(t, "Tuesday", repo.windows[0].DayOfWeek)
}

func TestEditWindowWrongCompany(t *testing.T) {
	svc, _ := newScheduleService()
	created, err := svc.AddWindow(context.Background(), 7, WindowInput{
		DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)

	_, err = svc.EditWindow(context.Background(), created.ID, 8, WindowInput{
		DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00",
	})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteWindow(t *testing.T) {
	svc, repo := newScheduleService()
	created, err := svc.AddWindow(context.Background(), 7, WindowInput{
		DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWindow(context.Background(), created.ID, 7))
	assert.Empty(t, repo.windows)

	// Second delete is a no-op signal, not a failure mode.
	err = svc.DeleteWindow(context.Background(), created.ID, 7)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
