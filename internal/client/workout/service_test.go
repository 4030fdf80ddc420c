package workout

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gymkeeper/internal/client/persistence"
	"github.com/iudanet/gymkeeper/internal/client/storage"
	"github.com/iudanet/gymkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/gymkeeper/internal/client/store"
	"github.com/iudanet/gymkeeper/internal/models"
)

type fixture struct {
	svc       *service
	local     *boltdb.Adapter
	trainings *store.Store[*models.Training]
	sessions  *store.Store[*models.Session]
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	local, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "gymkeeper.db"), boltdb.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })

	backend, err := persistence.New(storage.KindLocal, persistence.Adapters{Local: local}, nil, nil)
	require.NoError(t, err)

	trainings := store.New(backend, store.Config[*models.Training]{
		Name:         storage.KeyTrainings,
		StampCreated: true,
		StampUpdated: true,
		Less:         models.TrainingsByNewest,
	}, nil)
	sessions := store.New(backend, store.Config[*models.Session]{
		Name:         storage.KeySessions,
		StampUpdated: true,
		Less:         models.SessionsByNewest,
	}, nil)

	svc := NewService(trainings, sessions, local, nil).(*service)
	return &fixture{svc: svc, local: local, trainings: trainings, sessions: sessions}
}

func legDay() *models.Training {
	return &models.Training{
		Name: "Leg Day",
		Exercises: []models.ExerciseRef{
			{ExerciseID: "squat", Name: "Back Squat", TargetReps: 5, TargetWeight: 100},
			{ExerciseID: "lunge", Name: "Walking Lunge", TargetReps: 12},
		},
	}
}

func TestScenario_LegDay(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	training, err := f.svc.CreateTraining(ctx, legDay())
	require.NoError(t, err)
	require.NotEmpty(t, training.ID)
	assert.False(t, training.CreatedAt.IsZero())

	session, err := f.svc.CreateSession(ctx, training.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionInProgress, session.Status)
	assert.Equal(t, training.ID, session.TrainingID)
	assert.Equal(t, "Leg Day", session.Name)
	require.Len(t, session.Exercises, 2)
	for _, ex := range session.Exercises {
		assert.Len(t, ex.Series, DefaultSeries)
	}
	assert.Equal(t, models.Series{Reps: 5, Weight: 100}, session.Exercises[0].Series[0])

	ok, err := f.local.Exists(ctx, storage.SessionRecoveryKey(session.ID))
	require.NoError(t, err)
	assert.True(t, ok)

	for i, ex := range session.Exercises {
		for j, series := range ex.Series {
			series.Checked = true
			session, err = f.svc.UpdateSeries(ctx, session.ID, i, j, series)
			require.NoError(t, err)
		}
	}
	assert.True(t, session.AllSeriesChecked())

	finished, err := f.svc.FinishSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionFinished, finished.Status)
	require.NotNil(t, finished.FinishedAt)

	sessions, err := f.svc.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, models.SessionFinished, sessions[0].Status)

	ok, err = f.local.Exists(ctx, storage.SessionRecoveryKey(session.ID))
	require.NoError(t, err)
	assert.False(t, ok)

	stats, err := f.svc.ExerciseStats(ctx, "squat")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Sessions)
	assert.Equal(t, 4, stats.Series)
	assert.Equal(t, 20, stats.TotalReps)
	assert.InDelta(t, 2000.0, stats.Volume, 0.001)
}

func TestCreateSession_TrainingNotFound(t *testing.T) {
	f := setup(t)

	_, err := f.svc.CreateSession(context.Background(), "missing")
	require.ErrorIs(t, err, ErrTrainingNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestFinishSession_NotFound(t *testing.T) {
	f := setup(t)

	_, err := f.svc.FinishSession(context.Background(), "s404")
	require.ErrorIs(t, err, ErrSessionNotFound)
	assert.Contains(t, err.Error(), "s404")
}

func TestFinishSession_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	training, err := f.svc.CreateTraining(ctx, legDay())
	require.NoError(t, err)
	session, err := f.svc.CreateSession(ctx, training.ID)
	require.NoError(t, err)

	first, err := f.svc.FinishSession(ctx, session.ID)
	require.NoError(t, err)
	second, err := f.svc.FinishSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = f.svc.UpdateSeries(ctx, session.ID, 0, 0, models.Series{Reps: 1})
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestUpdateSeries_Errors(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	training, err := f.svc.CreateTraining(ctx, legDay())
	require.NoError(t, err)
	session, err := f.svc.CreateSession(ctx, training.ID)
	require.NoError(t, err)

	tests := []struct {
		wantErr     error
		name        string
		sessionID   string
		series      models.Series
		exerciseIdx int
		seriesIdx   int
	}{
		{name: "unknown session", sessionID: "nope", wantErr: ErrSessionNotFound},
		{name: "exercise out of range", sessionID: session.ID, exerciseIdx: 5, wantErr: ErrSeriesOutOfRange},
		{name: "series out of range", sessionID: session.ID, seriesIdx: DefaultSeries, wantErr: ErrSeriesOutOfRange},
		{name: "negative index", sessionID: session.ID, seriesIdx: -1, wantErr: ErrSeriesOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.UpdateSeries(ctx, tt.sessionID, tt.exerciseIdx, tt.seriesIdx, tt.series)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Отрицательные повторения отклоняются схемой
	_, err = f.svc.UpdateSeries(ctx, session.ID, 0, 0, models.Series{Reps: -1})
	assert.Error(t, err)
	got, err := f.svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Exercises[0].Series[0].Reps)
}

func TestDeleteTraining(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	training, err := f.svc.CreateTraining(ctx, legDay())
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteTraining(ctx, training.ID))
	trainings, err := f.svc.ListTrainings(ctx)
	require.NoError(t, err)
	assert.Empty(t, trainings)

	err = f.svc.DeleteTraining(ctx, training.ID)
	assert.ErrorIs(t, err, ErrTrainingNotFound)
}

func TestDeleteSession_DropsSnapshot(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	training, err := f.svc.CreateTraining(ctx, legDay())
	require.NoError(t, err)
	session, err := f.svc.CreateSession(ctx, training.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteSession(ctx, session.ID))
	ok, err := f.local.Exists(ctx, storage.SessionRecoveryKey(session.ID))
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, f.svc.DeleteSession(ctx, session.ID), ErrSessionNotFound)
}

func TestRecoverSessions(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	training, err := f.svc.CreateTraining(ctx, legDay())
	require.NoError(t, err)
	session, err := f.svc.CreateSession(ctx, training.ID)
	require.NoError(t, err)

	// Снимок новее сохраненной сессии: изменения не успели записаться
	snapshot := session.Clone()
	snapshot.Exercises[0].Series[0] = models.Series{Reps: 7, Weight: 110, Checked: true}
	snapshot.UpdatedAt = session.UpdatedAt.Add(time.Minute)
	require.NoError(t, f.local.Set(ctx, storage.SessionRecoveryKey(session.ID), snapshot))

	// Снимок удаленной сессии и поврежденный снимок удаляются
	orphan := session.Clone()
	orphan.ID = "orphan"
	require.NoError(t, f.local.Set(ctx, storage.SessionRecoveryKey("orphan"), orphan))
	require.NoError(t, f.local.Set(ctx, storage.SessionRecoveryKey("broken"), map[string]any{"id": ""}))

	restored, err := f.svc.RecoverSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, restored)

	got, err := f.svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Exercises[0].Series[0].Reps)

	keys, err := f.local.Keys(ctx, storage.SessionRecoveryPrefix())
	require.NoError(t, err)
	assert.Equal(t, []string{storage.SessionRecoveryKey(session.ID)}, keys)

	// Повторный запуск ничего не меняет
	restored, err = f.svc.RecoverSessions(ctx)
	require.NoError(t, err)
	assert.Zero(t, restored)
}

func TestComputeExerciseStats(t *testing.T) {
	day := func(d int) *time.Time {
		ts := time.Date(2025, 5, d, 18, 0, 0, 0, time.UTC)
		return &ts
	}
	sessions := []*models.Session{
		{
			Status:     models.SessionFinished,
			FinishedAt: day(3),
			Exercises: []models.SessionExercise{
				{ExerciseID: "squat", Series: []models.Series{
					{Reps: 5, Weight: 100, Checked: true},
					{Reps: 5, Weight: 110, Checked: true},
					{Reps: 5, Weight: 120, Checked: false},
				}},
				{ExerciseID: "lunge", Series: []models.Series{{Reps: 10, Weight: 20, Checked: true}}},
			},
		},
		{
			Status:     models.SessionFinished,
			FinishedAt: day(1),
			Exercises: []models.SessionExercise{
				{ExerciseID: "squat", Series: []models.Series{{Reps: 3, Weight: 90, Checked: true}}},
			},
		},
		{
			Status: models.SessionInProgress,
			Exercises: []models.SessionExercise{
				{ExerciseID: "squat", Series: []models.Series{{Reps: 1, Weight: 200, Checked: true}}},
			},
		},
	}

	stats := ComputeExerciseStats(sessions, "squat")
	assert.Equal(t, 2, stats.Sessions)
	assert.Equal(t, 3, stats.Series)
	assert.Equal(t, 13, stats.TotalReps)
	assert.InDelta(t, 110.0, stats.MaxWeight, 0.001)
	assert.InDelta(t, 500+550+270.0, stats.Volume, 0.001)
	require.Len(t, stats.History, 2)
	assert.Equal(t, *day(1), stats.History[0].Date)
	assert.Equal(t, *day(3), *stats.LastPerformed)

	empty := ComputeExerciseStats(sessions, "deadlift")
	assert.Zero(t, empty.Sessions)
	assert.Nil(t, empty.LastPerformed)
	assert.Empty(t, empty.History)
}
