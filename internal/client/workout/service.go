// Package workout implements the training and session flows on top of the
// entity stores.
package workout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/gymkeeper/internal/client/storage"
	"github.com/iudanet/gymkeeper/internal/client/store"
	"github.com/iudanet/gymkeeper/internal/models"
	"github.com/iudanet/gymkeeper/internal/validation"
)

//go:generate moq -out service_mock.go . Service

// DefaultSeries количество подходов, создаваемых для упражнения новой сессии
const DefaultSeries = 4

var (
	// ErrTrainingNotFound indicates an unknown training id
	ErrTrainingNotFound = errors.New("training not found")

	// ErrSessionNotFound indicates an unknown session id
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionFinished indicates a change to a finished session
	ErrSessionFinished = errors.New("session already finished")

	// ErrSeriesOutOfRange indicates an exercise or series index outside the session
	ErrSeriesOutOfRange = errors.New("series index out of range")
)

// Service определяет интерфейс доменного сервиса тренировок
type Service interface {
	CreateTraining(ctx context.Context, training *models.Training) (*models.Training, error)
	ListTrainings(ctx context.Context) ([]*models.Training, error)
	GetTraining(ctx context.Context, id string) (*models.Training, error)
	DeleteTraining(ctx context.Context, id string) error

	CreateSession(ctx context.Context, trainingID string) (*models.Session, error)
	GetSession(ctx context.Context, id string) (*models.Session, error)
	ListSessions(ctx context.Context) ([]*models.Session, error)
	UpdateSeries(ctx context.Context, sessionID string, exerciseIdx, seriesIdx int, series models.Series) (*models.Session, error)
	FinishSession(ctx context.Context, id string) (*models.Session, error)
	DeleteSession(ctx context.Context, id string) error
	RecoverSessions(ctx context.Context) (int, error)

	ExerciseStats(ctx context.Context, exerciseID string) (*Stats, error)
}

// Collection is the part of an entity store the service uses.
type Collection[T any] interface {
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
}

var (
	_ Collection[*models.Training] = (*store.Store[*models.Training])(nil)
	_ Collection[*models.Session]  = (*store.Store[*models.Session])(nil)
)

// service реализует Service
type service struct {
	trainings Collection[*models.Training]
	sessions  Collection[*models.Session]
	recovery  storage.Adapter
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates the workout service. Crash-recovery snapshots of
// in-progress sessions are written to recovery, which should be the local
// adapter.
func NewService(
	trainings Collection[*models.Training],
	sessions Collection[*models.Session],
	recovery storage.Adapter,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &service{
		trainings: trainings,
		sessions:  sessions,
		recovery:  recovery,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateTraining stores a new training plan.
func (s *service) CreateTraining(ctx context.Context, training *models.Training) (*models.Training, error) {
	created, err := s.trainings.Create(ctx, training)
	if err != nil {
		return nil, fmt.Errorf("failed to create training: %w", err)
	}
	s.logger.InfoContext(ctx, "training created", "training_id", created.ID, "name", created.Name)
	return created, nil
}

// ListTrainings returns training plans, newest first.
func (s *service) ListTrainings(ctx context.Context) ([]*models.Training, error) {
	trainings, err := s.trainings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainings: %w", err)
	}
	return trainings, nil
}

// GetTraining returns the training plan with id.
func (s *service) GetTraining(ctx context.Context, id string) (*models.Training, error) {
	training, err := s.trainings.GetByID(ctx, id)
	if errors.Is(err, store.ErrItemNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrTrainingNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get training: %w", err)
	}
	return training, nil
}

// DeleteTraining removes a training plan. Sessions started from it are kept.
func (s *service) DeleteTraining(ctx context.Context, id string) error {
	err := s.trainings.Delete(ctx, id)
	if errors.Is(err, store.ErrItemNotFound) {
		return fmt.Errorf("%w: %q", ErrTrainingNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete training: %w", err)
	}
	return nil
}

// CreateSession starts a session from a training plan. Every exercise gets
// DefaultSeries series seeded from its targets.
func (s *service) CreateSession(ctx context.Context, trainingID string) (*models.Session, error) {
	training, err := s.GetTraining(ctx, trainingID)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		TrainingID: training.ID,
		Name:       training.Name,
		StartedAt:  s.now(),
		Status:     models.SessionInProgress,
		Exercises:  make([]models.SessionExercise, 0, len(training.Exercises)),
	}
	for _, ex := range training.Exercises {
		series := make([]models.Series, DefaultSeries)
		for i := range series {
			series[i] = models.Series{Reps: ex.TargetReps, Weight: ex.TargetWeight}
		}
		session.Exercises = append(session.Exercises, models.SessionExercise{
			ExerciseID: ex.ExerciseID,
			Name:       ex.Name,
			Series:     series,
		})
	}

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.saveSnapshot(ctx, created)

	s.logger.InfoContext(ctx, "session started", "session_id", created.ID, "training_id", trainingID)
	return created, nil
}

// GetSession returns the session with id.
func (s *service) GetSession(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if errors.Is(err, store.ErrItemNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListSessions returns sessions, newest first.
func (s *service) ListSessions(ctx context.Context) ([]*models.Session, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// UpdateSeries replaces one series of an in-progress session and refreshes
// its recovery snapshot.
func (s *service) UpdateSeries(ctx context.Context, sessionID string, exerciseIdx, seriesIdx int, series models.Series) (*models.Session, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsFinished() {
		return nil, fmt.Errorf("%w: %q", ErrSessionFinished, sessionID)
	}
	if exerciseIdx < 0 || exerciseIdx >= len(session.Exercises) {
		return nil, fmt.Errorf("%w: exercise %d", ErrSeriesOutOfRange, exerciseIdx)
	}
	exercise := &session.Exercises[exerciseIdx]
	if seriesIdx < 0 || seriesIdx >= len(exercise.Series) {
		return nil, fmt.Errorf("%w: series %d of %q", ErrSeriesOutOfRange, seriesIdx, exercise.ExerciseID)
	}
	exercise.Series[seriesIdx] = series

	updated, err := s.sessions.Update(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	s.saveSnapshot(ctx, updated)
	return updated, nil
}

// FinishSession marks the session finished and drops its recovery
// snapshot. Finishing a finished session returns it unchanged.
func (s *service) FinishSession(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.IsFinished() {
		return session, nil
	}

	finishedAt := s.now()
	session.Status = models.SessionFinished
	session.FinishedAt = &finishedAt

	updated, err := s.sessions.Update(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to finish session: %w", err)
	}
	s.dropSnapshot(ctx, id)

	s.logger.InfoContext(ctx, "session finished", "session_id", id)
	return updated, nil
}

// DeleteSession removes a session and its recovery snapshot.
func (s *service) DeleteSession(ctx context.Context, id string) error {
	err := s.sessions.Delete(ctx, id)
	if errors.Is(err, store.ErrItemNotFound) {
		return fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.dropSnapshot(ctx, id)
	return nil
}

// RecoverSessions re-applies crash-recovery snapshots that are newer than
// the stored session. Snapshots of finished, deleted or unreadable sessions
// are removed. It returns the number of restored sessions.
func (s *service) RecoverSessions(ctx context.Context) (int, error) {
	lister, ok := s.recovery.(storage.Lister)
	if !ok {
		return 0, nil
	}
	keys, err := lister.Keys(ctx, storage.SessionRecoveryPrefix())
	if err != nil {
		return 0, fmt.Errorf("failed to list recovery snapshots: %w", err)
	}

	restored := 0
	for _, key := range keys {
		snapshot, err := s.readSnapshot(ctx, key)
		if err != nil {
			s.logger.WarnContext(ctx, "dropping unreadable recovery snapshot", "key", key, "error", err)
			s.removeKey(ctx, key)
			continue
		}

		current, err := s.sessions.GetByID(ctx, snapshot.ID)
		if errors.Is(err, store.ErrItemNotFound) || (err == nil && current.IsFinished()) {
			s.removeKey(ctx, key)
			continue
		}
		if err != nil {
			return restored, fmt.Errorf("failed to get session: %w", err)
		}

		if !snapshot.LastModified().After(current.LastModified()) {
			continue
		}
		updated, err := s.sessions.Update(ctx, snapshot)
		if err != nil {
			return restored, fmt.Errorf("failed to restore session %q: %w", snapshot.ID, err)
		}
		s.saveSnapshot(ctx, updated)
		restored++
		s.logger.InfoContext(ctx, "session restored from snapshot", "session_id", snapshot.ID)
	}

	return restored, nil
}

func (s *service) readSnapshot(ctx context.Context, key string) (*models.Session, error) {
	raw, err := s.recovery.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("snapshot is empty")
	}
	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	if err := validation.Struct(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

// saveSnapshot пишет снимок сессии; ошибка не прерывает операцию
func (s *service) saveSnapshot(ctx context.Context, session *models.Session) {
	if s.recovery == nil {
		return
	}
	if err := s.recovery.Set(ctx, storage.SessionRecoveryKey(session.ID), session); err != nil {
		s.logger.WarnContext(ctx, "failed to save recovery snapshot", "session_id", session.ID, "error", err)
	}
}

func (s *service) dropSnapshot(ctx context.Context, sessionID string) {
	if s.recovery == nil {
		return
	}
	s.removeKey(ctx, storage.SessionRecoveryKey(sessionID))
}

func (s *service) removeKey(ctx context.Context, key string) {
	if err := s.recovery.Remove(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "failed to remove recovery snapshot", "key", key, "error", err)
	}
}

// ExerciseStats aggregates the finished sessions for one exercise.
func (s *service) ExerciseStats(ctx context.Context, exerciseID string) (*Stats, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	stats := ComputeExerciseStats(sessions, exerciseID)
	return &stats, nil
}
