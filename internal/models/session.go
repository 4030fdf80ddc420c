package models

import "time"

// SessionStatus состояние тренировочной сессии
type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress" // сессия идет
	SessionFinished   SessionStatus = "finished"    // сессия завершена
)

// Series представляет один подход упражнения.
type Series struct {
	Reps    int     `json:"reps" validate:"gte=0,lte=1000"`    // Reps количество повторений
	Weight  float64 `json:"weight" validate:"gte=0,lte=10000"` // Weight рабочий вес (кг)
	Checked bool    `json:"checked"`                           // Checked подход выполнен
}

// SessionExercise упражнение внутри сессии вместе с подходами.
type SessionExercise struct {
	ExerciseID string   `json:"exerciseId" validate:"required"`   // ExerciseID идентификатор упражнения в каталоге
	Name       string   `json:"name" validate:"required,max=120"` // Name название упражнения
	Series     []Series `json:"series" validate:"dive"`           // Series подходы в порядке выполнения
}

// Session представляет тренировочную сессию, начатую по плану тренировки.
// UpdatedAt используется для разрешения конфликтов при синхронизации.
type Session struct {
	StartedAt  time.Time         `json:"startedAt"`                                             // StartedAt время начала
	UpdatedAt  time.Time         `json:"updatedAt"`                                             // UpdatedAt время последнего изменения
	FinishedAt *time.Time        `json:"finishedAt,omitempty"`                                  // FinishedAt время завершения (nil пока идет)
	ID         string            `json:"id" validate:"required"`                                // ID уникальный идентификатор (UUID)
	TrainingID string            `json:"trainingId" validate:"required"`                        // TrainingID план, из которого создана сессия
	Name       string            `json:"name" validate:"max=120"`                               // Name название (копируется из плана)
	Status     SessionStatus     `json:"status" validate:"required,oneof=in_progress finished"` // Status in_progress | finished
	Exercises  []SessionExercise `json:"exercises" validate:"dive"`                             // Exercises упражнения с подходами
}

// GetID returns the session identifier.
func (s *Session) GetID() string { return s.ID }

// SetID assigns the session identifier.
func (s *Session) SetID(id string) { s.ID = id }

// SetUpdatedAt stamps the modification time.
func (s *Session) SetUpdatedAt(ts time.Time) { s.UpdatedAt = ts }

// Clone создает глубокую копию сессии
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	clone := *s
	if s.FinishedAt != nil {
		finished := *s.FinishedAt
		clone.FinishedAt = &finished
	}
	if s.Exercises != nil {
		clone.Exercises = make([]SessionExercise, len(s.Exercises))
		for i, ex := range s.Exercises {
			clone.Exercises[i] = ex
			if ex.Series != nil {
				clone.Exercises[i].Series = make([]Series, len(ex.Series))
				copy(clone.Exercises[i].Series, ex.Series)
			}
		}
	}

	return &clone
}

// LastModified returns the timestamp used for conflict resolution.
// Sessions written before UpdatedAt was tracked fall back to StartedAt.
func (s *Session) LastModified() time.Time {
	if s.UpdatedAt.IsZero() {
		return s.StartedAt
	}
	return s.UpdatedAt
}

// IsFinished reports whether the session was finished.
func (s *Session) IsFinished() bool {
	return s.Status == SessionFinished
}

// AllSeriesChecked reports whether every series of every exercise is checked.
func (s *Session) AllSeriesChecked() bool {
	for _, ex := range s.Exercises {
		for _, series := range ex.Series {
			if !series.Checked {
				return false
			}
		}
	}
	return true
}

// SessionsByNewest orders sessions by start time, newest first.
func SessionsByNewest(a, b *Session) bool {
	return a.StartedAt.After(b.StartedAt)
}
