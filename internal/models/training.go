package models

import "time"

// ExerciseRef ссылка на упражнение из каталога внутри плана тренировки.
type ExerciseRef struct {
	ExerciseID   string  `json:"exerciseId" validate:"required"`                    // ExerciseID идентификатор упражнения в каталоге
	Name         string  `json:"name" validate:"required,max=120"`                  // Name отображаемое название упражнения
	Notes        string  `json:"notes,omitempty" validate:"max=500"`                // Notes заметки к упражнению
	TargetReps   int     `json:"targetReps,omitempty" validate:"gte=0,lte=1000"`    // TargetReps целевое количество повторений
	TargetWeight float64 `json:"targetWeight,omitempty" validate:"gte=0,lte=10000"` // TargetWeight целевой вес (кг)
}

// Training представляет план тренировки: упорядоченный список упражнений.
type Training struct {
	CreatedAt time.Time     `json:"createdAt"`                        // CreatedAt время создания
	UpdatedAt time.Time     `json:"updatedAt"`                        // UpdatedAt время последнего изменения
	ID        string        `json:"id" validate:"required"`           // ID уникальный идентификатор (UUID)
	Name      string        `json:"name" validate:"required,max=120"` // Name название плана, например "Leg Day"
	Exercises []ExerciseRef `json:"exercises" validate:"dive"`        // Exercises упражнения в порядке выполнения
}

// GetID returns the training identifier.
func (t *Training) GetID() string { return t.ID }

// SetID assigns the training identifier.
func (t *Training) SetID(id string) { t.ID = id }

// SetCreatedAt stamps the creation time.
func (t *Training) SetCreatedAt(ts time.Time) { t.CreatedAt = ts }

// SetUpdatedAt stamps the modification time.
func (t *Training) SetUpdatedAt(ts time.Time) { t.UpdatedAt = ts }

// Clone создает глубокую копию плана
func (t *Training) Clone() *Training {
	if t == nil {
		return nil
	}
	clone := *t
	if t.Exercises != nil {
		clone.Exercises = make([]ExerciseRef, len(t.Exercises))
		copy(clone.Exercises, t.Exercises)
	}
	return &clone
}

// LastModified returns the timestamp used for conflict resolution.
// Falls back to CreatedAt for records written before UpdatedAt existed.
func (t *Training) LastModified() time.Time {
	if t.UpdatedAt.IsZero() {
		return t.CreatedAt
	}
	return t.UpdatedAt
}

// TrainingsByNewest orders trainings by creation time, newest first.
func TrainingsByNewest(a, b *Training) bool {
	return a.CreatedAt.After(b.CreatedAt)
}
