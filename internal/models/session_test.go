package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Clone(t *testing.T) {
	finished := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	original := &Session{
		ID:         "s1",
		TrainingID: "t1",
		Status:     SessionFinished,
		FinishedAt: &finished,
		Exercises: []SessionExercise{
			{ExerciseID: "squat", Name: "Squat", Series: []Series{{Reps: 5, Weight: 100}}},
		},
	}

	clone := original.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, original, clone)

	// Изменения копии не должны затрагивать оригинал
	clone.Exercises[0].Series[0].Reps = 8
	*clone.FinishedAt = finished.Add(time.Hour)

	assert.Equal(t, 5, original.Exercises[0].Series[0].Reps)
	assert.Equal(t, finished, *original.FinishedAt)
}

func TestSession_CloneNil(t *testing.T) {
	var s *Session
	assert.Nil(t, s.Clone())
}

func TestSession_LastModified(t *testing.T) {
	started := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := started.Add(30 * time.Minute)

	tests := []struct {
		session  *Session
		expected time.Time
		name     string
	}{
		{
			name:     "updatedAt set",
			session:  &Session{StartedAt: started, UpdatedAt: updated},
			expected: updated,
		},
		{
			name:     "falls back to startedAt",
			session:  &Session{StartedAt: started},
			expected: started,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.session.LastModified())
		})
	}
}

func TestSession_AllSeriesChecked(t *testing.T) {
	s := &Session{Exercises: []SessionExercise{
		{Series: []Series{{Checked: true}, {Checked: false}}},
	}}
	assert.False(t, s.AllSeriesChecked())

	s.Exercises[0].Series[1].Checked = true
	assert.True(t, s.AllSeriesChecked())
}

func TestTraining_CloneAndOrder(t *testing.T) {
	older := &Training{ID: "a", CreatedAt: time.Unix(100, 0)}
	newer := &Training{ID: "b", CreatedAt: time.Unix(200, 0), Exercises: []ExerciseRef{{ExerciseID: "x", Name: "X"}}}

	assert.True(t, TrainingsByNewest(newer, older))
	assert.False(t, TrainingsByNewest(older, newer))

	clone := newer.Clone()
	clone.Exercises[0].Name = "changed"
	assert.Equal(t, "X", newer.Exercises[0].Name)
	assert.Equal(t, newer.CreatedAt, newer.LastModified())
}
