package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gymkeeper/internal/models"
)

func TestStruct_Training(t *testing.T) {
	tests := []struct {
		training *models.Training
		name     string
		errPart  string
		wantErr  bool
	}{
		{
			name: "valid training",
			training: &models.Training{
				ID:        "t1",
				Name:      "Leg Day",
				Exercises: []models.ExerciseRef{{ExerciseID: "squat", Name: "Squat", TargetReps: 5}},
				CreatedAt: time.Now(),
			},
		},
		{
			name:     "missing name",
			training: &models.Training{ID: "t1"},
			wantErr:  true,
			errPart:  "Training.name",
		},
		{
			name:     "missing id",
			training: &models.Training{Name: "Push"},
			wantErr:  true,
			errPart:  "Training.id",
		},
		{
			name: "invalid nested exercise",
			training: &models.Training{
				ID:        "t1",
				Name:      "Pull",
				Exercises: []models.ExerciseRef{{Name: "Row"}},
			},
			wantErr: true,
			errPart: "exerciseId",
		},
		{
			name:     "nil pointer",
			training: nil,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.training)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			if tt.errPart != "" {
				assert.Contains(t, err.Error(), tt.errPart)
			}
		})
	}
}

func TestStruct_SessionStatus(t *testing.T) {
	session := &models.Session{ID: "s1", TrainingID: "t1", Status: "paused"}
	err := Struct(session)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "oneof")

	session.Status = models.SessionInProgress
	assert.NoError(t, Struct(session))
}

func TestStruct_NegativeSeries(t *testing.T) {
	session := &models.Session{
		ID:         "s1",
		TrainingID: "t1",
		Status:     models.SessionInProgress,
		Exercises: []models.SessionExercise{
			{ExerciseID: "bench", Name: "Bench", Series: []models.Series{{Reps: -1}}},
		},
	}
	err := Struct(session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reps")
}

func TestStruct_Nil(t *testing.T) {
	assert.ErrorIs(t, Struct(nil), ErrInvalid)
}
