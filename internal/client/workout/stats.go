package workout

import (
	"slices"
	"time"

	"github.com/iudanet/gymkeeper/internal/models"
)

// StatPoint summarizes one session of an exercise.
type StatPoint struct {
	Date      time.Time `json:"date"`
	MaxWeight float64   `json:"maxWeight"`
	Volume    float64   `json:"volume"` // сумма reps*weight выполненных подходов
	Reps      int       `json:"reps"`
}

// Stats aggregates the checked series of one exercise over finished sessions.
type Stats struct {
	LastPerformed *time.Time  `json:"lastPerformed,omitempty"`
	ExerciseID    string      `json:"exerciseId"`
	History       []StatPoint `json:"history"` // по возрастанию даты
	MaxWeight     float64     `json:"maxWeight"`
	Volume        float64     `json:"volume"`
	Sessions      int         `json:"sessions"`
	Series        int         `json:"series"`
	TotalReps     int         `json:"totalReps"`
}

// ComputeExerciseStats is a pure aggregation over sessions. Only finished
// sessions and checked series are counted.
func ComputeExerciseStats(sessions []*models.Session, exerciseID string) Stats {
	stats := Stats{ExerciseID: exerciseID, History: []StatPoint{}}

	for _, session := range sessions {
		if !session.IsFinished() {
			continue
		}

		var point StatPoint
		counted := false
		for _, ex := range session.Exercises {
			if ex.ExerciseID != exerciseID {
				continue
			}
			for _, series := range ex.Series {
				if !series.Checked {
					continue
				}
				counted = true
				point.Reps += series.Reps
				point.Volume += float64(series.Reps) * series.Weight
				point.MaxWeight = max(point.MaxWeight, series.Weight)
				stats.Series++
			}
		}
		if !counted {
			continue
		}

		point.Date = session.StartedAt
		if session.FinishedAt != nil {
			point.Date = *session.FinishedAt
		}
		stats.History = append(stats.History, point)
		stats.Sessions++
		stats.TotalReps += point.Reps
		stats.Volume += point.Volume
		stats.MaxWeight = max(stats.MaxWeight, point.MaxWeight)
	}

	slices.SortFunc(stats.History, func(a, b StatPoint) int {
		return a.Date.Compare(b.Date)
	})
	if n := len(stats.History); n > 0 {
		last := stats.History[n-1].Date
		stats.LastPerformed = &last
	}

	return stats
}
