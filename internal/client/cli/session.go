package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/gymkeeper/internal/models"
)

// SeriesUpdate описывает изменения подхода; nil поля не меняются
type SeriesUpdate struct {
	Reps    *int
	Weight  *float64
	Checked *bool
}

func (c *Cli) runSessionStart(ctx context.Context, trainingID string) error {
	session, err := c.workout.CreateSession(ctx, trainingID)
	if err != nil {
		return err
	}
	c.io.Println("✓ Session started!")
	return sessionTmpl.Execute(c.io, session)
}

func (c *Cli) runSessionSeries(ctx context.Context, sessionID string, exerciseIdx, seriesIdx int, upd SeriesUpdate) error {
	session, err := c.workout.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if exerciseIdx < 0 || exerciseIdx >= len(session.Exercises) ||
		seriesIdx < 0 || seriesIdx >= len(session.Exercises[exerciseIdx].Series) {
		return fmt.Errorf("no series %d of exercise %d in session %s", seriesIdx, exerciseIdx, sessionID)
	}

	series := session.Exercises[exerciseIdx].Series[seriesIdx]
	if upd.Reps != nil {
		series.Reps = *upd.Reps
	}
	if upd.Weight != nil {
		series.Weight = *upd.Weight
	}
	if upd.Checked != nil {
		series.Checked = *upd.Checked
	}

	session, err = c.workout.UpdateSeries(ctx, sessionID, exerciseIdx, seriesIdx, series)
	if err != nil {
		return err
	}
	return sessionTmpl.Execute(c.io, session)
}

func (c *Cli) runSessionShow(ctx context.Context, id string) error {
	session, err := c.workout.GetSession(ctx, id)
	if err != nil {
		return err
	}
	return sessionTmpl.Execute(c.io, session)
}

func (c *Cli) runSessionFinish(ctx context.Context, id string) error {
	session, err := c.workout.FinishSession(ctx, id)
	if err != nil {
		return err
	}
	c.io.Println("✓ Session finished!")
	if !session.AllSeriesChecked() {
		c.io.Println("Note: some series were not checked and are excluded from stats.")
	}
	return nil
}

func (c *Cli) runSessionList(ctx context.Context) error {
	sessions, err := c.workout.ListSessions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	c.io.Println("=== Sessions ===")
	c.io.Println()
	if len(sessions) == 0 {
		c.io.Println("No sessions found.")
		c.io.Println()
		c.io.Println("Use 'gymkeeper session start <training-id>' to begin a workout.")
		return nil
	}

	for i, s := range sessions {
		marker := "▶"
		if s.Status == models.SessionFinished {
			marker = "✓"
		}
		c.io.Printf("%d. %s %s (%s)\n", i+1, marker, s.Name, s.StartedAt.Local().Format("2006-01-02 15:04"))
		c.io.Printf("   ID: %s\n", s.ID)
	}
	return nil
}

func (c *Cli) runSessionDelete(ctx context.Context, id string) error {
	if err := c.workout.DeleteSession(ctx, id); err != nil {
		return err
	}
	c.io.Printf("✓ Session %s deleted\n", id)
	return nil
}

func (c *Cli) runRecover(ctx context.Context) error {
	restored, err := c.workout.RecoverSessions(ctx)
	if err != nil {
		return err
	}
	if restored > 0 {
		c.io.Printf("Recovered %d unsaved session(s).\n", restored)
	}
	return nil
}

func (c *Cli) runStats(ctx context.Context, exerciseID string) error {
	stats, err := c.workout.ExerciseStats(ctx, exerciseID)
	if err != nil {
		return err
	}
	return statsTmpl.Execute(c.io, stats)
}
