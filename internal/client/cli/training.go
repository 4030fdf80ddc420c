package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/gymkeeper/internal/catalog"
	"github.com/iudanet/gymkeeper/internal/models"
)

// parseExerciseRef разбирает "id[:reps[@weight]]", например "squat:5@100"
func parseExerciseRef(c *catalog.Catalog, arg string) (models.ExerciseRef, error) {
	id, target, _ := strings.Cut(strings.TrimSpace(arg), ":")
	ex, err := c.Get(id)
	if err != nil {
		return models.ExerciseRef{}, err
	}
	ref := models.ExerciseRef{ExerciseID: ex.ID, Name: ex.Name}
	if target == "" {
		return ref, nil
	}

	reps, weight, hasWeight := strings.Cut(target, "@")
	if ref.TargetReps, err = strconv.Atoi(reps); err != nil {
		return models.ExerciseRef{}, fmt.Errorf("invalid reps in %q: %w", arg, err)
	}
	if hasWeight {
		if ref.TargetWeight, err = strconv.ParseFloat(weight, 64); err != nil {
			return models.ExerciseRef{}, fmt.Errorf("invalid weight in %q: %w", arg, err)
		}
	}
	return ref, nil
}

func (c *Cli) runTrainingAdd(ctx context.Context, name string, exercises []string) error {
	if len(exercises) == 0 {
		return fmt.Errorf("at least one --exercise is required")
	}
	cat, err := c.catalog.Initialize(ctx)
	if err != nil {
		return err
	}

	training := &models.Training{Name: name}
	for _, arg := range exercises {
		ref, err := parseExerciseRef(cat, arg)
		if err != nil {
			return err
		}
		training.Exercises = append(training.Exercises, ref)
	}

	created, err := c.workout.CreateTraining(ctx, training)
	if err != nil {
		return fmt.Errorf("failed to save training: %w", err)
	}

	c.io.Println("✓ Training saved!")
	c.io.Printf("ID: %s\n", created.ID)
	return nil
}

func (c *Cli) runTrainingList(ctx context.Context) error {
	trainings, err := c.workout.ListTrainings(ctx)
	if err != nil {
		return fmt.Errorf("failed to list trainings: %w", err)
	}

	c.io.Println("=== Trainings ===")
	c.io.Println()
	if len(trainings) == 0 {
		c.io.Println("No trainings found.")
		c.io.Println()
		c.io.Println("Use 'gymkeeper training add' to create your first training.")
		return nil
	}

	c.io.Printf("Found %d training(s):\n", len(trainings))
	c.io.Println()
	for i, t := range trainings {
		c.io.Printf("%d. %s\n", i+1, t.Name)
		c.io.Printf("   ID:        %s\n", t.ID)
		c.io.Printf("   Exercises: %d\n", len(t.Exercises))
		c.io.Println()
	}
	return nil
}

func (c *Cli) runTrainingShow(ctx context.Context, id string) error {
	training, err := c.workout.GetTraining(ctx, id)
	if err != nil {
		return err
	}
	return trainingTmpl.Execute(c.io, training)
}

func (c *Cli) runTrainingDelete(ctx context.Context, id string) error {
	if err := c.workout.DeleteTraining(ctx, id); err != nil {
		return err
	}
	c.io.Printf("✓ Training %s deleted\n", id)
	return nil
}
