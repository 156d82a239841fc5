package service

import (
	"context"
	"fmt"

	"github.com/rkhalikov/go-task-keeper/internal/classifier"
	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/internal/store"
	"github.com/rkhalikov/go-task-keeper/internal/validators"
	"github.com/rkhalikov/go-task-keeper/models"
)

// householdConfidenceThreshold is the minimum score the "Household" label
// needs to win outright. The zero-shot model over-predicts Household on
// short task titles, so a low-confidence Household verdict falls through to
// the runner-up label.
const householdConfidenceThreshold = 0.5

// taskService is the concrete implementation of TaskService. It orchestrates
// validation, ownership checks, category inference and persistence.
type taskService struct {
	taskRepository store.TaskRepository

	// classifier may be nil; category inference then degrades to the
	// sentinel category without error.
	classifier classifier.Classifier

	validator validators.Validator
	logger    *logger.Logger
}

// NewTaskService constructs a TaskService. clf may be nil when no
// classification endpoint is configured.
func NewTaskService(taskRepository store.TaskRepository, clf classifier.Classifier, validator validators.Validator, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		classifier:     clf,
		validator:      validator,
		logger:         logger,
	}
}

// CreateTask validates the input, resolves the category and persists the new
// task.
func (s *taskService) CreateTask(ctx context.Context, input models.TaskInput) (models.TaskResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		log.Error().Err(err).Msg("invalid task data provided")
		return models.TaskResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	category, inferred, failed := s.resolveCategory(ctx, input)

	created, err := s.taskRepository.CreateTask(ctx, models.Task{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Category:    category,
		FilePath:    input.FileName,
	})
	if err != nil {
		log.Err(err).Int64("user_id", input.UserID).Msg("task creation ended with error")
		return models.TaskResult{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return models.TaskResult{
		Task:                 created,
		CategoryInferred:     inferred,
		ClassificationFailed: failed,
	}, nil
}

// GetTask returns the task after verifying ownership. A task owned by a
// different user yields ErrForbidden, not ErrTaskNotFound, so the handler
// can answer 403 instead of 404.
func (s *taskService) GetTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	task, err := s.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		return models.Task{}, fmt.Errorf("task lookup ended with error: %w", err)
	}

	if task.UserID != userID {
		return models.Task{}, ErrForbidden
	}

	return task, nil
}

// ListTasks returns the user's tasks narrowed by the filter.
func (s *taskService) ListTasks(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("task listing ended with error: %w", err)
	}

	return tasks, nil
}

// UpdateTask validates the input, verifies ownership and overwrites the
// task. An empty input.Category triggers re-classification against the
// updated text; an empty input.FileName keeps the current attachment.
func (s *taskService) UpdateTask(ctx context.Context, taskID int64, input models.TaskInput) (models.TaskResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		log.Error().Err(err).Msg("invalid task data provided")
		return models.TaskResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	existing, err := s.GetTask(ctx, input.UserID, taskID)
	if err != nil {
		return models.TaskResult{}, err
	}

	category, inferred, failed := s.resolveCategory(ctx, input)

	filePath := existing.FilePath
	if input.FileName != "" {
		filePath = input.FileName
	}

	updated, err := s.taskRepository.UpdateTask(ctx, models.Task{
		TaskID:      taskID,
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Category:    category,
		FilePath:    filePath,
	})
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task update ended with error")
		return models.TaskResult{}, fmt.Errorf("task update ended with error: %w", err)
	}

	return models.TaskResult{
		Task:                 updated,
		CategoryInferred:     inferred,
		ClassificationFailed: failed,
	}, nil
}

// DeleteTask verifies ownership and removes the task row. The attachment
// referenced by the row stays on disk.
func (s *taskService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	if _, err := s.GetTask(ctx, userID, taskID); err != nil {
		return err
	}

	if err := s.taskRepository.DeleteTask(ctx, userID, taskID); err != nil {
		return fmt.Errorf("task deletion ended with error: %w", err)
	}

	return nil
}

// resolveCategory returns the category to persist for the given input.
//
// An explicit category is taken as-is. Otherwise the task text is sent to
// the classifier and the top label wins, except that a "Household" verdict
// below householdConfidenceThreshold falls through to the second-ranked
// label. When no classifier is configured, or the call fails, the sentinel
// CategoryUndetermined is assigned and failed is reported true; the caller
// surfaces a warning but the save still succeeds.
func (s *taskService) resolveCategory(ctx context.Context, input models.TaskInput) (category string, inferred, failed bool) {
	if input.Category != "" {
		return input.Category, false, false
	}

	log := logger.FromContext(ctx)

	if s.classifier == nil {
		return models.CategoryUndetermined, true, true
	}

	text := input.Title
	if input.Description != "" {
		text = input.Title + ". " + input.Description
	}

	scores, err := s.classifier.Classify(ctx, text)
	if err != nil {
		log.Warn().Err(err).Msg("classification failed, falling back to sentinel category")
		return models.CategoryUndetermined, true, true
	}

	top := scores[0]
	if top.Label == models.CategoryHousehold && top.Score < householdConfidenceThreshold && len(scores) > 1 {
		log.Debug().
			Float64("household_score", top.Score).
			Str("runner_up", scores[1].Label).
			Msg("low-confidence Household verdict, using runner-up label")
		return scores[1].Label, true, false
	}

	return top.Label, true, false
}
