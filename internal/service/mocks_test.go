package service

import (
	"context"

	"github.com/rkhalikov/go-task-keeper/models"
)

// Function-field fakes for the dependencies of the services under test.
// Only the methods a test wires up are expected to be called.

type fakeUserRepository struct {
	createUserFunc         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFunc func(ctx context.Context, username string) (models.User, error)
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.createUserFunc(ctx, user)
}

func (f *fakeUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return f.findUserByUsernameFunc(ctx, username)
}

type fakeTaskRepository struct {
	createTaskFunc func(ctx context.Context, task models.Task) (models.Task, error)
	getTaskFunc    func(ctx context.Context, taskID int64) (models.Task, error)
	listTasksFunc  func(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error)
	updateTaskFunc func(ctx context.Context, task models.Task) (models.Task, error)
	deleteTaskFunc func(ctx context.Context, userID, taskID int64) error
}

func (f *fakeTaskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	return f.createTaskFunc(ctx, task)
}

func (f *fakeTaskRepository) GetTask(ctx context.Context, taskID int64) (models.Task, error) {
	return f.getTaskFunc(ctx, taskID)
}

func (f *fakeTaskRepository) ListTasks(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error) {
	return f.listTasksFunc(ctx, userID, filter)
}

func (f *fakeTaskRepository) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	return f.updateTaskFunc(ctx, task)
}

func (f *fakeTaskRepository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	return f.deleteTaskFunc(ctx, userID, taskID)
}

type fakeClassifier struct {
	classifyFunc func(ctx context.Context, text string) ([]models.LabelScore, error)
}

func (f *fakeClassifier) Classify(ctx context.Context, text string) ([]models.LabelScore, error) {
	return f.classifyFunc(ctx, text)
}

// echoCreate persists nothing and returns the task as-is with an ID set,
// which is enough for asserting what the service intended to store.
func echoCreate(id int64) func(ctx context.Context, task models.Task) (models.Task, error) {
	return func(_ context.Context, task models.Task) (models.Task, error) {
		task.TaskID = id
		return task, nil
	}
}
