package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/rkhalikov/go-task-keeper/internal/config"
	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/internal/service"
	"github.com/rkhalikov/go-task-keeper/internal/session"
	"github.com/rkhalikov/go-task-keeper/models"
)

type fakeAuthService struct {
	registerFunc func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFunc    func(ctx context.Context, creds models.Credentials) (models.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	return f.registerFunc(ctx, creds)
}

func (f *fakeAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return f.loginFunc(ctx, creds)
}

type fakeTaskService struct {
	createTaskFunc func(ctx context.Context, input models.TaskInput) (models.TaskResult, error)
	getTaskFunc    func(ctx context.Context, userID, taskID int64) (models.Task, error)
	listTasksFunc  func(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error)
	updateTaskFunc func(ctx context.Context, taskID int64, input models.TaskInput) (models.TaskResult, error)
	deleteTaskFunc func(ctx context.Context, userID, taskID int64) error
}

func (f *fakeTaskService) CreateTask(ctx context.Context, input models.TaskInput) (models.TaskResult, error) {
	return f.createTaskFunc(ctx, input)
}

func (f *fakeTaskService) GetTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	return f.getTaskFunc(ctx, userID, taskID)
}

func (f *fakeTaskService) ListTasks(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error) {
	return f.listTasksFunc(ctx, userID, filter)
}

func (f *fakeTaskService) UpdateTask(ctx context.Context, taskID int64, input models.TaskInput) (models.TaskResult, error) {
	return f.updateTaskFunc(ctx, taskID, input)
}

func (f *fakeTaskService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	return f.deleteTaskFunc(ctx, userID, taskID)
}

type fakeFileStorage struct {
	saveUploadFunc func(ctx context.Context, name string, content io.Reader) (string, error)
	openFunc       func(name string) (io.ReadSeekCloser, error)
}

func (f *fakeFileStorage) SaveUpload(ctx context.Context, name string, content io.Reader) (string, error) {
	return f.saveUploadFunc(ctx, name, content)
}

func (f *fakeFileStorage) Open(name string) (io.ReadSeekCloser, error) {
	return f.openFunc(name)
}

// readSeekNopCloser turns a strings.Reader into the io.ReadSeekCloser the
// file storage contract expects.
type readSeekNopCloser struct {
	*strings.Reader
}

func (readSeekNopCloser) Close() error { return nil }

// testEnv bundles a fully wired handler with its fakes. Tests reassign the
// fake function fields they need before issuing requests.
type testEnv struct {
	router   *chi.Mux
	sessions *session.Manager
	auth     *fakeAuthService
	tasks    *fakeTaskService
	files    *fakeFileStorage
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithLimit(t, 1<<20)
}

func newTestEnvWithLimit(t *testing.T, maxUploadSize int64) *testEnv {
	t.Helper()

	sessions, err := session.NewManager(config.App{
		SessionSecret:   "test-secret",
		SessionLifetime: 30 * time.Minute,
		SessionsDir:     t.TempDir(),
	}, logger.Nop())
	require.NoError(t, err)

	auth := &fakeAuthService{}
	tasks := &fakeTaskService{}
	files := &fakeFileStorage{}

	h := NewHandler(
		&service.Services{AuthService: auth, TaskService: tasks},
		sessions,
		files,
		config.Files{MaxUploadSize: maxUploadSize},
		logger.Nop(),
	)

	return &testEnv{
		router:   h.Init(),
		sessions: sessions,
		auth:     auth,
		tasks:    tasks,
		files:    files,
	}
}

// loginAs produces the session cookies of a logged-in user without going
// through the login endpoint.
func (e *testEnv) loginAs(t *testing.T, userID int64) []*http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, e.sessions.Bind(w, r, userID))

	return w.Result().Cookies()
}

// do issues a request against the wired router, attaching the given session
// cookies.
func (e *testEnv) do(r *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		r.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, r)

	return w
}
