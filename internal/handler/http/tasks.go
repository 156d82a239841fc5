package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/internal/utils"
	"github.com/rkhalikov/go-task-keeper/models"
)

// classificationFailedFlash is queued alongside the success flash when a
// task was saved but the category could not be determined automatically.
const classificationFailedFlash = "Could not determine a category automatically, the task was saved as Undetermined"

// listTasks answers the task listing for the logged-in user as JSON,
// narrowed by the optional "search" and "category" query parameters.
// Pending flash messages are consumed and included in the response.
func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	filter := models.TaskFilter{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}

	tasks, err := h.services.TaskService.ListTasks(ctx, userID, filter)
	if err != nil {
		log.Err(err).Msg("error listing tasks")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.TaskListResponse{
		Tasks:    tasks,
		Search:   filter.Search,
		Category: filter.Category,
		Flashes:  h.sessions.Flashes(w, r),
	}, http.StatusOK)
}

// newTaskForm answers the data needed to render the create form: the
// selectable category labels.
func (h *Handler) newTaskForm(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.TaskFormResponse{
		Categories: models.CandidateLabels(),
	}, http.StatusOK)
}

// createTask creates a task from the submitted multipart form and redirects
// to the listing. An attachment is optional; a rejected attachment aborts
// the whole creation so a task never references a file that was not stored.
func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	input, ok := h.taskInputFromForm(w, r, userID, "/task/new")
	if !ok {
		return
	}

	result, err := h.services.TaskService.CreateTask(ctx, input)
	if err != nil {
		h.failRequest(w, r, err, "/task/new")
		return
	}

	log.Debug().Int64("task_id", result.Task.TaskID).Msg("task created")

	if result.ClassificationFailed {
		if err := h.sessions.Flash(w, r, classificationFailedFlash); err != nil {
			log.Err(err).Msg("error saving flash message")
		}
	}

	h.redirectWithFlash(w, r, "/", "Task created")
}

// editTaskForm answers the data needed to render the edit form for one task.
func (h *Handler) editTaskForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	taskID, err := strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.GetTask(ctx, userID, taskID)
	if err != nil {
		// A missing or foreign task sends the user back to the listing
		// with a warning instead of a hard error page.
		log.Debug().Err(err).Int64("task_id", taskID).Msg("error getting task")
		h.failRequest(w, r, err, "/")
		return
	}

	utils.WriteJSON(w, models.TaskFormResponse{
		Task:       &task,
		Categories: models.CandidateLabels(),
	}, http.StatusOK)
}

// updateTask overwrites a task from the submitted multipart form and
// redirects to the listing. Uploading no file keeps the current attachment.
func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	taskID, err := strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	editPage := "/task/" + strconv.FormatInt(taskID, 10) + "/edit"

	input, ok := h.taskInputFromForm(w, r, userID, editPage)
	if !ok {
		return
	}

	result, err := h.services.TaskService.UpdateTask(ctx, taskID, input)
	if err != nil {
		h.failRequest(w, r, err, editPage)
		return
	}

	log.Debug().Int64("task_id", taskID).Msg("task updated")

	if result.ClassificationFailed {
		if err := h.sessions.Flash(w, r, classificationFailedFlash); err != nil {
			log.Err(err).Msg("error saving flash message")
		}
	}

	h.redirectWithFlash(w, r, "/", "Task updated")
}

// deleteTask removes a task and redirects to the listing. The attachment,
// if any, stays on disk.
func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	taskID, err := strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	if err := h.services.TaskService.DeleteTask(ctx, userID, taskID); err != nil {
		h.failRequest(w, r, err, "/")
		return
	}

	log.Debug().Int64("task_id", taskID).Msg("task deleted")

	h.redirectWithFlash(w, r, "/", "Task deleted")
}

// taskInputFromForm parses the multipart task form, storing the optional
// attachment along the way. The request body is capped at the configured
// upload limit; an oversized body, a rejected file type or an unreadable
// form all finish the response (flash plus redirect to fallback) and report
// ok false.
func (h *Handler) taskInputFromForm(w http.ResponseWriter, r *http.Request, userID int64, fallback string) (input models.TaskInput, ok bool) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Debug().Int64("limit", h.maxUploadSize).Msg("upload exceeds size limit")
			h.redirectWithFlash(w, r, fallback, "The uploaded file is too large")
			return models.TaskInput{}, false
		}

		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return models.TaskInput{}, false
	}

	input = models.TaskInput{
		UserID:      userID,
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Status:      parseCheckbox(r.PostFormValue("status")),
		Category:    r.PostFormValue("category"),
	}

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return input, true
	}
	if err != nil {
		log.Err(err).Msg("error reading uploaded file")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return models.TaskInput{}, false
	}
	defer file.Close()

	stored, err := h.files.SaveUpload(r.Context(), header.Filename, file)
	if err != nil {
		h.failRequest(w, r, err, fallback)
		return models.TaskInput{}, false
	}

	input.FileName = stored

	return input, true
}

// parseCheckbox interprets the value of an HTML checkbox form field.
func parseCheckbox(value string) bool {
	switch value {
	case "on", "true", "1":
		return true
	}
	return false
}
