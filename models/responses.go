package models

// TaskListResponse is the JSON body returned by the task listing endpoint.
// The filter fields are echoed back so clients can re-render the active
// search state.
type TaskListResponse struct {
	Tasks    []Task   `json:"tasks"`
	Search   string   `json:"search,omitempty"`
	Category string   `json:"category,omitempty"`
	Flashes  []string `json:"flashes,omitempty"`
}

// AuthFormResponse is the JSON body returned by the registration and login
// pages. It carries only the pending flash messages, e.g. the login prompt
// queued when an unauthenticated request was redirected.
type AuthFormResponse struct {
	Flashes []string `json:"flashes,omitempty"`
}

// TaskFormResponse is the JSON body returned by the task form endpoints
// (GET /task/new, GET /task/{id}/edit). Task is nil for the create form.
type TaskFormResponse struct {
	Task       *Task    `json:"task,omitempty"`
	Categories []string `json:"categories"`
}
