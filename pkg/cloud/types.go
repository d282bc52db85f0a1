package cloud

// TaskStatus is the lifecycle status reported by the cloud API for a task.
type TaskStatus string

const (
	TaskStatusCreated  TaskStatus = "created"
	TaskStatusStarted  TaskStatus = "started"
	TaskStatusFinished TaskStatus = "finished"
	TaskStatusStopped  TaskStatus = "stopped"
)

// TaskAction is a state transition that can be applied to a running task.
type TaskAction string

const (
	TaskActionStop               TaskAction = "stop"
	TaskActionPause              TaskAction = "pause"
	TaskActionResume             TaskAction = "resume"
	TaskActionStopTaskAndSession TaskAction = "stop_task_and_session"
)

// SessionAction is a state transition for an agent session.
type SessionAction string

const (
	SessionActionStop SessionAction = "stop"
)

// SessionStatus is the lifecycle status of an agent session.
type SessionStatus string

const (
	SessionStatusActive  SessionStatus = "active"
	SessionStatusStopped SessionStatus = "stopped"
)

// VisionModeAuto is the only non-boolean vision setting the API accepts.
const VisionModeAuto = "auto"

// TaskStatuses lists every task status the API reports.
var TaskStatuses = []string{
	string(TaskStatusCreated),
	string(TaskStatusStarted),
	string(TaskStatusFinished),
	string(TaskStatusStopped),
}

// TaskTerminalStatuses are the statuses at which a task will not make
// further progress. Polling loops stop when one of these is observed.
var TaskTerminalStatuses = []string{
	string(TaskStatusFinished),
	string(TaskStatusStopped),
}

// TaskActions lists every accepted task update action.
var TaskActions = []string{
	string(TaskActionStop),
	string(TaskActionPause),
	string(TaskActionResume),
	string(TaskActionStopTaskAndSession),
}

// SessionActions lists every accepted session update action.
var SessionActions = []string{string(SessionActionStop)}

// SessionStatuses lists every session status the API reports.
var SessionStatuses = []string{
	string(SessionStatusActive),
	string(SessionStatusStopped),
}

// UploadContentTypes are the content types the presigned-upload endpoints
// accept. Anything else is rejected before a request is made.
var UploadContentTypes = []string{
	"image/jpg",
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/svg+xml",
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"text/plain",
	"text/csv",
	"text/markdown",
}

// MaxUploadSizeBytes caps declared upload sizes for presigned URLs (10 MiB).
const MaxUploadSizeBytes = 10 * 1024 * 1024

// Result is the normalized outcome of one upstream API round trip. Data is
// the decoded JSON body, passed through without interpretation.
type Result struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"status_code,omitempty"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
}

// TaskRef carries the correlation IDs returned by task creation. Callers
// are expected to persist both IDs; the server itself holds no state.
type TaskRef struct {
	Success    bool   `json:"success"`
	TaskID     string `json:"task_id,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// TaskWait is the outcome of polling a task to a terminal status.
type TaskWait struct {
	Success   bool   `json:"success"`
	TaskID    string `json:"task_id"`
	SessionID string `json:"session_id,omitempty"`
	Status    string `json:"status,omitempty"`
	TimedOut  bool   `json:"timed_out,omitempty"`
	Attempts  int    `json:"attempts"`
	Task      any    `json:"task,omitempty"`
	Error     string `json:"error,omitempty"`
}

// TaskRun is the combined outcome of creating a task and waiting for it.
type TaskRun struct {
	Success   bool   `json:"success"`
	TaskID    string `json:"task_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Status    string `json:"status,omitempty"`
	TimedOut  bool   `json:"timed_out,omitempty"`
	Attempts  int    `json:"attempts"`
	Task      any    `json:"task,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SessionRef carries the correlation ID returned by session creation.
type SessionRef struct {
	Success    bool   `json:"success"`
	SessionID  string `json:"session_id,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
}

// BrowserSessionRef carries the correlation identifiers returned when a
// remote browser session is created. CDPURL is present when the API
// exposes a DevTools endpoint for the session.
type BrowserSessionRef struct {
	Success    bool   `json:"success"`
	SessionID  string `json:"session_id,omitempty"`
	CDPURL     string `json:"cdp_url,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
}
