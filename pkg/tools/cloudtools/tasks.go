package cloudtools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/entrhq/browsercloud/pkg/cloud"
)

// Defaults and bounds for task tools.
const (
	defaultMaxSteps     = 100
	defaultTaskTimeout  = 900
	defaultPollInterval = 2
	maxTaskTimeout      = 86_400
	maxPollInterval     = 60
	maxPageSize         = 100
	maxPageNumber       = 10_000
)

// correlationContract is appended to the descriptions of tools that mint
// upstream IDs. The server is stateless, so the calling agent has to carry
// the IDs itself.
const correlationContract = " This server is stateless: persist the returned IDs and pass them explicitly in follow-up calls; do not rely on server-side memory between requests."

// taskCreateInput mirrors the bu_task_create argument object.
type taskCreateInput struct {
	Task                  string            `json:"task"`
	LLM                   string            `json:"llm"`
	StartURL              string            `json:"start_url"`
	MaxSteps              int               `json:"max_steps"`
	StructuredOutput      string            `json:"structured_output"`
	SessionID             string            `json:"session_id"`
	SessionSettings       map[string]any    `json:"session_settings"`
	Metadata              map[string]string `json:"metadata"`
	Secrets               map[string]string `json:"secrets"`
	AllowedDomains        []string          `json:"allowed_domains"`
	OpVaultID             string            `json:"op_vault_id"`
	HighlightElements     bool              `json:"highlight_elements"`
	FlashMode             bool              `json:"flash_mode"`
	Thinking              bool              `json:"thinking"`
	Vision                any               `json:"vision"`
	SystemPromptExtension string            `json:"system_prompt_extension"`
	Judge                 bool              `json:"judge"`
	JudgeGroundTruth      string            `json:"judge_ground_truth"`
	JudgeLLM              string            `json:"judge_llm"`
	SkillIDs              []string          `json:"skill_ids"`
}

func defaultTaskCreateInput() taskCreateInput {
	return taskCreateInput{MaxSteps: defaultMaxSteps}
}

// normalizeVision accepts a boolean or the string "auto"; anything else is
// rejected before dispatch.
func normalizeVision(vision any) (any, error) {
	switch v := vision.(type) {
	case nil:
		return nil, nil
	case bool:
		return v, nil
	case string:
		if v == cloud.VisionModeAuto {
			return v, nil
		}
		return nil, fmt.Errorf("vision must be a boolean or %q", cloud.VisionModeAuto)
	default:
		return nil, fmt.Errorf("vision must be a boolean or %q", cloud.VisionModeAuto)
	}
}

// sessionSettingsKeyMap translates snake_case argument keys into the
// camelCase keys the API expects. Unknown keys pass through unchanged.
var sessionSettingsKeyMap = map[string]string{
	"profile_id":            "profileId",
	"proxy_country_code":    "proxyCountryCode",
	"browser_screen_width":  "browserScreenWidth",
	"browser_screen_height": "browserScreenHeight",
}

func normalizeSessionSettings(settings map[string]any) (map[string]any, error) {
	if len(settings) == 0 {
		return nil, nil
	}

	normalized := make(map[string]any, len(settings))
	for key, value := range settings {
		if value == nil {
			continue
		}
		if mapped, ok := sessionSettingsKeyMap[key]; ok {
			key = mapped
		}
		normalized[key] = value
	}

	if raw, ok := normalized["browserScreenWidth"]; ok {
		width, ok := toInt(raw)
		if !ok {
			return nil, fmt.Errorf("session_settings.browserScreenWidth must be an integer")
		}
		if _, err := cloud.IntInRange("session_settings.browserScreenWidth", width, 320, 6144); err != nil {
			return nil, err
		}
		normalized["browserScreenWidth"] = width
	}
	if raw, ok := normalized["browserScreenHeight"]; ok {
		height, ok := toInt(raw)
		if !ok {
			return nil, fmt.Errorf("session_settings.browserScreenHeight must be an integer")
		}
		if _, err := cloud.IntInRange("session_settings.browserScreenHeight", height, 320, 3456); err != nil {
			return nil, err
		}
		normalized["browserScreenHeight"] = height
	}

	if len(normalized) == 0 {
		return nil, nil
	}
	return normalized, nil
}

// buildTaskPayload validates a create request and shapes the camelCase
// body, leaving out optional fields the caller did not set.
func buildTaskPayload(input taskCreateInput) (map[string]any, error) {
	task, err := cloud.NonEmpty("task", input.Task)
	if err != nil {
		return nil, err
	}
	maxSteps, err := cloud.IntInRange("max_steps", input.MaxSteps, 1, 10_000)
	if err != nil {
		return nil, err
	}
	startURL, err := cloud.MaybeURL(input.StartURL)
	if err != nil {
		return nil, err
	}
	vision, err := normalizeVision(input.Vision)
	if err != nil {
		return nil, err
	}
	sessionSettings, err := normalizeSessionSettings(input.SessionSettings)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"task":              task,
		"maxSteps":          maxSteps,
		"highlightElements": input.HighlightElements,
		"flashMode":         input.FlashMode,
		"thinking":          input.Thinking,
		"judge":             input.Judge,
	}
	setIfPresent := func(key, value string) {
		if value != "" {
			payload[key] = value
		}
	}
	setIfPresent("llm", input.LLM)
	setIfPresent("startUrl", startURL)
	setIfPresent("structuredOutput", input.StructuredOutput)
	setIfPresent("sessionId", input.SessionID)
	setIfPresent("opVaultId", input.OpVaultID)
	setIfPresent("systemPromptExtension", input.SystemPromptExtension)
	setIfPresent("judgeGroundTruth", input.JudgeGroundTruth)
	setIfPresent("judgeLlm", input.JudgeLLM)
	if sessionSettings != nil {
		payload["sessionSettings"] = sessionSettings
	}
	if len(input.Metadata) > 0 {
		payload["metadata"] = input.Metadata
	}
	if len(input.Secrets) > 0 {
		payload["secrets"] = input.Secrets
	}
	if len(input.AllowedDomains) > 0 {
		payload["allowedDomains"] = input.AllowedDomains
	}
	if len(input.SkillIDs) > 0 {
		payload["skillIds"] = input.SkillIDs
	}
	if vision != nil {
		payload["vision"] = vision
	}

	return payload, nil
}

// taskCreateProperties is shared between bu_task_create and bu_task_run.
func taskCreateProperties() map[string]interface{} {
	return map[string]interface{}{
		"task":                    stringProp("Natural-language instruction for the browser agent"),
		"llm":                     stringProp("Model to drive the task (upstream default when omitted)"),
		"start_url":               stringProp("URL the agent opens before starting (http or https)"),
		"max_steps":               intProp("Maximum agent steps, 1-10000 (default 100)"),
		"structured_output":       stringProp("JSON schema the task result must conform to"),
		"session_id":              stringProp("Existing session to run the task in; omit to let the API create one"),
		"session_settings":        stringMapSettingsProp(),
		"metadata":                stringMapProp("Free-form metadata stored with the task"),
		"secrets":                 stringMapProp("Secrets exposed to the agent during the task"),
		"allowed_domains":         stringListProp("Domains the agent may visit"),
		"op_vault_id":             stringProp("1Password vault ID for credential lookups"),
		"highlight_elements":      boolProp("Highlight interactive elements in recordings (default false)"),
		"flash_mode":              boolProp("Trade accuracy for speed (default false)"),
		"thinking":                boolProp("Enable extended model thinking (default false)"),
		"vision":                  map[string]interface{}{"description": "Boolean or \"auto\"", "anyOf": []interface{}{map[string]interface{}{"type": "boolean"}, map[string]interface{}{"type": "string", "enum": []string{cloud.VisionModeAuto}}}},
		"system_prompt_extension": stringProp("Extra system prompt text appended for this task"),
		"judge":                   boolProp("Have an LLM judge grade the result (default false)"),
		"judge_ground_truth":      stringProp("Reference answer for the judge"),
		"judge_llm":               stringProp("Model used for judging"),
		"skill_ids":               stringListProp("Skill IDs the agent may use"),
	}
}

func stringMapSettingsProp() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Settings for the implicitly created session: profile_id, proxy_country_code, browser_screen_width (320-6144), browser_screen_height (320-3456)",
	}
}

// TaskCreateTool creates a cloud task and returns its correlation IDs.
type TaskCreateTool struct {
	client cloud.Doer
}

// NewTaskCreateTool creates a new task creation tool.
func NewTaskCreateTool(client cloud.Doer) *TaskCreateTool {
	return &TaskCreateTool{client: client}
}

func (t *TaskCreateTool) Name() string {
	return "bu_task_create"
}

func (t *TaskCreateTool) Description() string {
	return "Create a Browser Use Cloud task in a new or existing session and return task_id plus the resolved session_id." + correlationContract
}

func (t *TaskCreateTool) Schema() map[string]interface{} {
	return BaseToolSchema(taskCreateProperties(), []string{"task"})
}

func (t *TaskCreateTool) Hints() Hints {
	return Hints{}
}

func (t *TaskCreateTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	input := defaultTaskCreateInput()
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}
	return t.create(ctx, input), nil
}

// create runs the validated request and extracts correlation IDs. Shared
// with bu_task_run.
func (t *TaskCreateTool) create(ctx context.Context, input taskCreateInput) cloud.TaskRef {
	payload, err := buildTaskPayload(input)
	if err != nil {
		return cloud.TaskRef{Success: false, Error: err.Error()}
	}

	resp := t.client.Do(ctx, http.MethodPost, "/api/v2/tasks", payload, nil)
	if !resp.Success {
		return cloud.TaskRef{Success: false, StatusCode: resp.StatusCode, Error: resp.Error}
	}

	taskID, sessionID := extractTaskRef(resp.Data)
	return cloud.TaskRef{
		Success:    true,
		TaskID:     taskID,
		SessionID:  sessionID,
		StatusCode: resp.StatusCode,
	}
}

// TaskGetTool fetches a task by ID.
type TaskGetTool struct {
	client cloud.Doer
}

// NewTaskGetTool creates a new task fetch tool.
func NewTaskGetTool(client cloud.Doer) *TaskGetTool {
	return &TaskGetTool{client: client}
}

func (t *TaskGetTool) Name() string {
	return "bu_task_get"
}

func (t *TaskGetTool) Description() string {
	return "Get full Browser Use Cloud task details by task ID, including output when finished."
}

func (t *TaskGetTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"task_id": stringProp("Task ID returned by bu_task_create"),
	}, []string{"task_id"})
}

func (t *TaskGetTool) Hints() Hints {
	return Hints{ReadOnly: true}
}

func (t *TaskGetTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	var input struct {
		TaskID string `json:"task_id"`
	}
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}
	taskID, err := cloud.NonEmpty("task_id", input.TaskID)
	if err != nil {
		return nil, err
	}
	return t.client.Do(ctx, http.MethodGet, "/api/v2/tasks/"+taskID, nil, nil), nil
}

// TaskListTool lists tasks with pagination and optional filters.
type TaskListTool struct {
	client cloud.Doer
}

// NewTaskListTool creates a new task list tool.
func NewTaskListTool(client cloud.Doer) *TaskListTool {
	return &TaskListTool{client: client}
}

func (t *TaskListTool) Name() string {
	return "bu_task_list"
}

func (t *TaskListTool) Description() string {
	return "List Browser Use Cloud tasks with pagination and optional session/status filters."
}

func (t *TaskListTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"page_size":   intProp("Results per page, 1-100 (default 10)"),
		"page_number": intProp("Page number starting at 1 (default 1)"),
		"session_id":  stringProp("Only list tasks in this session"),
		"filter_by":   enumProp("Only list tasks with this status", cloud.TaskStatuses),
		"after":       stringProp("Only list tasks created after this RFC 3339 timestamp"),
		"before":      stringProp("Only list tasks created before this RFC 3339 timestamp"),
	}, nil)
}

func (t *TaskListTool) Hints() Hints {
	return Hints{ReadOnly: true}
}

func (t *TaskListTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	input := struct {
		PageSize   int    `json:"page_size"`
		PageNumber int    `json:"page_number"`
		SessionID  string `json:"session_id"`
		FilterBy   string `json:"filter_by"`
		After      string `json:"after"`
		Before     string `json:"before"`
	}{PageSize: 10, PageNumber: 1}
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}

	query, err := paginationQuery(input.PageSize, input.PageNumber)
	if err != nil {
		return nil, err
	}
	if input.FilterBy != "" {
		status, err := cloud.OneOf("filter_by", input.FilterBy, cloud.TaskStatuses)
		if err != nil {
			return nil, err
		}
		query.Set("filterBy", status)
	}
	query.Set("sessionId", input.SessionID)
	query.Set("after", input.After)
	query.Set("before", input.Before)

	return t.client.Do(ctx, http.MethodGet, "/api/v2/tasks", nil, query), nil
}

// paginationQuery validates the shared page_size/page_number arguments.
func paginationQuery(pageSize, pageNumber int) (url.Values, error) {
	size, err := cloud.IntInRange("page_size", pageSize, 1, maxPageSize)
	if err != nil {
		return nil, err
	}
	number, err := cloud.IntInRange("page_number", pageNumber, 1, maxPageNumber)
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("pageSize", strconv.Itoa(size))
	query.Set("pageNumber", strconv.Itoa(number))
	return query, nil
}

// TaskGetStatusTool fetches the lightweight status of a task.
type TaskGetStatusTool struct {
	client cloud.Doer
}

// NewTaskGetStatusTool creates a new task status tool.
func NewTaskGetStatusTool(client cloud.Doer) *TaskGetStatusTool {
	return &TaskGetStatusTool{client: client}
}

func (t *TaskGetStatusTool) Name() string {
	return "bu_task_get_status"
}

func (t *TaskGetStatusTool) Description() string {
	return "Get lightweight Browser Use Cloud task status. Preferred over bu_task_get for polling."
}

func (t *TaskGetStatusTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"task_id": stringProp("Task ID returned by bu_task_create"),
	}, []string{"task_id"})
}

func (t *TaskGetStatusTool) Hints() Hints {
	return Hints{ReadOnly: true}
}

func (t *TaskGetStatusTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	var input struct {
		TaskID string `json:"task_id"`
	}
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}
	taskID, err := cloud.NonEmpty("task_id", input.TaskID)
	if err != nil {
		return nil, err
	}
	return t.client.Do(ctx, http.MethodGet, "/api/v2/tasks/"+taskID+"/status", nil, nil), nil
}

// TaskUpdateTool applies a state transition to a task.
type TaskUpdateTool struct {
	client cloud.Doer
}

// NewTaskUpdateTool creates a new task update tool.
func NewTaskUpdateTool(client cloud.Doer) *TaskUpdateTool {
	return &TaskUpdateTool{client: client}
}

func (t *TaskUpdateTool) Name() string {
	return "bu_task_update"
}

func (t *TaskUpdateTool) Description() string {
	return "Update a Browser Use Cloud task: stop, pause, resume, or stop both task and session."
}

func (t *TaskUpdateTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"task_id": stringProp("Task ID returned by bu_task_create"),
		"action":  enumProp("State transition to apply (default stop)", cloud.TaskActions),
	}, []string{"task_id"})
}

func (t *TaskUpdateTool) Hints() Hints {
	return Hints{}
}

func (t *TaskUpdateTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	input := struct {
		TaskID string `json:"task_id"`
		Action string `json:"action"`
	}{Action: string(cloud.TaskActionStop)}
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}
	taskID, err := cloud.NonEmpty("task_id", input.TaskID)
	if err != nil {
		return nil, err
	}
	action, err := cloud.OneOf("action", input.Action, cloud.TaskActions)
	if err != nil {
		return nil, err
	}
	body := map[string]any{"action": action}
	return t.client.Do(ctx, http.MethodPatch, "/api/v2/tasks/"+taskID, body, nil), nil
}

// taskWaitInput mirrors the bu_task_wait argument object.
type taskWaitInput struct {
	TaskID              string   `json:"task_id"`
	TimeoutSeconds      int      `json:"timeout_seconds"`
	PollIntervalSeconds int      `json:"poll_interval_seconds"`
	TerminalStatuses    []string `json:"terminal_statuses"`
}

func defaultTaskWaitInput() taskWaitInput {
	return taskWaitInput{
		TimeoutSeconds:      defaultTaskTimeout,
		PollIntervalSeconds: defaultPollInterval,
	}
}

// TaskWaitTool polls a task until it reaches a terminal status or the
// timeout elapses.
type TaskWaitTool struct {
	client cloud.Doer

	// sleep is replaced in tests to avoid real delays
	sleep func(ctx context.Context, d time.Duration) error
}

// NewTaskWaitTool creates a new task polling tool.
func NewTaskWaitTool(client cloud.Doer) *TaskWaitTool {
	return &TaskWaitTool{client: client, sleep: sleepContext}
}

func (t *TaskWaitTool) Name() string {
	return "bu_task_wait"
}

func (t *TaskWaitTool) Description() string {
	return "Poll a Browser Use Cloud task until it reaches a terminal status (finished or stopped by default) or the timeout elapses, then return the full task."
}

func (t *TaskWaitTool) Schema() map[string]interface{} {
	return BaseToolSchema(taskWaitProperties(), []string{"task_id"})
}

func taskWaitProperties() map[string]interface{} {
	return map[string]interface{}{
		"task_id":               stringProp("Task ID returned by bu_task_create"),
		"timeout_seconds":       intProp("Give up after this many seconds, 1-86400 (default 900)"),
		"poll_interval_seconds": intProp("Seconds between status checks, 1-60 (default 2)"),
		"terminal_statuses":     stringListProp("Statuses that end the wait (default finished, stopped)"),
	}
}

func (t *TaskWaitTool) Hints() Hints {
	return Hints{ReadOnly: true}
}

func (t *TaskWaitTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	input := defaultTaskWaitInput()
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}
	return t.wait(ctx, input), nil
}

// wait runs the polling loop. Shared with bu_task_run.
func (t *TaskWaitTool) wait(ctx context.Context, input taskWaitInput) cloud.TaskWait {
	taskID, err := cloud.NonEmpty("task_id", input.TaskID)
	if err != nil {
		return cloud.TaskWait{Success: false, TaskID: input.TaskID, Error: err.Error()}
	}
	timeout, err := cloud.IntInRange("timeout_seconds", input.TimeoutSeconds, 1, maxTaskTimeout)
	if err != nil {
		return cloud.TaskWait{Success: false, TaskID: taskID, Error: err.Error()}
	}
	interval, err := cloud.IntInRange("poll_interval_seconds", input.PollIntervalSeconds, 1, maxPollInterval)
	if err != nil {
		return cloud.TaskWait{Success: false, TaskID: taskID, Error: err.Error()}
	}
	terminals, err := terminalStatusSet(input.TerminalStatuses)
	if err != nil {
		return cloud.TaskWait{Success: false, TaskID: taskID, Error: err.Error()}
	}

	attempts := 0
	for elapsed := 0; elapsed <= timeout; elapsed += interval {
		attempts++
		resp := t.client.Do(ctx, http.MethodGet, "/api/v2/tasks/"+taskID+"/status", nil, nil)
		if !resp.Success {
			return cloud.TaskWait{Success: false, TaskID: taskID, Attempts: attempts, Error: resp.Error}
		}

		status := taskStatus(resp.Data)
		if _, terminal := terminals[strings.ToLower(status)]; terminal && status != "" {
			payload := resp.Data
			refTask, refSession := extractTaskRef(payload)

			// The status endpoint is lightweight; fetch the full task once
			// so the caller gets output and metadata in the same response.
			final := t.client.Do(ctx, http.MethodGet, "/api/v2/tasks/"+taskID, nil, nil)
			if final.Success {
				if _, ok := final.Data.(map[string]any); ok {
					payload = final.Data
					refTask, refSession = extractTaskRef(payload)
				}
			}

			if refTask == "" {
				refTask = taskID
			}
			return cloud.TaskWait{
				Success:   true,
				TaskID:    refTask,
				SessionID: refSession,
				Status:    status,
				Attempts:  attempts,
				Task:      payload,
			}
		}

		if err := t.sleep(ctx, time.Duration(interval)*time.Second); err != nil {
			return cloud.TaskWait{Success: false, TaskID: taskID, Attempts: attempts, Error: err.Error()}
		}
	}

	return cloud.TaskWait{
		Success:  false,
		TaskID:   taskID,
		TimedOut: true,
		Attempts: attempts,
		Error:    fmt.Sprintf("timed out after %d seconds", timeout),
	}
}

// terminalStatusSet validates a caller-provided status list, defaulting to
// the statuses at which the API stops making progress.
func terminalStatusSet(statuses []string) (map[string]struct{}, error) {
	if len(statuses) == 0 {
		statuses = cloud.TaskTerminalStatuses
	}
	set := make(map[string]struct{}, len(statuses))
	for _, status := range statuses {
		valid, err := cloud.OneOf("terminal_statuses", status, cloud.TaskStatuses)
		if err != nil {
			return nil, err
		}
		set[valid] = struct{}{}
	}
	return set, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// taskRunInput combines create and wait arguments.
type taskRunInput struct {
	taskCreateInput
	TimeoutSeconds      int      `json:"timeout_seconds"`
	PollIntervalSeconds int      `json:"poll_interval_seconds"`
	TerminalStatuses    []string `json:"terminal_statuses"`
}

// TaskRunTool creates a task, waits for a terminal status, and returns the
// combined outcome in one response.
type TaskRunTool struct {
	create *TaskCreateTool
	wait   *TaskWaitTool
}

// NewTaskRunTool creates a new one-shot task runner tool.
func NewTaskRunTool(client cloud.Doer) *TaskRunTool {
	return &TaskRunTool{
		create: NewTaskCreateTool(client),
		wait:   NewTaskWaitTool(client),
	}
}

func (t *TaskRunTool) Name() string {
	return "bu_task_run"
}

func (t *TaskRunTool) Description() string {
	return "Create a Browser Use Cloud task, wait for it to finish, and return the final task with task_id and session_id. Preferred for one-shot execution because a single response carries every correlation ID." + correlationContract
}

func (t *TaskRunTool) Schema() map[string]interface{} {
	properties := taskCreateProperties()
	for key, value := range taskWaitProperties() {
		if key == "task_id" {
			continue
		}
		properties[key] = value
	}
	return BaseToolSchema(properties, []string{"task"})
}

func (t *TaskRunTool) Hints() Hints {
	return Hints{}
}

func (t *TaskRunTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	input := taskRunInput{
		taskCreateInput:     defaultTaskCreateInput(),
		TimeoutSeconds:      defaultTaskTimeout,
		PollIntervalSeconds: defaultPollInterval,
	}
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}

	created := t.create.create(ctx, input.taskCreateInput)
	if !created.Success || created.TaskID == "" {
		message := created.Error
		if message == "" {
			message = "task creation failed"
		}
		return cloud.TaskRun{
			Success:   false,
			TaskID:    created.TaskID,
			SessionID: created.SessionID,
			Error:     message,
		}, nil
	}

	waited := t.wait.wait(ctx, taskWaitInput{
		TaskID:              created.TaskID,
		TimeoutSeconds:      input.TimeoutSeconds,
		PollIntervalSeconds: input.PollIntervalSeconds,
		TerminalStatuses:    input.TerminalStatuses,
	})

	sessionID := waited.SessionID
	if sessionID == "" {
		sessionID = created.SessionID
	}
	return cloud.TaskRun{
		Success:   waited.Success,
		TaskID:    waited.TaskID,
		SessionID: sessionID,
		Status:    waited.Status,
		TimedOut:  waited.TimedOut,
		Attempts:  waited.Attempts,
		Task:      waited.Task,
		Error:     waited.Error,
	}, nil
}

// TaskGetLogsURLTool fetches a secure download URL for task logs.
type TaskGetLogsURLTool struct {
	client cloud.Doer
}

// NewTaskGetLogsURLTool creates a new task logs URL tool.
func NewTaskGetLogsURLTool(client cloud.Doer) *TaskGetLogsURLTool {
	return &TaskGetLogsURLTool{client: client}
}

func (t *TaskGetLogsURLTool) Name() string {
	return "bu_task_get_logs_url"
}

func (t *TaskGetLogsURLTool) Description() string {
	return "Get a secure, time-limited download URL for a Browser Use Cloud task's execution logs."
}

func (t *TaskGetLogsURLTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"task_id": stringProp("Task ID returned by bu_task_create"),
	}, []string{"task_id"})
}

func (t *TaskGetLogsURLTool) Hints() Hints {
	return Hints{ReadOnly: true}
}

func (t *TaskGetLogsURLTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	var input struct {
		TaskID string `json:"task_id"`
	}
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}
	taskID, err := cloud.NonEmpty("task_id", input.TaskID)
	if err != nil {
		return nil, err
	}
	return t.client.Do(ctx, http.MethodGet, "/api/v2/tasks/"+taskID+"/logs", nil, nil), nil
}

// TaskGetOutputFileURLTool fetches a download URL for a task output file.
type TaskGetOutputFileURLTool struct {
	client cloud.Doer
}

// NewTaskGetOutputFileURLTool creates a new output file URL tool.
func NewTaskGetOutputFileURLTool(client cloud.Doer) *TaskGetOutputFileURLTool {
	return &TaskGetOutputFileURLTool{client: client}
}

func (t *TaskGetOutputFileURLTool) Name() string {
	return "bu_task_get_output_file_url"
}

func (t *TaskGetOutputFileURLTool) Description() string {
	return "Get a download URL for a file produced by a Browser Use Cloud task."
}

func (t *TaskGetOutputFileURLTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"task_id": stringProp("Task ID returned by bu_task_create"),
		"file_id": stringProp("Output file ID from the task result"),
	}, []string{"task_id", "file_id"})
}

func (t *TaskGetOutputFileURLTool) Hints() Hints {
	return Hints{ReadOnly: true}
}

func (t *TaskGetOutputFileURLTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	var input struct {
		TaskID string `json:"task_id"`
		FileID string `json:"file_id"`
	}
	if err := decodeArgs(args, &input); err != nil {
		return nil, err
	}
	taskID, err := cloud.NonEmpty("task_id", input.TaskID)
	if err != nil {
		return nil, err
	}
	fileID, err := cloud.NonEmpty("file_id", input.FileID)
	if err != nil {
		return nil, err
	}
	path := "/api/v2/files/tasks/" + taskID + "/output-files/" + fileID
	return t.client.Do(ctx, http.MethodGet, path, nil, nil), nil
}
