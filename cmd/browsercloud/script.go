package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/browsercloud/pkg/cloud"
	"github.com/entrhq/browsercloud/pkg/config"
	"github.com/entrhq/browsercloud/pkg/tools/cloudtools"
)

// ScriptConfig describes a one-shot task run loaded from YAML. It covers
// the common bu_task_run arguments; anything more exotic should go
// through an MCP client instead.
type ScriptConfig struct {
	Task                string   `yaml:"task"`
	LLM                 string   `yaml:"llm"`
	StartURL            string   `yaml:"start_url"`
	MaxSteps            int      `yaml:"max_steps"`
	SessionID           string   `yaml:"session_id"`
	AllowedDomains      []string `yaml:"allowed_domains"`
	StructuredOutput    string   `yaml:"structured_output"`
	TimeoutSeconds      int      `yaml:"timeout_seconds"`
	PollIntervalSeconds int      `yaml:"poll_interval_seconds"`
}

// runScript executes one cloud task described by a YAML file and prints
// the combined result as JSON on stdout. A task that does not finish
// successfully yields a non-nil error so the exit code reflects it.
func runScript(ctx context.Context, appCfg *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read script file: %w", err)
	}

	var script ScriptConfig
	if err := yaml.Unmarshal(data, &script); err != nil {
		return fmt.Errorf("failed to parse script file: %w", err)
	}
	if script.Task == "" {
		return fmt.Errorf("script file must set a task")
	}

	client, err := cloud.NewClient(appCfg.APIKey,
		cloud.WithBaseURL(appCfg.BaseURL),
		cloud.WithTimeout(appCfg.RequestTimeout),
	)
	if err != nil {
		return err
	}

	args := map[string]any{"task": script.Task}
	setIfPresent := func(key string, value any) {
		switch v := value.(type) {
		case string:
			if v != "" {
				args[key] = v
			}
		case int:
			if v != 0 {
				args[key] = v
			}
		case []string:
			if len(v) > 0 {
				args[key] = v
			}
		}
	}
	setIfPresent("llm", script.LLM)
	setIfPresent("start_url", script.StartURL)
	setIfPresent("max_steps", script.MaxSteps)
	setIfPresent("session_id", script.SessionID)
	setIfPresent("allowed_domains", script.AllowedDomains)
	setIfPresent("structured_output", script.StructuredOutput)
	setIfPresent("timeout_seconds", script.TimeoutSeconds)
	setIfPresent("poll_interval_seconds", script.PollIntervalSeconds)

	result, err := cloudtools.NewTaskRunTool(client).Execute(ctx, args)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(encoded))

	if run, ok := result.(cloud.TaskRun); ok && !run.Success {
		return fmt.Errorf("task did not complete: %s", run.Error)
	}
	return nil
}
