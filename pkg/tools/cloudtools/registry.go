package cloudtools

import "github.com/entrhq/browsercloud/pkg/cloud"

// BillingTools returns the billing tool group.
func BillingTools(client cloud.Doer) []Tool {
	return []Tool{NewBillingAccountGetTool(client)}
}

// TaskTools returns the task tool group.
func TaskTools(client cloud.Doer) []Tool {
	return []Tool{
		NewTaskCreateTool(client),
		NewTaskGetTool(client),
		NewTaskListTool(client),
		NewTaskGetStatusTool(client),
		NewTaskUpdateTool(client),
		NewTaskWaitTool(client),
		NewTaskRunTool(client),
		NewTaskGetLogsURLTool(client),
		NewTaskGetOutputFileURLTool(client),
	}
}

// SessionTools returns the agent session tool group.
func SessionTools(client cloud.Doer) []Tool {
	return []Tool{
		NewSessionCreateTool(client),
		NewSessionListTool(client),
		NewSessionGetTool(client),
		NewSessionUpdateTool(client),
		NewSessionDeleteTool(client),
		NewSessionShareCreateTool(client),
		NewSessionShareGetTool(client),
		NewSessionShareDeleteTool(client),
	}
}

// BrowserSessionTools returns the remote browser session tool group.
func BrowserSessionTools(client cloud.Doer) []Tool {
	return []Tool{
		NewBrowserSessionCreateTool(client),
		NewBrowserSessionListTool(client),
		NewBrowserSessionGetTool(client),
		NewBrowserSessionUpdateTool(client),
	}
}

// FileTools returns the file tool group.
func FileTools(client cloud.Doer) []Tool {
	return []Tool{
		NewSessionFileUploadURLTool(client),
		NewBrowserFileUploadURLTool(client),
	}
}

// ProfileTools returns the profile tool group.
func ProfileTools(client cloud.Doer) []Tool {
	return []Tool{
		NewProfileCreateTool(client),
		NewProfileListTool(client),
		NewProfileGetTool(client),
		NewProfileUpdateTool(client),
		NewProfileDeleteTool(client),
	}
}

// All returns every cloud tool in registration order, plus the smoke ping.
func All(client cloud.Doer) []Tool {
	tools := []Tool{NewSmokePingTool()}
	tools = append(tools, BillingTools(client)...)
	tools = append(tools, TaskTools(client)...)
	tools = append(tools, SessionTools(client)...)
	tools = append(tools, BrowserSessionTools(client)...)
	tools = append(tools, FileTools(client)...)
	tools = append(tools, ProfileTools(client)...)
	return tools
}
