package cloudtools

import "fmt"

// asID renders an upstream identifier field as a string. IDs are opaque and
// always strings in practice, but the payload is decoded as any.
func asID(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// extractTaskRef pulls task and session IDs out of the known task payload
// shapes: either a flat task object or one nested under "task".
func extractTaskRef(payload any) (taskID, sessionID string) {
	object, ok := payload.(map[string]any)
	if !ok {
		return "", ""
	}
	if nested, ok := object["task"].(map[string]any); ok {
		return asID(nested["id"]), asID(nested["sessionId"])
	}
	return asID(object["id"]), asID(object["sessionId"])
}

// taskStatus pulls the status field out of a task payload, checking the
// flat shape first and then the nested "task" object.
func taskStatus(payload any) string {
	object, ok := payload.(map[string]any)
	if !ok {
		return ""
	}
	if status, ok := object["status"]; ok {
		return asID(status)
	}
	if nested, ok := object["task"].(map[string]any); ok {
		if status, ok := nested["status"]; ok {
			return asID(status)
		}
	}
	return ""
}

// extractSessionID pulls a session ID out of the known session payload
// shapes: nested under "session", or flat as "id"/"sessionId".
func extractSessionID(payload any) string {
	object, ok := payload.(map[string]any)
	if !ok {
		return ""
	}
	if nested, ok := object["session"].(map[string]any); ok {
		if id := firstID(nested, "id", "sessionId"); id != "" {
			return id
		}
	}
	return firstID(object, "id", "sessionId")
}

// extractBrowserSessionRefs pulls the session ID and CDP URL out of a
// remote browser session payload.
func extractBrowserSessionRefs(payload any) (sessionID, cdpURL string) {
	object, ok := payload.(map[string]any)
	if !ok {
		return "", ""
	}
	if nested, ok := object["session"].(map[string]any); ok {
		return firstID(nested, "id", "sessionId"), asID(nested["cdpUrl"])
	}
	return firstID(object, "id", "sessionId"), asID(object["cdpUrl"])
}

func firstID(object map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := object[key]; ok && value != nil {
			if id := asID(value); id != "" {
				return id
			}
		}
	}
	return ""
}

// toInt converts a decoded JSON number to int. JSON objects decode numbers
// as float64, but callers may also hand us native ints in tests.
func toInt(value any) (int, bool) {
	switch n := value.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
