package platform

import (
	"encoding/json"
	"fmt"
	"io"
)

// Response is the JSON object a hook writes to stdout.
type Response map[string]any

// Allow produces the pass-through response. Both tools treat an empty
// object as "continue without comment".
func Allow() Response {
	return Response{}
}

// Block produces the reminder response in the target tool's shape.
// Claude Code expects a block decision with a reason; Cursor reads a
// followup_message; an unknown tool gets a generic message field.
func Block(message string, p Platform) Response {
	switch p {
	case Cursor:
		return Response{"followup_message": message}
	case ClaudeCode:
		return Response{"decision": "block", "reason": message}
	default:
		return Response{"message": message}
	}
}

// Write serializes the response to w followed by a newline. Hooks always
// exit 0; the response body is the only channel back to the host tool.
func Write(w io.Writer, resp Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshaling hook response: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("writing hook response: %w", err)
	}
	return nil
}
