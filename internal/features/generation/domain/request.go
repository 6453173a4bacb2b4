// Package domain holds the request, result and error types of the
// generation endpoints.
package domain

import (
	"strconv"
	"strings"
)

// Fields is a generation request body. Inputs are not validated: a missing
// field renders as "undefined" in the prompt.
type Fields map[string]any

// Text renders the field the way a template literal would.
func (f Fields) Text(key string) string {
	v, ok := f[key]
	if !ok {
		return "undefined"
	}
	return render(v)
}

// Truthy reports whether the field is present and non-empty.
func (f Fields) Truthy(key string) bool {
	switch v := f[key].(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	default:
		return true
	}
}

// Object returns a nested object field; absent or non-object values yield
// an empty Fields so prompt rendering never fails.
func (f Fields) Object(key string) Fields {
	if m, ok := f[key].(map[string]any); ok {
		return Fields(m)
	}
	return Fields{}
}

// List returns a nested array field, or nil.
func (f Fields) List(key string) []any {
	if l, ok := f[key].([]any); ok {
		return l
	}
	return nil
}

func render(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			if item == nil {
				continue
			}
			parts[i] = render(item)
		}
		return strings.Join(parts, ",")
	case map[string]any, Fields:
		return "[object Object]"
	default:
		return "undefined"
	}
}

// ChatMessage is one turn of a client-held conversation.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatRoleUser marks turns written by the user; any other role is the persona.
const ChatRoleUser = "user"

// History decodes the conversation history sent by the client. Malformed
// entries are kept, with undefined content, rather than rejected.
func (f Fields) History(key string) []ChatMessage {
	items := f.List(key)
	out := make([]ChatMessage, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			// A non-object turn has no content field.
			out = append(out, ChatMessage{Content: "undefined"})
			continue
		}
		msg := Fields(m)
		role, _ := msg["role"].(string)
		out = append(out, ChatMessage{Role: role, Content: msg.Text("content")})
	}
	return out
}
