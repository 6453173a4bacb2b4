package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeFields(t *testing.T, body string) Fields {
	t.Helper()
	var f Fields
	require.NoError(t, json.Unmarshal([]byte(body), &f))
	return f
}

func TestFields_Text(t *testing.T) {
	f := decodeFields(t, `{
		"topic": "summer sale",
		"trustLevel": 7,
		"ratio": 0.5,
		"vip": true,
		"devices": ["Mobile", "Desktop"],
		"empty": "",
		"nothing": null,
		"nested": {"a": 1}
	}`)

	assert.Equal(t, "summer sale", f.Text("topic"))
	assert.Equal(t, "7", f.Text("trustLevel"))
	assert.Equal(t, "0.5", f.Text("ratio"))
	assert.Equal(t, "true", f.Text("vip"))
	assert.Equal(t, "Mobile,Desktop", f.Text("devices"))
	assert.Equal(t, "", f.Text("empty"))
	assert.Equal(t, "null", f.Text("nothing"))
	assert.Equal(t, "[object Object]", f.Text("nested"))
	assert.Equal(t, "undefined", f.Text("product"))
}

func TestFields_Truthy(t *testing.T) {
	f := decodeFields(t, `{"seed": "curious", "blank": "", "zero": 0, "off": false}`)

	assert.True(t, f.Truthy("seed"))
	assert.False(t, f.Truthy("blank"))
	assert.False(t, f.Truthy("zero"))
	assert.False(t, f.Truthy("off"))
	assert.False(t, f.Truthy("missing"))
}

func TestFields_Object(t *testing.T) {
	f := decodeFields(t, `{"persona": {"name": "Maya"}, "scalar": "x"}`)

	assert.Equal(t, "Maya", f.Object("persona").Text("name"))
	assert.Equal(t, "undefined", f.Object("scalar").Text("name"))
	assert.Equal(t, "undefined", f.Object("missing").Text("name"))
}

func TestFields_History(t *testing.T) {
	f := decodeFields(t, `{"conversationHistory": [
		{"role": "user", "content": "Hi"},
		{"role": "persona", "content": "Hello there"},
		"stray",
		42
	]}`)

	history := f.History("conversationHistory")
	require.Len(t, history, 4)
	assert.Equal(t, ChatMessage{Role: ChatRoleUser, Content: "Hi"}, history[0])
	assert.Equal(t, ChatMessage{Role: "persona", Content: "Hello there"}, history[1])
	assert.Equal(t, ChatMessage{Content: "undefined"}, history[2])
	assert.Equal(t, ChatMessage{Content: "undefined"}, history[3])

	assert.Empty(t, Fields{}.History("conversationHistory"))
}
