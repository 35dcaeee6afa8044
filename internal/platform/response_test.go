package platform

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlock_ShapePerPlatform(t *testing.T) {
	assert.Equal(t, Response{"decision": "block", "reason": "msg"},
		Block("msg", ClaudeCode))
	assert.Equal(t, Response{"followup_message": "msg"},
		Block("msg", Cursor))
	assert.Equal(t, Response{"message": "msg"},
		Block("msg", Unknown))
}

func TestWrite_SingleJSONObject(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Allow()))

	assert.Equal(t, "{}\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, Block("remember to precipitate", ClaudeCode)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "block", decoded["decision"])
	assert.Equal(t, "remember to precipitate", decoded["reason"])
}
