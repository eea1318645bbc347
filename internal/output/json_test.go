package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	err := formatter.Format(
		[]string{"name", "price"},
		[]map[string]string{
			{"name": "iphone 15 pro", "price": "999"},
			{"name": "redmi note 12", "price": "199"},
		})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "iphone 15 pro", first["name"])
	assert.Equal(t, "999", first["price"])

	var second map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "199", second["price"])
}

func TestJSONFormatter_EmptyDataset(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	err := formatter.Format([]string{"name"}, nil)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
