package handlers

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesTable(t *testing.T) {
	path := writeTestConfig(t)

	var buf bytes.Buffer
	require.NoError(t, Names(&buf, path, "table"))

	out := buf.String()
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "resource_group")
	assert.Contains(t, out, "neko-rg-prod-weu-01")
	assert.Contains(t, out, "nekostprodweu01")
}

func TestNamesJSON(t *testing.T) {
	path := writeTestConfig(t)

	var buf bytes.Buffer
	require.NoError(t, Names(&buf, path, "json"))

	var entries []nameEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))

	byType := map[string]nameEntry{}
	for _, entry := range entries {
		byType[entry.Type] = entry
	}
	assert.Equal(t, "neko-kv-prod-weu-01", byType["key_vault"].General)
	assert.Equal(t, "nekokvprodweu01", byType["key_vault"].Storage)
}

func TestNamesUnknownFormat(t *testing.T) {
	path := writeTestConfig(t)

	err := Names(&bytes.Buffer{}, path, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
