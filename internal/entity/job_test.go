package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_JobUpdate_IsEmpty(t *testing.T) {
	assert.True(t, (&JobUpdate{}).IsEmpty())

	title := "Engineer"
	assert.False(t, (&JobUpdate{Title: &title}).IsEmpty())

	assert.False(t, (&JobUpdate{Skills: []string{}}).IsEmpty())
}

func Test_JobUpdate_DecodePreservesFieldPresence(t *testing.T) {
	var patch JobUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"title": "Engineer", "desc": ""}`), &patch))

	require.NotNil(t, patch.Title)
	assert.Equal(t, "Engineer", *patch.Title)

	// explicitly cleared vs. omitted
	require.NotNil(t, patch.Desc)
	assert.Equal(t, "", *patch.Desc)
	assert.Nil(t, patch.Degree)
	assert.Nil(t, patch.Skills)
}

func Test_Job_MarshalOmitsUnsetUpdated(t *testing.T) {
	data, err := json.Marshal(Job{Title: "Engineer"})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	_, has := got["updated"]
	assert.False(t, has)
}
