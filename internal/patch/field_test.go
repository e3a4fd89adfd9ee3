package patch_test

import (
	"encoding/json"
	"testing"

	"tasktracker/internal/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	Title    patch.Field[string] `json:"title"`
	Assignee patch.Field[string] `json:"assignee_uuid"`
	Done     patch.Field[bool]   `json:"is_completed"`
}

func TestField_DistinguishesAbsentNullAndValue(t *testing.T) {
	var b body
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x","assignee_uuid":null}`), &b))

	assert.True(t, b.Title.Present())
	assert.Equal(t, "x", b.Title.Value)

	assert.True(t, b.Assignee.Set)
	assert.True(t, b.Assignee.Null)
	assert.False(t, b.Assignee.Present())

	assert.False(t, b.Done.Set)
}

func TestField_FalseIsAValue(t *testing.T) {
	var b body
	require.NoError(t, json.Unmarshal([]byte(`{"is_completed":false}`), &b))

	assert.True(t, b.Done.Present())
	assert.False(t, b.Done.Value)
}

func TestField_TypeMismatch(t *testing.T) {
	var b body
	err := json.Unmarshal([]byte(`{"is_completed":"yes"}`), &b)
	assert.Error(t, err)
}
