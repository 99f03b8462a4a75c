// file: internals/helpers/patch_field_test.go
package helper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchBody struct {
	Notes PatchField[string]  `json:"notes"`
	Rent  PatchField[float64] `json:"rent"`
}

func TestPatchField_Unset(t *testing.T) {
	var body patchBody
	require.NoError(t, json.Unmarshal([]byte(`{}`), &body))

	assert.False(t, body.Notes.Set)
	assert.False(t, body.Rent.Set)
}

func TestPatchField_Null(t *testing.T) {
	var body patchBody
	require.NoError(t, json.Unmarshal([]byte(`{"notes": null}`), &body))

	assert.True(t, body.Notes.Set)
	assert.True(t, body.Notes.Null)
	assert.Nil(t, body.Notes.Value)
}

func TestPatchField_SetValue(t *testing.T) {
	var body patchBody
	require.NoError(t, json.Unmarshal([]byte(`{"notes": "repainted", "rent": 800000}`), &body))

	require.True(t, body.Notes.Set)
	assert.False(t, body.Notes.Null)
	require.NotNil(t, body.Notes.Value)
	assert.Equal(t, "repainted", *body.Notes.Value)

	require.NotNil(t, body.Rent.Value)
	assert.Equal(t, 800000.0, *body.Rent.Value)
}

func TestPatchField_TypeMismatch(t *testing.T) {
	var body patchBody
	assert.Error(t, json.Unmarshal([]byte(`{"rent": "lots"}`), &body))
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
