package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)
	assert.Equal(t, 2, p.Current)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, int64(25), p.Total)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	first := NewPagination(1, 10, 25)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	last := NewPagination(3, 10, 25)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)

	exact := NewPagination(2, 10, 20)
	assert.Equal(t, 2, exact.Pages)
	assert.False(t, exact.HasNext)

	empty := NewPagination(1, 10, 0)
	assert.Equal(t, 0, empty.Pages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func TestResponseEnvelopeShape(t *testing.T) {
	raw, err := json.Marshal(OK(map[string]int{"n": 1}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": true, "data": {"n": 1}}`, string(raw))

	raw, err = json.Marshal(Fail("nope"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": false, "error": "nope"}`, string(raw))

	raw, err = json.Marshal(OKMessage(nil, "done"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": true, "message": "done"}`, string(raw))
}
