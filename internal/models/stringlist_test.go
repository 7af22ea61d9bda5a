package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_ValueScan(t *testing.T) {
	t.Parallel()

	list := StringList{"React", "Go"}
	v, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, `["React","Go"]`, v)

	var out StringList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, list, out)

	var fromNil StringList
	require.NoError(t, fromNil.Scan(nil))
	assert.Empty(t, fromNil)
}

func TestStringList_NilValue(t *testing.T) {
	t.Parallel()

	var list StringList
	v, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringList_Intersects(t *testing.T) {
	t.Parallel()

	stack := StringList{"React", "Go", "Postgres"}

	assert.True(t, stack.Intersects([]string{"Go"}))
	assert.True(t, stack.Intersects([]string{"Rust", "React"}))
	assert.False(t, stack.Intersects([]string{"Rust"}))
	assert.False(t, stack.Intersects(nil))
}
