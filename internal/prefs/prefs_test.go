package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "k", []byte(`{"a":1}`)))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadJSONFallsBackOnCorruptEntry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, "bad", []byte("{not json")))

	v := sample{Name: "default", Count: 7}
	ok := LoadJSON(ctx, s, "bad", &v)

	assert.False(t, ok)
	assert.Equal(t, sample{Name: "default", Count: 7}, v)
}

func TestLoadJSONWrongFieldTypeKeepsDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	// valid JSON, but count has the wrong type after name decodes
	require.NoError(t, s.Set(ctx, "typed", []byte(`{"name":"partial","count":"x"}`)))

	v := sample{Name: "default", Count: 7}
	assert.False(t, LoadJSON(ctx, s, "typed", &v))
	assert.Equal(t, sample{Name: "default", Count: 7}, v)
}

func TestLoadJSONMissingEntry(t *testing.T) {
	v := sample{Name: "default"}
	assert.False(t, LoadJSON(context.Background(), NewMemoryStore(), "nope", &v))
	assert.Equal(t, "default", v.Name)
}

func TestSaveThenLoadJSON(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, SaveJSON(ctx, s, "x", sample{Name: "saved", Count: 3}))

	var v sample
	require.True(t, LoadJSON(ctx, s, "x", &v))
	assert.Equal(t, sample{Name: "saved", Count: 3}, v)
}
