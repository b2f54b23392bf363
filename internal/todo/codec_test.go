package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/model"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	items := []model.Item{
		{ID: 3, Text: "Buy milk"},
		{ID: 7, Text: "Walk dog", Completed: true},
		{ID: 4, Text: "Read"},
	}
	b, err := Encode(items)
	require.NoError(t, err)

	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestEncodeFormat(t *testing.T) {
	b, err := Encode([]model.Item{{ID: 1, Text: "a", Completed: true}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"text":"a","completed":true}]`, string(b))

	b, err = Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestDecodeTrailingData(t *testing.T) {
	_, err := Decode([]byte(`[] []`))
	require.Error(t, err)
}
