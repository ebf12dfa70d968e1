package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	c := Catalog{
		Package: "icons",
		Icons: []Icon{
			{Name: "arrow-up", Component: "ArrowUp", File: "arrow_up.go", ViewBox: "0 0 24 24", Elements: 2},
			{Name: "type", Component: "Type", File: "type_.go", Elements: 3},
		},
	}
	data, err := Encode(c)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `package = "icons"`)
	assert.Contains(t, out, "[[icons]]")
	assert.Contains(t, out, `file = "type_.go"`)
	assert.Contains(t, out, `view_box = "0 0 24 24"`)

	back, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte("package = "))
	assert.Error(t, err)
}
