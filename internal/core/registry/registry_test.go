package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()

	codes := reg.Codes()
	require.NotEmpty(t, codes)
	assert.Equal(t, "0000", codes[0])
	assert.Equal(t, "9999", codes[len(codes)-1])

	for _, code := range codes {
		assert.Len(t, code, 4, "code %q", code)
		headers := reg.Headers(code)
		require.NotEmpty(t, headers, "code %q", code)
		assert.Equal(t, "REG", headers[0], "code %q", code)
	}

	assert.Equal(t, 37, reg.Width("C170"))
}

func TestHeadersUnknownCode(t *testing.T) {
	reg := Default()
	assert.Empty(t, reg.Headers("ZZZZ"))
	assert.False(t, reg.Has("ZZZZ"))
	assert.Equal(t, 0, reg.Width("ZZZZ"))
}

func TestHeadersReturnsCopy(t *testing.T) {
	reg := New([]Schema{{Code: "X001", Fields: []string{"REG", "A"}}})
	h := reg.Headers("X001")
	h[1] = "changed"
	assert.Equal(t, []string{"REG", "A"}, reg.Headers("X001"))

	codes := reg.Codes()
	codes[0] = "changed"
	assert.Equal(t, []string{"X001"}, reg.Codes())
}

func TestNewKeepsFirstPosition(t *testing.T) {
	reg := New([]Schema{
		{Code: "B", Fields: []string{"REG"}},
		{Code: "A", Fields: []string{"REG"}},
		{Code: "B", Fields: []string{"REG", "X"}},
	})
	assert.Equal(t, []string{"B", "A"}, reg.Codes())
	assert.Equal(t, []string{"REG", "X"}, reg.Headers("B"))
}

func TestFieldIndex(t *testing.T) {
	reg := Default()

	idx, ok := reg.FieldIndex("0000", "DT_INI")
	require.True(t, ok)
	assert.Equal(t, 5, idx)

	idx, ok = reg.FieldIndex("0000", "CNPJ")
	require.True(t, ok)
	assert.Equal(t, 8, idx)

	_, ok = reg.FieldIndex("0000", "NOPE")
	assert.False(t, ok)
}
