package filters

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatScalar(t *testing.T) {
	assert.Equal(t, "hello", formatScalar("hello"))
	assert.Equal(t, "true", formatScalar(true))
	assert.Equal(t, "false", formatScalar(false))
	assert.Equal(t, "42", formatScalar(42))
	assert.Equal(t, "-7", formatScalar(int64(-7)))
	assert.Equal(t, "18446744073709551615", formatScalar(uint64(1<<64-1)))
	assert.Equal(t, "3.14", formatScalar(3.14))
	assert.Equal(t, "1.5", formatScalar(float32(1.5)))
	assert.Equal(t, "1e+21", formatScalar(1e21))
}

func TestFormatScalarNamedTypes(t *testing.T) {
	type Size string
	type Count int16
	type Ratio float64
	type Flag bool

	assert.Equal(t, "xl", formatScalar(Size("xl")))
	assert.Equal(t, "12", formatScalar(Count(12)))
	assert.Equal(t, "0.5", formatScalar(Ratio(0.5)))
	assert.Equal(t, "true", formatScalar(Flag(true)))
}

func TestScalarFromAny(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		v, err := scalarFromAny[string]("a")
		require.NoError(t, err)
		assert.Equal(t, "a", v)
	})

	t.Run("bool", func(t *testing.T) {
		v, err := scalarFromAny[bool](true)
		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("int from json.Number", func(t *testing.T) {
		v, err := scalarFromAny[int](json.Number("42"))
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("int from yaml int", func(t *testing.T) {
		v, err := scalarFromAny[int64](7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), v)
	})

	t.Run("float from json.Number", func(t *testing.T) {
		v, err := scalarFromAny[float64](json.Number("1.25"))
		require.NoError(t, err)
		assert.Equal(t, 1.25, v)
	})

	t.Run("float target accepts integral input", func(t *testing.T) {
		v, err := scalarFromAny[float64](3)
		require.NoError(t, err)
		assert.Equal(t, 3.0, v)
	})

	t.Run("int target accepts integral float", func(t *testing.T) {
		v, err := scalarFromAny[int](float64(5))
		require.NoError(t, err)
		assert.Equal(t, 5, v)
	})

	t.Run("uint64 above MaxInt64 from json.Number", func(t *testing.T) {
		v, err := scalarFromAny[uint64](json.Number("18446744073709551615"))
		require.NoError(t, err)
		assert.Equal(t, uint64(1<<64-1), v)
	})

	t.Run("uint64 above MaxInt64 from yaml uint64", func(t *testing.T) {
		v, err := scalarFromAny[uint64](uint64(1 << 64 - 1))
		require.NoError(t, err)
		assert.Equal(t, uint64(1<<64-1), v)
	})

	t.Run("uint from int", func(t *testing.T) {
		v, err := scalarFromAny[uint](7)
		require.NoError(t, err)
		assert.Equal(t, uint(7), v)
	})

	t.Run("named type", func(t *testing.T) {
		type Count int
		v, err := scalarFromAny[Count](json.Number("9"))
		require.NoError(t, err)
		assert.Equal(t, Count(9), v)
	})
}

func TestScalarFromAnyRejects(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{name: "number into string", run: func() error { _, err := scalarFromAny[string](json.Number("1")); return err }},
		{name: "string into bool", run: func() error { _, err := scalarFromAny[bool]("true"); return err }},
		{name: "bool into int", run: func() error { _, err := scalarFromAny[int](true); return err }},
		{name: "fractional into int", run: func() error { _, err := scalarFromAny[int](1.5); return err }},
		{name: "overflow int8", run: func() error { _, err := scalarFromAny[int8](json.Number("300")); return err }},
		{name: "overflow uint8", run: func() error { _, err := scalarFromAny[uint8](json.Number("300")); return err }},
		{name: "negative into uint", run: func() error { _, err := scalarFromAny[uint](-1); return err }},
		{name: "fractional into uint", run: func() error { _, err := scalarFromAny[uint](1.5); return err }},
		{name: "list into string", run: func() error { _, err := scalarFromAny[string]([]any{"a"}); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			var scalarErr *ErrScalarType
			require.ErrorAs(t, err, &scalarErr)
			assert.NotEmpty(t, scalarErr.Error())
		})
	}
}
