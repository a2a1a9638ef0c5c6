package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testTarget struct {
	precision uint
	label     string
	calls     []string
}

func withPrecision(p uint) Option[*testTarget] {
	return New(func(t *testTarget) error {
		if p > 40 {
			return errors.New("precision too large")
		}
		t.precision = p
		t.calls = append(t.calls, "precision")

		return nil
	})
}

func withLabel(label string) Option[*testTarget] {
	return NoError(func(t *testTarget) {
		t.label = label
		t.calls = append(t.calls, "label")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		target := &testTarget{}
		err := Apply(target, withLabel("wkt"), withPrecision(15))
		require.NoError(t, err)
		require.Equal(t, uint(15), target.precision)
		require.Equal(t, "wkt", target.label)
		require.Equal(t, []string{"label", "precision"}, target.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		target := &testTarget{}
		err := Apply(target, withPrecision(99), withLabel("never"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "precision too large")
		require.Empty(t, target.label)
	})

	t.Run("skips nil options", func(t *testing.T) {
		target := &testTarget{}
		err := Apply(target, nil, withLabel("geojson"))
		require.NoError(t, err)
		require.Equal(t, "geojson", target.label)
	})

	t.Run("no options", func(t *testing.T) {
		target := &testTarget{}
		require.NoError(t, Apply(target))
		require.Empty(t, target.calls)
	})
}
