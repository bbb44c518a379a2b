package configuron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestBuilder tests the builder pattern
func TestBuilder(t *testing.T) {
	t.Run("BasicBuilder", func(t *testing.T) {
		m := new(serverModule)
		err := NewBuilder().Extend(m)
		require.NoError(t, err)
		assert.True(t, m.Extended())
	})

	t.Run("BuilderWithAllOptions", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		root := t.TempDir()

		m := new(serverModule)
		err := NewBuilder().
			WithLogger(zap.New(core)).
			WithName("server").
			WithRoot(root).
			Extend(m)
		require.NoError(t, err)

		assert.Equal(t, "server", m.Name())
		assert.Equal(t, root, m.Root())

		entries := logs.FilterMessage("module extended").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "server", entries[0].ContextMap()["module"])
		assert.Equal(t, root, entries[0].ContextMap()["root"])
	})

	t.Run("NilLoggerKeepsDefault", func(t *testing.T) {
		m := new(serverModule)
		require.NoError(t, NewBuilder().WithLogger(nil).Extend(m))
		assert.NotPanics(t, func() {
			m.MustConfiguration()
			m.Reset()
		})
	})

	t.Run("BuilderRejectsIneligible", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		err := NewBuilder().WithLogger(zap.New(core)).Extend(hello{})
		assert.ErrorIs(t, err, ErrUnconfigurableType)
		assert.Zero(t, logs.Len())
	})

	t.Run("ReusableAcrossModules", func(t *testing.T) {
		b := NewBuilder().WithName("shared")
		m1 := new(serverModule)
		m2 := new(plainModule)
		require.NoError(t, b.Extend(m1))
		require.NoError(t, b.Extend(m2))

		assert.Equal(t, "shared", m1.Name())
		assert.Equal(t, "shared", m2.Name())
		m1.MustConfiguration().Port = 1
		m2.Reset()
		assert.Equal(t, 1, m1.MustConfiguration().Port)
	})
}
