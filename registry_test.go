package fieldkit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit"
	"github.com/dmitrymomot/fieldkit/markup"
)

// stubType is a minimal field type for registry and validator plumbing tests.
type stubType struct {
	name string
}

func (s stubType) Name() string                           { return s.name }
func (stubType) Supports(fieldkit.Capability) bool        { return false }
func (stubType) DefaultValue() any                        { return "" }
func (stubType) Render(fieldkit.Definition, any) *markup.Control { return &markup.Control{} }
func (stubType) Sanitize(_ context.Context, raw any, _ fieldkit.Definition) any {
	return raw
}
func (stubType) Validate(_ context.Context, _ any, _ fieldkit.Definition) fieldkit.Errors {
	return nil
}
func (stubType) DisplayValue(any, fieldkit.Definition) string { return "" }
func (stubType) StorageValue(value any) any                   { return value }
func (stubType) RuntimeValue(stored any) any                  { return stored }

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("lookup miss returns false, not an error", func(t *testing.T) {
		reg := fieldkit.NewRegistry()

		_, ok := reg.Type("nope")
		assert.False(t, ok)

		_, ok = reg.Definition("nope")
		assert.False(t, ok)
	})

	t.Run("constructor seeds types", func(t *testing.T) {
		reg := fieldkit.NewRegistry(stubType{name: "stub"})

		got, ok := reg.Type("stub")
		require.True(t, ok)
		assert.Equal(t, "stub", got.Name())
	})

	t.Run("type registration is last-write-wins", func(t *testing.T) {
		reg := fieldkit.NewRegistry()
		first := stubType{name: "stub"}
		second := stubType{name: "stub"}

		reg.RegisterType(first)
		reg.RegisterType(second)

		got, ok := reg.Type("stub")
		require.True(t, ok)
		assert.Equal(t, second, got)
	})

	t.Run("definition re-registration keeps enumeration position", func(t *testing.T) {
		reg := fieldkit.NewRegistry()
		reg.RegisterDefinition(fieldkit.Definition{Name: "a", Type: "stub", Label: "A"})
		reg.RegisterDefinition(fieldkit.Definition{Name: "b", Type: "stub"})
		reg.RegisterDefinition(fieldkit.Definition{Name: "a", Type: "stub", Label: "A2"})

		defs := reg.Definitions()
		require.Len(t, defs, 2)
		assert.Equal(t, "a", defs[0].Name)
		assert.Equal(t, "A2", defs[0].Label, "re-registration overwrites")
		assert.Equal(t, "b", defs[1].Name)
	})

	t.Run("unknown definition type is accepted at registration time", func(t *testing.T) {
		reg := fieldkit.NewRegistry()
		reg.RegisterDefinition(fieldkit.Definition{Name: "later", Type: "not-yet-loaded"})

		_, ok := reg.Definition("later")
		assert.True(t, ok)
	})

	t.Run("empty names are ignored", func(t *testing.T) {
		reg := fieldkit.NewRegistry()
		reg.RegisterDefinition(fieldkit.Definition{Type: "stub"})
		reg.RegisterType(nil)

		assert.Empty(t, reg.Definitions())
		assert.Empty(t, reg.TypeNames())
	})

	t.Run("reset clears both catalogs", func(t *testing.T) {
		reg := fieldkit.NewRegistry(stubType{name: "stub"})
		reg.RegisterDefinition(fieldkit.Definition{Name: "a", Type: "stub"})

		reg.Reset()

		assert.Empty(t, reg.Definitions())
		_, ok := reg.Type("stub")
		assert.False(t, ok)
	})

	t.Run("type names are sorted", func(t *testing.T) {
		reg := fieldkit.NewRegistry(stubType{name: "zeta"}, stubType{name: "alpha"})
		assert.Equal(t, []string{"alpha", "zeta"}, reg.TypeNames())
	})
}
