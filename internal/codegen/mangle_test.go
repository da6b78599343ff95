package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMangle(t *testing.T) {
	vars := map[string]string{
		"contatore": "v_contatore",
		"while":     "v_while",
		"assert":    "v_assert",
		"std":       "v_std",
		"x_1":       "v_x_u005F1",
		"_x1":       "v_0u005Fx1",
		"città":     "v_citt_u00E0",
		"è":         "v_0u00E8",
		"𝔵":         "v_0U0001D535",
	}
	for in, expected := range vars {
		assert.Equal(t, expected, mangleVar(in), in)
	}

	assert.Equal(t, "f_contatore", mangleFunc("contatore"))
	assert.Equal(t, "f_main", mangleFunc("main"))
}

func TestMangleIsInjective(t *testing.T) {
	names := []string{
		"int", "int_", "int__", "_int", "in_t",
		"u00E8", "è", "_u00E8", "x_u00E8", "xè", "x_è",
		"a", "A", "a0", "a_0", "a__0", "_", "__",
		"U0001D535", "𝔵", "0u00E8",
	}

	seen := make(map[string]string)
	for _, name := range names {
		mangled := mangleVar(name)
		if other, ok := seen[mangled]; ok {
			t.Errorf("%q and %q both mangle to %q", other, name, mangled)
		}
		seen[mangled] = name

		assert.NotContains(t, mangled, "__", name)
		assert.NotEqual(t, mangled, mangleFunc(name), name)
	}
}

func TestScopeLookup(t *testing.T) {
	outer := newScope(nil)
	outer.declare("a", 0)
	inner := newScope(outer)
	inner.declare("b", 0)

	_, ok := inner.lookup("a")
	assert.True(t, ok)
	_, ok = outer.lookup("b")
	assert.False(t, ok)
	assert.Equal(t, []string{"b", "a"}, inner.visible())
}
