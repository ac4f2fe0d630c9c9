package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveVariants(t *testing.T) {
	t.Parallel()

	light, err := Resolve("")
	require.NoError(t, err)
	require.Equal(t, VariantLight, light.Variant)
	require.Equal(t, "#1c1ce1", light.Colors["primary"])
	require.Equal(t, "1024px", light.Breakpoints["l"])

	dark, err := Resolve(VariantDark)
	require.NoError(t, err)
	require.Equal(t, "#ff7324", dark.Colors["primary"])
	// tokens the dark variant does not override come from the base set
	require.Equal(t, "#109e62", dark.Colors["success"])
	require.Equal(t, "414px", dark.Breakpoints["s"])
}

func TestVarsAreSortedCustomProperties(t *testing.T) {
	t.Parallel()

	theme, err := Resolve(VariantLight)
	require.NoError(t, err)
	vars := theme.Vars()
	require.NotEmpty(t, vars)
	for i := 1; i < len(vars); i++ {
		require.Less(t, vars[i-1].Name, vars[i].Name)
	}
	require.Contains(t, vars, Var{Name: "--colors-primary", Value: "#1c1ce1"})
}

func TestBuildRendersTokens(t *testing.T) {
	t.Parallel()

	css, err := Build(VariantLight)
	require.NoError(t, err)
	require.Contains(t, css, "--colors-primary: #1c1ce1;")
	require.Contains(t, css, "@media (max-width: 1024px)")
	require.Contains(t, css, ".summary-point {")
	require.Contains(t, css, "background-color: #f2f2f2;")
	require.NotContains(t, css, "{{")
	require.NotContains(t, css, "{%")
}
