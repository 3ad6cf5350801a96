package projectpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_String(t *testing.T) {
	testCases := []struct {
		name        string
		path        Path
		expectedStr string
	}{
		{name: "root", path: Root(), expectedStr: ":"},
		{name: "single project", path: Root().Child("app"), expectedStr: ":app"},
		{name: "nested project", path: Root().Child("libs").Child("core"), expectedStr: ":libs:core"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStr, tc.path.String())
		})
	}
}

func TestPath_RoundTrip(t *testing.T) {
	for _, raw := range []string{":", ":app", ":libs:core", ":flutter_plugin-1.0"} {
		t.Run(raw, func(t *testing.T) {
			p, err := Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, p.String())

			again, err := Parse(p.String())
			require.NoError(t, err)
			assert.True(t, p.Equal(again))
		})
	}
}

func TestPath_NameAndParent(t *testing.T) {
	p := MustParse(":libs:core")
	assert.Equal(t, "core", p.Name())
	assert.Equal(t, ":libs", p.Parent().String())
	assert.True(t, p.Parent().Parent().IsRoot())
	assert.True(t, Root().Parent().IsRoot())
	assert.Equal(t, "", Root().Name())
}

func TestPath_ChildDoesNotAlias(t *testing.T) {
	base := MustParse(":libs")
	a := base.Child("a")
	b := base.Child("b")
	assert.Equal(t, ":libs:a", a.String())
	assert.Equal(t, ":libs:b", b.String())
}
