package hclutil

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExpr(t *testing.T, src string) hcl.Expression {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors(), diags.Error())
	return expr
}

func parseBlocks(t *testing.T, src string) hcl.Blocks {
	t.Helper()
	file, diags := hclsyntax.ParseConfig([]byte(src), "test.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors(), diags.Error())
	var blocks hcl.Blocks
	for _, b := range file.Body.(*hclsyntax.Body).Blocks {
		blocks = append(blocks, b.AsHCLBlock())
	}
	return blocks
}

func TestFindUniqueBlock(t *testing.T) {
	blocks := parseBlocks(t, `
workspace "a" {}
project "app" {}
project "lib" {}
`)

	found, diags := FindUniqueBlock(blocks, "workspace")
	require.False(t, diags.HasErrors())
	require.NotNil(t, found)
	assert.Equal(t, []string{"a"}, found.Labels)

	found, diags = FindUniqueBlock(blocks, "configure")
	assert.False(t, diags.HasErrors())
	assert.Nil(t, found)

	found, diags = FindUniqueBlock(blocks, "project")
	require.Len(t, diags, 1)
	assert.Equal(t, `Duplicate "project" block`, diags[0].Summary)
	assert.Contains(t, diags[0].Detail, "test.hcl:3")
	assert.Equal(t, []string{"app"}, found.Labels, "the first block wins")
}

func TestReferenceName(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		want    string
		wantErr string
	}{
		{name: "traversal", src: `project.app`, want: "app"},
		{name: "string", src: `"app"`, want: "app"},
		{name: "path string", src: `":app"`, want: ":app"},
		{name: "wrong root", src: `module.app`, wantErr: "Expected project.<name> or a string, got module.app."},
		{name: "too deep", src: `project.app.dir`, wantErr: "got project.app.dir"},
		{name: "number", src: `42`, wantErr: "Expected project.<name> or a string."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, diags := ReferenceName(parseExpr(t, tc.src), "project")
			if tc.wantErr != "" {
				require.True(t, diags.HasErrors())
				assert.Contains(t, diags.Error(), tc.wantErr)
				return
			}
			require.False(t, diags.HasErrors(), diags.Error())
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTraversalKey(t *testing.T) {
	traversal, diags := hcl.AbsTraversalForExpr(parseExpr(t, `project.app`))
	require.False(t, diags.HasErrors())
	assert.Equal(t, "project.app", TraversalKey(traversal))
}

func TestStringList(t *testing.T) {
	got, diags := StringList(parseExpr(t, `["google", "maven_central"]`))
	require.False(t, diags.HasErrors())
	assert.Equal(t, []string{"google", "maven_central"}, got)

	got, diags = StringList(parseExpr(t, `[]`))
	require.False(t, diags.HasErrors())
	assert.Empty(t, got)

	got, diags = StringList(parseExpr(t, `null`))
	require.False(t, diags.HasErrors())
	assert.Nil(t, got)

	_, diags = StringList(parseExpr(t, `"google"`))
	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error(), "A list of strings is required")
}
