package hclutil

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// TraversalKey generates a stable, canonical string representation for an
// hcl.Traversal, suitable for use as a map key or in messages.
func TraversalKey(t hcl.Traversal) string {
	// e.g., project.app
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// ReferenceName resolves expr to the name it refers to. Both a reference of
// the form `<kind>.<name>` and a plain string are accepted.
func ReferenceName(expr hcl.Expression, kind string) (string, hcl.Diagnostics) {
	if traversal, travDiags := hcl.AbsTraversalForExpr(expr); !travDiags.HasErrors() {
		if len(traversal) == 2 && traversal.RootName() == kind {
			if attr, ok := traversal[1].(hcl.TraverseAttr); ok {
				return attr.Name, nil
			}
		}
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid reference",
			Detail:   fmt.Sprintf("Expected %s.<name> or a string, got %s.", kind, TraversalKey(traversal)),
			Subject:  expr.Range().Ptr(),
		}}
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
		return "", append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid reference",
			Detail:   fmt.Sprintf("Expected %s.<name> or a string.", kind),
			Subject:  expr.Range().Ptr(),
		})
	}
	return val.AsString(), diags
}
