package hclutil

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// StringList evaluates expr without variables and decodes it into a slice of
// strings. A null value yields a nil slice.
func StringList(expr hcl.Expression) ([]string, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() || val.IsNull() {
		return nil, diags
	}

	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid value",
			Detail:   fmt.Sprintf("A list of strings is required: %s.", err),
			Subject:  expr.Range().Ptr(),
		})
	}

	out := []string{}
	if err := gocty.FromCtyValue(listVal, &out); err != nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid value",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		})
	}
	return out, diags
}
