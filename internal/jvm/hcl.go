package jvm

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// DecodeVersion reads a Java version from attr. A nil attribute yields the
// unset version.
func DecodeVersion(attr *hcl.Attribute) (Version, hcl.Diagnostics) {
	if attr == nil {
		return 0, nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}
	v, err := VersionFromCty(val)
	if err != nil {
		return 0, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid Java version",
			Detail:   fmt.Sprintf("%s: %s.", attr.Name, err),
			Subject:  attr.Expr.Range().Ptr(),
		})
	}
	return v, diags
}
