package plugins

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/buildwire/internal/jvm"
)

// Configurable is implemented by extensions that take settings from the
// project block named after them. The body is decoded against the
// extension's own schema, so arguments it does not declare are reported as
// diagnostics.
type Configurable interface {
	Configure(body hcl.Body) hcl.Diagnostics
}

// compileOptionsConfig is the schema shared by `android.compile_options`
// and `java` blocks.
type compileOptionsConfig struct {
	SourceCompatibility *hcl.Attribute `hcl:"source_compatibility,optional"`
	TargetCompatibility *hcl.Attribute `hcl:"target_compatibility,optional"`
}

// applyTo sets every version the block declares. Versions it leaves out keep
// their current value.
func (c *compileOptionsConfig) applyTo(opts *jvm.CompileOptions) hcl.Diagnostics {
	var diags hcl.Diagnostics
	set := func(attr *hcl.Attribute, setter func(jvm.Version) error) {
		if attr == nil {
			return
		}
		v, vDiags := jvm.DecodeVersion(attr)
		diags = append(diags, vDiags...)
		if vDiags.HasErrors() {
			return
		}
		if err := setter(v); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid Java version",
				Detail:   fmt.Sprintf("%s: %s.", attr.Name, err),
				Subject:  attr.Expr.Range().Ptr(),
			})
		}
	}
	set(c.SourceCompatibility, opts.SetSourceCompatibility)
	set(c.TargetCompatibility, opts.SetTargetCompatibility)
	return diags
}
