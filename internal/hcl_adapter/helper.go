package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/specialistvlad/leaguerank/internal/ctxlog"
)

// isExprDefined reports whether an attribute was written in the file.
// gohcl fills omitted optional expression fields with a zero-width
// placeholder, so a nil check alone is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}

	r := expr.Range()
	defined := r.End.Byte > r.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checked league attribute.", "attribute", attrName, "hcl_range", r.String(), "is_defined", defined)
	return defined
}

// decodeAttr evaluates expr and stores it in target, converting to want
// first. Omitted or null attributes leave target untouched.
func decodeAttr(ctx context.Context, expr hcl.Expression, attrName string, want cty.Type, target any) error {
	if !isExprDefined(ctx, expr, attrName) {
		return nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return fmt.Errorf("failed to evaluate '%s': %w", attrName, diags)
	}
	if val.IsNull() {
		return nil
	}

	val, err := convert.Convert(val, want)
	if err != nil {
		return fmt.Errorf("attribute '%s' at %s: %w", attrName, expr.Range(), err)
	}
	if err := gocty.FromCtyValue(val, target); err != nil {
		return fmt.Errorf("attribute '%s' at %s: %w", attrName, expr.Range(), err)
	}
	return nil
}
