package hcl_adapter

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/leaguerank/internal/config"
)

type attrTarget struct {
	name   string
	expr   hcl.Expression
	want   cty.Type
	target any
}

// translateLeague overlays the decoded blocks on top of the defaults.
func (l *Loader) translateLeague(ctx context.Context, root *fileRoot) (*config.League, error) {
	out := config.Default()

	var attrs []attrTarget
	if s := root.Scoring; s != nil {
		attrs = append(attrs,
			attrTarget{"scoring.win", s.Win, cty.Number, &out.Scoring.Win},
			attrTarget{"scoring.tie", s.Tie, cty.Number, &out.Scoring.Tie},
			attrTarget{"scoring.loss", s.Loss, cty.Number, &out.Scoring.Loss},
		)
	}
	if u := root.Units; u != nil {
		attrs = append(attrs,
			attrTarget{"units.singular", u.Singular, cty.String, &out.Units.Singular},
			attrTarget{"units.plural", u.Plural, cty.String, &out.Units.Plural},
		)
	}

	for _, a := range attrs {
		if err := decodeAttr(ctx, a.expr, a.name, a.want, a.target); err != nil {
			return nil, err
		}
	}
	return out, nil
}
