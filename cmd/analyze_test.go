package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Joel-GJA/Github-Repo-analysis/internal/tui"
)

func TestValidateParams(t *testing.T) {
	valid := tui.DefaultParams()

	testCases := []struct {
		name    string
		mutate  func(p *tui.Params)
		wantErr bool
	}{
		{"defaults are valid", func(p *tui.Params) {}, false},
		{"empty query", func(p *tui.Params) { p.Query = "" }, true},
		{"limit below range", func(p *tui.Params) { p.Limit = 4 }, true},
		{"limit above range", func(p *tui.Params) { p.Limit = 51 }, true},
		{"limit bounds are inclusive", func(p *tui.Params) { p.Limit = 5 }, false},
		{"sort forks", func(p *tui.Params) { p.Sort = "forks" }, false},
		{"sort updated", func(p *tui.Params) { p.Sort = "updated" }, false},
		{"unknown sort", func(p *tui.Params) { p.Sort = "watchers" }, true},
		{"order asc", func(p *tui.Params) { p.Order = "asc" }, false},
		{"unknown order", func(p *tui.Params) { p.Order = "random" }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			err := validateParams(p)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
