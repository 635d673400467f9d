package cssvars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tokengen"
)

func TestAuditDefaultTheme(t *testing.T) {
	for _, mode := range []tokengen.ColorMode{tokengen.Light, tokengen.Dark} {
		t.Run(mode.String(), func(t *testing.T) {
			tokens := tokengen.Default().WithMode(mode)
			result, err := Audit(AuditConfig{Tokens: tokens})
			require.NoError(t, err)

			assert.Equal(t, mode, result.Mode)
			assert.Len(t, result.Pairs, len(tokengen.ForegroundRoles())*len(tokengen.SurfaceRoles()))

			first := result.Pairs[0]
			assert.Equal(t, tokengen.RoleText, first.Foreground)
			assert.Equal(t, tokengen.RoleBackground, first.Background)
			assert.GreaterOrEqual(t, first.Ratio, tokengen.ContrastAA)

			for _, issue := range result.Issues {
				assert.Equal(t, LinterContrast, issue.FromLinter)
				assert.Equal(t, "tokens.css", issue.Pos.Filename)
				assert.NotContains(t, issue.Text, "--sh-color-text on", "body text must pass AA")
			}
			assert.False(t, result.Failed(false))
		})
	}
}

func TestPairIssue(t *testing.T) {
	tokens := tokengen.Default()
	white := tokengen.NewHSL(0, 0, 100)

	tests := []struct {
		name     string
		fg       tokengen.Role
		ratio    float64
		wantOK   bool
		severity string
		target   string
	}{
		{"passes AA", tokengen.RolePrimary, 4.6, false, "", ""},
		{"accent below AA", tokengen.RoleAccent, 3.2, true, SeverityWarning, "below AA (4.5:1)"},
		{"accent below large", tokengen.RoleAccent, 2.0, true, SeverityWarning, "below AA (4.5:1)"},
		{"text below AA", tokengen.RoleText, 3.5, true, SeverityWarning, "below AA (4.5:1)"},
		{"text below large", tokengen.RoleText, 2.5, true, SeverityError, "below AA Large (3.0:1)"},
		{"muted below large", tokengen.RoleTextMuted, 1.2, true, SeverityError, "below AA Large (3.0:1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := ContrastPair{
				Foreground: tt.fg,
				Background: tokengen.RoleSurface,
				FgColor:    white,
				BgColor:    white,
				Ratio:      tt.ratio,
			}
			issue, ok := pairIssue(tokens, pair)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.severity, issue.Severity)
			assert.Contains(t, issue.Text, tt.target)
			assert.Contains(t, issue.Text, tokens.ColorVar(tt.fg)+" on --sh-color-surface")
			assert.Zero(t, issue.Pos.Line)
		})
	}
}

func TestAuditFailed(t *testing.T) {
	warn := AuditResult{Issues: []Issue{{Severity: SeverityWarning}}}
	assert.False(t, warn.Failed(false))
	assert.True(t, warn.Failed(true))

	failing := AuditResult{Issues: []Issue{{Severity: SeverityError}}}
	assert.True(t, failing.Failed(false))

	assert.False(t, (&AuditResult{}).Failed(true))
}
