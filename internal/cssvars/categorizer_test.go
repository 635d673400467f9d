package cssvars

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yacobolo/tokengen"
)

func TestCategorizeProperty(t *testing.T) {
	tests := []struct {
		property string
		want     tokengen.Group
	}{
		{"color", tokengen.GroupColor},
		{"Background-Color", tokengen.GroupColor},
		{"border-left", tokengen.GroupColor},
		{"border-inline-start-color", tokengen.GroupColor},
		{"-webkit-text-fill-color", tokengen.GroupColor},
		{"fill", tokengen.GroupColor},
		{"background-image", tokengen.GroupGradient},
		{"box-shadow", tokengen.GroupShadow},
		{"-moz-box-shadow", tokengen.GroupShadow},
		{"border-radius", tokengen.GroupRadius},
		{"border-top-left-radius", tokengen.GroupRadius},
		{"font-size", tokengen.GroupTypography},
		{"padding-inline", tokengen.GroupSpacing},
		{"margin-top", tokengen.GroupSpacing},
		{"gap", tokengen.GroupSpacing},
		{"display", ""},
		{"width", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			assert.Equal(t, tt.want, categorizeProperty(tt.property))
		})
	}
}

func TestIsColorProperty(t *testing.T) {
	assert.True(t, isColorProperty("color"))
	assert.True(t, isColorProperty("background"))
	assert.True(t, isColorProperty("text-shadow"))
	assert.True(t, isColorProperty("background-image"))
	assert.False(t, isColorProperty("font-family"))
	assert.False(t, isColorProperty("padding"))
	assert.False(t, isColorProperty(""))
}
