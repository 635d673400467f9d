package cssvars

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/yacobolo/tokengen"
)

var numberPattern = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:%|deg)?`)

// NormalizeColor reduces a hex, rgb() or hsl() literal to lowercase
// #rrggbb, with an alpha byte appended when the color is translucent.
// Named colors are not recognised.
func NormalizeColor(literal string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(literal))

	if strings.HasPrefix(s, "#") {
		if !isHexColor(s) {
			return "", fmt.Errorf("invalid hex color %q", literal)
		}
		col, err := colorful.Hex(expandShortHex(s))
		if err != nil {
			return "", fmt.Errorf("invalid hex color %q: %w", literal, err)
		}
		return col.Hex(), nil
	}

	open := strings.IndexByte(s, '(')
	if open < 0 {
		return "", fmt.Errorf("unrecognised color %q", literal)
	}
	fn := s[:open]
	nums := numberPattern.FindAllString(s[open:], -1)
	if len(nums) < 3 {
		return "", fmt.Errorf("color %q needs three components", literal)
	}

	var hex string
	switch fn {
	case "rgb", "rgba":
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			v, pct, err := parseComponent(nums[i])
			if err != nil {
				return "", fmt.Errorf("color %q: %w", literal, err)
			}
			if pct {
				v = v * 255 / 100
			}
			ch[i] = uint8(math.Round(clampFloat(v, 0, 255)))
		}
		hex = fmt.Sprintf("#%02x%02x%02x", ch[0], ch[1], ch[2])
	case "hsl", "hsla":
		h, _, err := parseComponent(nums[0])
		if err != nil {
			return "", fmt.Errorf("color %q: %w", literal, err)
		}
		sat, _, err := parseComponent(nums[1])
		if err != nil {
			return "", fmt.Errorf("color %q: %w", literal, err)
		}
		l, _, err := parseComponent(nums[2])
		if err != nil {
			return "", fmt.Errorf("color %q: %w", literal, err)
		}
		hex = tokengen.NewHSL(h, sat, l).Hex()
	default:
		return "", fmt.Errorf("unrecognised color function %q", fn)
	}

	if len(nums) >= 4 {
		a, pct, err := parseComponent(nums[3])
		if err != nil {
			return "", fmt.Errorf("color %q: %w", literal, err)
		}
		if pct {
			a /= 100
		}
		if a < 1 {
			hex += fmt.Sprintf("%02x", uint8(math.Round(clampFloat(a, 0, 1)*255)))
		}
	}
	return hex, nil
}

func parseComponent(s string) (float64, bool, error) {
	pct := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(strings.TrimSuffix(s, "%"), "deg")
	v, err := strconv.ParseFloat(s, 64)
	return v, pct, err
}

func expandShortHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
