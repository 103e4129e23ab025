package scene

import (
	"strconv"
	"strings"

	"github.com/matzehuels/svgscene/pkg/errors"
	"github.com/matzehuels/svgscene/pkg/svg"
)

// ParseColor converts a color string into an svg.Color.
//
//   - "" returns nil (attribute left unset)
//   - "none" returns svg.NoneColor
//   - "rgb(r,g,b)" returns svg.Rgb; channels must be 0-255
//   - "rgba(r,g,b,a)" returns svg.Rgba; opacity must be in [0, 1]
//   - anything else is passed through as svg.NamedColor
func ParseColor(s string) (svg.Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil, nil
	case s == "none":
		return svg.NoneColor, nil
	case strings.HasPrefix(s, "rgba("):
		args, err := colorArgs(s, "rgba(", 4)
		if err != nil {
			return nil, err
		}
		r, g, b, err := parseChannels(s, args[:3])
		if err != nil {
			return nil, err
		}
		opacity, err := strconv.ParseFloat(args[3], 64)
		if err != nil || opacity < 0 || opacity > 1 {
			return nil, errors.New(errors.ErrCodeInvalidColor, "invalid opacity %q in %q (must be 0-1)", args[3], s)
		}
		return svg.NewRgba(r, g, b, opacity), nil
	case strings.HasPrefix(s, "rgb("):
		args, err := colorArgs(s, "rgb(", 3)
		if err != nil {
			return nil, err
		}
		r, g, b, err := parseChannels(s, args)
		if err != nil {
			return nil, err
		}
		return svg.NewRgb(r, g, b), nil
	default:
		if strings.ContainsAny(s, `"<>&`) {
			return nil, errors.New(errors.ErrCodeInvalidColor, "invalid color name %q", s)
		}
		return svg.NamedColor(s), nil
	}
}

func colorArgs(s, prefix string, n int) ([]string, error) {
	if !strings.HasSuffix(s, ")") {
		return nil, errors.New(errors.ErrCodeInvalidColor, "unterminated color %q", s)
	}
	args := strings.Split(strings.TrimSuffix(strings.TrimPrefix(s, prefix), ")"), ",")
	if len(args) != n {
		return nil, errors.New(errors.ErrCodeInvalidColor, "color %q needs %d components, got %d", s, n, len(args))
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, nil
}

func parseChannels(s string, args []string) (r, g, b uint8, err error) {
	var ch [3]uint8
	for i, a := range args {
		v, perr := strconv.ParseUint(a, 10, 8)
		if perr != nil {
			return 0, 0, 0, errors.New(errors.ErrCodeInvalidColor, "invalid channel %q in %q (must be 0-255)", a, s)
		}
		ch[i] = uint8(v)
	}
	return ch[0], ch[1], ch[2], nil
}
