package pages

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Color is a colour selectable on the demo page, identified by its URL token.
type Color string

const (
	ColorRed   Color = "red"
	ColorGreen Color = "green"
	ColorBlue  Color = "blue"
)

// Colors lists the selectable colours in the order the buttons appear.
var Colors = []Color{ColorRed, ColorGreen, ColorBlue}

var colorLabels = map[Color]string{
	ColorRed:   "赤",
	ColorGreen: "緑",
	ColorBlue:  "青",
}

var colorsByLabel = lo.Invert(colorLabels)

var ErrInvalidColor = errors.New("invalid color")

// InvalidColorError is returned when a colour outside of Colors is requested.
type InvalidColorError struct {
	Value string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color: %s. Must be one of: %s", e.Value, strings.Join(colorChoices(), ", "))
}

func (e *InvalidColorError) Unwrap() error {
	return ErrInvalidColor
}

// ParseColor accepts the URL token ("red") or the button label ("赤").
func ParseColor(s string) (Color, error) {
	if c := Color(s); c.Valid() {
		return c, nil
	}
	if c, ok := colorsByLabel[s]; ok {
		return c, nil
	}
	return "", &InvalidColorError{Value: s}
}

func (c Color) Valid() bool {
	_, ok := colorLabels[c]
	return ok
}

// Label is the text of the colour button.
func (c Color) Label() string {
	return colorLabels[c]
}

// Token is the value of the color query parameter.
func (c Color) Token() string {
	return string(c)
}

func (c Color) String() string {
	return string(c)
}

// colorChoices lists every colour as "token (label)", both forms are accepted.
func colorChoices() []string {
	return lo.Map(Colors, func(c Color, _ int) string {
		return fmt.Sprintf("%s (%s)", c.Token(), c.Label())
	})
}
