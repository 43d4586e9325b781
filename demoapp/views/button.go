package views

import "strings"

type ButtonVariant string

const (
	ButtonVariantPrimary ButtonVariant = ""
	ButtonVariantMuted   ButtonVariant = "muted"
	ButtonVariantColor   ButtonVariant = "color"
	ButtonVariantTab     ButtonVariant = "tab"
)

type ButtonProps struct {
	Variant ButtonVariant
	// Hue is the Tailwind colour name used by ButtonVariantColor (e.g. "red").
	Hue    string
	Active bool
	Class  string
}

func buttonClasses(props ButtonProps) string {
	var classes []string

	switch props.Variant {
	case ButtonVariantMuted:
		classes = append(classes, "px-6 py-2 bg-gray-400 text-white rounded-lg hover:bg-gray-500 transition-colors")
	case ButtonVariantColor:
		classes = append(classes, "px-6 py-3 rounded-lg font-semibold transition-all")
		classes = append(classes, colorButtonState(props.Hue, props.Active))
	case ButtonVariantTab:
		classes = append(classes, "px-4 py-2 font-semibold transition-colors")
		classes = append(classes, tabButtonState(props.Active))
	default:
		classes = append(classes, "px-6 py-2 bg-purple-600 text-white rounded-lg hover:bg-purple-700 transition-colors")
	}

	if props.Class != "" {
		classes = append(classes, props.Class)
	}

	return strings.Join(classes, " ")
}

// colorButtonState returns the classes toggled when a colour becomes (in)active.
// demo.js swaps the same strings on client-side navigation.
func colorButtonState(hue string, active bool) string {
	if active {
		return "bg-" + hue + "-500 text-white scale-105 shadow-lg"
	}
	return "bg-" + hue + "-200 text-" + hue + "-800 hover:bg-" + hue + "-300"
}

func tabButtonState(active bool) string {
	if active {
		return "border-b-2 border-purple-600 text-purple-600"
	}
	return "text-gray-500 hover:text-gray-700"
}
