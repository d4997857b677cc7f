package fault

import "fmt"

// NumberInputTypeMismatch is raised when lumen.NumberInput receives numeric
// arguments of mixed types. A nil argument means "not provided"; a provided
// zero is still reported with its type. The recorded args carry the type name
// of each argument ("" when not provided).
func NumberInputTypeMismatch(value, minValue, maxValue, step any) *Error {
	message := "All numerical arguments must be of the same type."
	args := map[string]any{
		"value_type":     "",
		"min_value_type": "",
		"max_value_type": "",
		"step_type":      "",
	}
	appendType := func(name, key string, v any) {
		if v == nil {
			return
		}
		typeName := fmt.Sprintf("%T", v)
		args[key] = typeName
		message += fmt.Sprintf("\n`%s` has %s type.", name, typeName)
	}
	appendType("value", "value_type", value)
	appendType("min_value", "min_value_type", minValue)
	appendType("max_value", "max_value_type", maxValue)
	appendType("step", "step_type", step)
	return newLocalized(KindNumberInputTypeMismatch, message, args)
}

// ValueOutOfBounds is raised when a widget value falls outside its declared
// [minValue, maxValue] range. Callers check the bounds first; the constructor
// only picks which side was violated. Values below minValue produce
// KindValueBelowMin, everything else KindValueAboveMax.
func ValueOutOfBounds(value, minValue, maxValue float64) *Error {
	if value < minValue {
		return newLocalized(
			KindValueBelowMin,
			"The `value` {{.value}} is less than the `min_value` {{.min_value}}.",
			map[string]any{"value": value, "min_value": minValue},
		)
	}
	return newLocalized(
		KindValueAboveMax,
		"The `value` {{.value}} is greater than the `max_value` {{.max_value}}.",
		map[string]any{"value": value, "max_value": maxValue},
	)
}

// JSNumberBounds is raised when a number cannot be represented exactly by the
// browser frontend.
func JSNumberBounds(value float64) *Error {
	return newLocalized(
		KindJSNumberBounds,
		"The value {{.value}} is outside the range of numbers the browser can represent exactly (-(2^53 - 1) to 2^53 - 1).",
		map[string]any{"value": value},
	)
}

// NumberInputInvalidFormat is raised when the printf-style format string
// passed to lumen.NumberInput contains invalid characters.
func NumberInputInvalidFormat(format string) *Error {
	return newLocalized(
		KindNumberInputInvalidFormat,
		"Format string for `lumen.NumberInput` contains invalid characters: {{.format}}",
		map[string]any{"format": format},
	)
}
