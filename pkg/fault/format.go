package fault

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// UserString returns the display message for an error.
// For taxonomy errors this is the rendered (possibly translated) message;
// other errors fall back to their standard message.
func UserString(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		if msg := e.Error(); msg != "" {
			return msg
		}
		return string(e.kind)
	}
	return err.Error()
}

// IsFault checks if the given error belongs to the taxonomy.
func IsFault(err error) bool {
	if err == nil {
		return false
	}
	var e *Error
	return errors.As(err, &e)
}

// KindOf returns the kind of a taxonomy error, or "" for any other error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return ""
}

// IsKind reports whether err is a taxonomy error of exactly the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// DebugString returns a stable, reproducible representation of an error chain
// with kinds, capabilities, and substitution arguments. Suitable for logging
// and comparison.
func DebugString(err error) string {
	if err == nil {
		return ""
	}
	chain := flattenChain(err)
	var b strings.Builder
	for i, item := range chain {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch typed := item.(type) {
		case *Error:
			b.WriteString(fmt.Sprintf("%d: %T: %s", i+1, typed, typed.Error()))
			if typed.kind != "" {
				b.WriteString(fmt.Sprintf(" | kind=%s", typed.kind))
			}
			b.WriteString(fmt.Sprintf(" | caps=%s", typed.caps))
			if len(typed.args) > 0 {
				b.WriteString(" | args={")
				b.WriteString(formatArgs(typed.args))
				b.WriteByte('}')
			}
		default:
			b.WriteString(fmt.Sprintf("%d: %T: %s", i+1, item, item.Error()))
		}
	}
	return b.String()
}

func flattenChain(err error) []error {
	var out []error
	queue := []error{err}
	const maxEntries = 64
	for len(queue) > 0 && len(out) < maxEntries {
		current := queue[0]
		queue = queue[1:]
		if current == nil {
			continue
		}
		out = append(out, current)
		queue = append(queue, unwrapAll(current)...)
	}
	return out
}

func unwrapAll(err error) []error {
	switch unwrapped := err.(type) {
	case interface{ Unwrap() []error }:
		return unwrapped.Unwrap()
	case interface{ Unwrap() error }:
		if next := unwrapped.Unwrap(); next != nil {
			return []error{next}
		}
	}
	return nil
}

func formatArgs(args map[string]any) string {
	keys := make([]string, 0, len(args))
	for key := range args {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, args[key]))
	}
	return strings.Join(parts, ", ")
}
