package config

import "fmt"

// Diagnostic message constructors. Consumers key off the error type and the
// named values, not exact wording, but the wording is kept stable anyway.

func messageWrongTypeBoolean(name string, actual Kind) string {
	return fmt.Sprintf("config option %q should be a boolean, got %s; converting to boolean", name, actual)
}

func messageWrongType(name string, expected, actual Kind) string {
	return fmt.Sprintf("config option %q should be of type %s, got %s; using default value", name, expected, actual)
}

func messageBelowMinimum(name string, value any, minimum int) string {
	return fmt.Sprintf("config option %q was set to %v, changing to minimum value %d", name, value, minimum)
}

func messageUnknownOption(name string) string {
	return fmt.Sprintf("ignoring unknown config option %q", name)
}

func messageDeprecated(oldName, newName string) string {
	if newName == "" {
		return fmt.Sprintf("config option %q is deprecated", oldName)
	}
	return fmt.Sprintf("config option %q is deprecated, please use %q", oldName, newName)
}

func messageInvalidTagValue(path string) string {
	return fmt.Sprintf("config option %q must only contain letters, numbers, '.', '_' or '-'", path)
}

func messageTagValueTooLong(path string) string {
	return fmt.Sprintf("value of %q was longer than %d characters and was discarded", path, maxTagValueLength)
}
