// Package validation provides checks for the values expressor hands to
// external processes and the filesystem: command names, their arguments,
// file extensions and configured directories.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

// dangerousChars are shell metacharacters. Commands never go through a
// shell, but a configured value containing one is almost certainly a mistake
// or an injection attempt.
var dangerousChars = []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}

// ValidateArgument validates a command line argument to prevent injection attacks
func ValidateArgument(arg string) error {
	if strings.ContainsRune(arg, 0) {
		return fmt.Errorf("contains null byte")
	}

	for _, char := range dangerousChars {
		if strings.Contains(arg, char) {
			return fmt.Errorf("contains dangerous character: %s", char)
		}
	}

	if strings.ContainsAny(arg, "\n\r") {
		return fmt.Errorf("contains line break")
	}

	return nil
}

// ValidateCommand validates an executable name. When allowedCommands is
// non-nil the base name must also appear in it.
func ValidateCommand(command string, allowedCommands map[string]bool) error {
	if strings.TrimSpace(command) == "" {
		return fmt.Errorf("command cannot be empty")
	}

	if strings.ContainsAny(command, " \t") {
		return fmt.Errorf("command '%s' must be a single executable name", command)
	}

	if err := ValidateArgument(command); err != nil {
		return fmt.Errorf("invalid command '%s': %w", command, err)
	}

	if allowedCommands != nil && !allowedCommands[filepath.Base(command)] {
		return fmt.Errorf("command '%s' is not allowed", command)
	}

	return nil
}

// ValidateExtension checks a file extension of the form ".ext".
func ValidateExtension(ext string) error {
	if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
		return fmt.Errorf("extension %q must start with '.' and name a suffix", ext)
	}

	if strings.ContainsAny(ext, `/\ `) || strings.Count(ext, ".") != 1 {
		return fmt.Errorf("extension %q contains invalid characters", ext)
	}

	return nil
}

// ValidatePath validates a directory or file path taken from configuration
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("path contains null byte")
	}

	for _, char := range []string{";", "&", "|", "$", "`", "<", ">"} {
		if strings.Contains(path, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}

// ValidateIdentifier checks that s can stand in for a name in generated
// source: letters, digits and underscores, not starting with a digit.
func ValidateIdentifier(s string) error {
	if s == "" {
		return fmt.Errorf("identifier cannot be empty")
	}

	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return fmt.Errorf("identifier %q contains invalid character %q", s, r)
		}
	}

	return nil
}
