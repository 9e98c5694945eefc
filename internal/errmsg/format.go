// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Photo operations
	OpPhotoLoad    Op = "load photos"
	OpPhotoRead    Op = "read photo"
	OpSampleLoad   Op = "load sample photos"
	OpCaptionSave  Op = "save caption"
	OpPhotoRestore Op = "restore previous photos"

	// Folder watching
	OpWatchStart Op = "watch folder"
	OpWatchEvent Op = "handle folder change"

	// Preferences
	OpPrefsOpen  Op = "open preferences"
	OpPrefsReset Op = "reset preferences"
	OpPrefsSave  Op = "save preferences"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
