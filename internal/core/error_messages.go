package core

// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support
// reference. Error codes are grouped by category:
//
//	SCH001  - Missing column: Required column is missing from the table
//	          Patterns: "missing required columns"
//	SCH002  - No header: The table has no usable header row
//	          Patterns: "no header row", "table is empty"
//	FOOD001 - Not found: No food matches the selected code
//	          Patterns: "food not found"
//	QTY001  - Invalid quantity: Quantity must be at least 1 gram
//	          Patterns: "invalid quantity"
//	QTY002  - Quantity too large: Scaled values would overflow
//	FILE001 - Unsupported file: Only .xlsx and .csv tables are supported
//	          Patterns: "unsupported table source"
//	FILE002 - Sheet missing: The configured sheet does not exist
//	          Patterns: "sheet not found"
//	FILE003 - Unreadable file: The table file could not be opened
//	          Patterns: "no such file", "open table"
//	SRC001  - Database source: The table could not be read from the database
//	          Patterns: "query table"
//	ERR000  - Unknown error: An unexpected error occurred
//
// Typed errors (*SchemaError, *NotFoundError, the sentinels, fs.ErrNotExist)
// are matched first with errors.As and errors.Is, since their text carries
// user input such as file paths and food codes. Other errors fall back to
// case-insensitive strings.Contains matching. The first matching pattern
// wins, so more specific patterns come first.

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// UserMessage is an error rendered for display.
type UserMessage struct {
	Message string
	Action  string
	Code    string
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var (
	missingColumnsMessage = UserMessage{
		Message: "Table file must contain the required columns",
		Action:  "Add the missing columns to the table and restart",
		Code:    "SCH001",
	}
	noHeaderMessage = UserMessage{
		Message: "Table has no header row",
		Action:  "Make sure the first rows of the sheet contain the column headers",
		Code:    "SCH002",
	}
	notFoundMessage = UserMessage{
		Message: "No matching food was found",
		Action:  "Select a food item from the list",
		Code:    "FOOD001",
	}
	invalidQuantityMessage = UserMessage{
		Message: "Quantity must be at least 1 gram",
		Action:  "Enter a whole or decimal number of grams, 1 or more",
		Code:    "QTY001",
	}
	quantityTooLargeMessage = UserMessage{
		Message: "Quantity is too large to calculate",
		Action:  "Enter a smaller number of grams",
		Code:    "QTY002",
	}
	unsupportedSourceMessage = UserMessage{
		Message: "Unsupported table source",
		Action:  "Use an .xlsx or .csv file, or a postgres:// URL",
		Code:    "FILE001",
	}
	missingFileMessage = UserMessage{
		Message: "The table file could not be opened",
		Action:  "Check that TABLE_SOURCE points to an existing file",
		Code:    "FILE003",
	}
)

var errorPatterns = []errorPattern{
	// Schema errors are fatal at startup.
	{pattern: "missing required columns", msg: missingColumnsMessage},
	{pattern: "no header row", msg: noHeaderMessage},
	{pattern: "table is empty", msg: noHeaderMessage},

	// Lookup and input errors are recoverable warnings.
	{pattern: "food not found", msg: notFoundMessage},
	{pattern: "quantity too large", msg: quantityTooLargeMessage},
	{pattern: "invalid quantity", msg: invalidQuantityMessage},

	// File and source errors.
	{pattern: "unsupported table source", msg: unsupportedSourceMessage},
	{
		pattern: "sheet not found",
		msg: UserMessage{
			Message: "The configured sheet does not exist in the workbook",
			Action:  "Check TABLE_SHEET or leave it empty to use the first sheet",
			Code:    "FILE002",
		},
	},
	{pattern: "no such file", msg: missingFileMessage},
	{
		pattern: "open table",
		msg: UserMessage{
			Message: "The table file could not be opened",
			Action:  "Check that TABLE_SOURCE points to a readable file",
			Code:    "FILE003",
		},
	},
	{
		pattern: "query table",
		msg: UserMessage{
			Message: "The table could not be read from the database",
			Action:  "Check DATABASE_URL and TABLE_NAME",
			Code:    "SRC001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If no pattern matches, a generic fallback with code ERR000 is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	if msg, ok := mapTypedError(err); ok {
		return msg
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// mapTypedError matches errors by identity rather than by message text.
func mapTypedError(err error) (UserMessage, bool) {
	var se *SchemaError
	switch {
	case errors.As(err, &se):
		if len(se.Missing) > 0 {
			return missingColumnsMessage, true
		}
		return noHeaderMessage, true
	case errors.Is(err, ErrNotFound):
		return notFoundMessage, true
	case errors.Is(err, ErrQuantityTooLarge):
		return quantityTooLargeMessage, true
	case errors.Is(err, ErrInvalidQuantity):
		return invalidQuantityMessage, true
	case errors.Is(err, ErrUnsupportedSource):
		return unsupportedSourceMessage, true
	case errors.Is(err, fs.ErrNotExist):
		return missingFileMessage, true
	}
	return UserMessage{}, false
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern rather than the
// ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
