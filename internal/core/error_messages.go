// Package core provides the business logic for order cleaning runs.
//
// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support reference.
// When users encounter errors, they can quote the error code to support staff
// for faster diagnosis.
//
// Error codes are grouped by category:
//
// # File Errors (FILE001-FILE099)
//
// Errors related to the input file:
//
//	FILE001 - File too large: File exceeds the maximum upload size
//	          Action: Split the file into smaller chunks
//	          Patterns: "file too large", "request body too large"
//
//	FILE002 - Invalid CSV: File is not a valid CSV
//	          Action: Ensure file is comma-separated with one header row
//	          Patterns: "invalid csv"
//
//	FILE003 - Source missing: Input file was not found
//	          Action: Check the input path or generate a dataset first
//	          Patterns: "source file not found"
//
//	FILE004 - No file: No file was provided
//	          Action: Please select a CSV file to clean
//	          Patterns: "no file provided"
//
//	FILE005 - Empty file: The file is empty
//	          Action: Please provide a CSV file with a header row
//	          Patterns: "empty file"
//
// # Run Errors (RUN001-RUN099)
//
// Errors related to run lookup and scheduling:
//
//	RUN001 - Run not found: The run does not exist or has expired
//	         Action: Start a new cleaning run
//	         Patterns: "run not found"
//
//	RUN002 - System busy: Too many runs in progress
//	         Action: Please wait a moment and try again
//	         Patterns: "too many concurrent runs"
//
//	RUN003 - Request cancelled: Request was cancelled
//	         Action: Please try again
//	         Patterns: "context canceled"
//
//	RUN004 - Request timeout: Request timed out
//	         Action: Try a smaller file or check your connection
//	         Patterns: "context deadline exceeded"
//
//	RUN005 - History unavailable: No database is configured
//	         Action: Set DATABASE_URL to keep run history
//	         Patterns: "run store not configured"
//
// # Database Errors (DB001-DB099)
//
// Errors raised while persisting runs:
//
//	DB001 - Connection refused: Unable to connect to database
//	        Action: Please try again in a few moments
//	        Patterns: "connection refused"
//
//	DB002 - Connection reset: Database connection was interrupted
//	        Action: Please try again
//	        Patterns: "connection reset"
//
//	DB003 - Timeout: Operation timed out
//	        Action: Please try again later
//	        Patterns: "timeout"
//
//	DB004 - Duplicate run: A run with this ID already exists
//	        Action: Please try again
//	        Patterns: "duplicate key"
//
// # Default Error (ERR000)
//
// Fallback when no specific pattern matches:
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Please try again or contact support
//
// # Pattern Matching
//
// Known sentinel errors (orders.ErrInvalidCSV, ErrRunNotFound, context
// errors and so on) are matched first with errors.Is. Anything else is
// matched against error patterns case-insensitively using strings.Contains.
// The first matching pattern wins, so more specific patterns should be
// defined before general ones.
package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JonMunkholm/OrderClean/internal/orders"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// Patterns are matched using strings.Contains, so partial matches work.
// The first matching pattern wins, so order matters:
//   - More specific patterns should come before general ones
//   - Multiple patterns can map to the same error code
//
// To add a new error pattern:
//  1. Choose the appropriate category and code range
//  2. Add the pattern in the correct position (specific before general)
//  3. Update the package documentation at the top of this file
var errorPatterns = []errorPattern{
	// =========================================================================
	// File Errors (FILE001-FILE005)
	// =========================================================================
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds the maximum upload size",
			Action:  "Split the file into smaller chunks",
			Code:    "FILE001",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "File exceeds the maximum upload size",
			Action:  "Split the file into smaller chunks",
			Code:    "FILE001",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "File is not a valid CSV",
			Action:  "Ensure file is comma-separated with one header row",
			Code:    "FILE002",
		},
	},
	{
		pattern: "source file not found",
		msg: UserMessage{
			Message: "Input file was not found",
			Action:  "Check the input path or generate a dataset first",
			Code:    "FILE003",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was provided",
			Action:  "Please select a CSV file to clean",
			Code:    "FILE004",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The file is empty",
			Action:  "Please provide a CSV file with a header row",
			Code:    "FILE005",
		},
	},

	// =========================================================================
	// Run Errors (RUN001-RUN005)
	// Context errors must precede the generic "timeout" database pattern.
	// =========================================================================
	{
		pattern: "run not found",
		msg: UserMessage{
			Message: "The run does not exist or has expired",
			Action:  "Start a new cleaning run",
			Code:    "RUN001",
		},
	},
	{
		pattern: "too many concurrent runs",
		msg: UserMessage{
			Message: "Too many runs in progress",
			Action:  "Please wait a moment and try again",
			Code:    "RUN002",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "RUN003",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try a smaller file or check your connection",
			Code:    "RUN004",
		},
	},
	{
		pattern: "run store not configured",
		msg: UserMessage{
			Message: "Run history is not available",
			Action:  "Set DATABASE_URL to keep run history",
			Code:    "RUN005",
		},
	},

	// =========================================================================
	// Database Errors (DB001-DB004)
	// =========================================================================
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB001",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB002",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Please try again later",
			Code:    "DB003",
		},
	},
	{
		pattern: "duplicate key",
		msg: UserMessage{
			Message: "A run with this ID already exists",
			Action:  "Please try again",
			Code:    "DB004",
		},
	},
}

// errorSentinels maps sentinel errors to the code of their pattern entry.
// They are checked with errors.Is before any pattern.
var errorSentinels = []struct {
	err  error
	code string
}{
	{orders.ErrInvalidCSV, "FILE002"},
	{orders.ErrSourceNotFound, "FILE003"},
	{orders.ErrEmptyFile, "FILE005"},
	{ErrRunNotFound, "RUN001"},
	{ErrTooManyRuns, "RUN002"},
	{context.Canceled, "RUN003"},
	{context.DeadlineExceeded, "RUN004"},
	{ErrNoStore, "RUN005"},
}

// messageForCode returns the pattern entry message carrying code.
func messageForCode(code string) UserMessage {
	for _, ep := range errorPatterns {
		if ep.msg.Code == code {
			return ep.msg
		}
	}
	return defaultMessage
}

// defaultMessage is returned when no pattern matches (ERR000).
// This is the fallback for unexpected errors. Support staff should check
// application logs for the original technical error when users report ERR000.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Sentinel errors in the chain win; otherwise it searches through known
// error patterns (case-insensitive) and returns the first match. If no pattern matches, a generic fallback message with
// code ERR000 is returned.
//
// Example:
//
//	err := fmt.Errorf("load input: %w", orders.ErrEmptyFile)
//	msg := MapError(err)
//	// msg.Code == "FILE005"
//	// msg.Message == "The file is empty"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, se := range errorSentinels {
		if errors.Is(err, se.err) {
			return messageForCode(se.code)
		}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
//
// Example output: "The file is empty (Code: FILE005). Please provide a CSV file with a header row"
//
// This is the primary function for displaying errors to end users.
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing checks if an error matches a known pattern and should be shown to users.
// Returns true if the error matches a specific pattern (not the generic ERR000 fallback).
// Use this to decide whether to show the raw error or the mapped user message.
//
// Example:
//
//	if IsUserFacing(err) {
//	    showToUser(FormatUserError(err))
//	} else {
//	    log.Error(err) // Log technical error
//	    showToUser("An error occurred. Please try again.")
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	msg := MapError(err)
	return msg.Code != defaultMessage.Code
}

// UserError wraps a technical error with a user-friendly message.
// The original error is preserved for logging while providing a clean message for users.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError creates a UserError by mapping a technical error to a user-friendly message.
// The returned UserError preserves the original technical error for logging via Unwrap(),
// while providing a clean user message via Error().
//
// Returns nil if err is nil.
//
// Example:
//
//	ue := NewUserError(err)
//	log.Error(ue.Technical)   // Log original error
//	fmt.Println(ue.Error())   // Show "Input file was not found"
//	fmt.Println(ue.User.Code) // Show "FILE003"
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
