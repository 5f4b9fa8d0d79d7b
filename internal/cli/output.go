package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	applicationservice "github.com/thenoetrevino/jobtrack/internal/services/application"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return f.SuccessWith("data", data)
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// SuccessWith writes {"success": true, key: data} to stdout
func (f *OutputFormatter) SuccessWith(key string, data interface{}) error {
	return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
		"success": true,
		key:       data,
	})
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err with a code derived from its category and returns it
// marked as reported, so main only has to pick the exit code.
func (f *OutputFormatter) Fail(err error, suggestion string) error {
	code := "ERROR"
	switch {
	case errors.Is(err, ErrUsage):
		code = "USAGE_ERROR"
	case errors.Is(err, applicationservice.ErrNotFound):
		code = "NOT_FOUND"
	case errors.Is(err, applicationservice.ErrValidation):
		code = "VALIDATION_ERROR"
	case errors.Is(err, applicationservice.ErrStorage):
		code = "STORAGE_ERROR"
	}

	// Writing to stdout/stderr only fails when they are closed; nothing to do then
	_ = f.ErrorWithSuggestion(code, err.Error(), suggestion)
	return &reportedError{err: err}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	if s, ok := data.(fmt.Stringer); ok {
		fmt.Println(s.String())
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}
