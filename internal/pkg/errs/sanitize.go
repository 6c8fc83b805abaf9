package errs

import (
	"fmt"
	"strings"
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// sanitize renders v on a single line so it can be embedded in an error message.
func sanitize(v any) string {
	return lineBreaks.Replace(fmt.Sprint(v))
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}
