package report

import "fmt"

// ConfigError reports invalid form composition: an unknown band key, a
// missing band required by an operation, or a recursive band reference.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "report: " + e.Msg
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}
