package task

import (
	"fmt"
	"strings"
)

// DecodeError describes a line that could not be parsed into a Task
type DecodeError struct {
	Line   string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode task line %q: %s", e.Line, e.Reason)
}

func decodeErrf(line, format string, args ...any) error {
	return &DecodeError{Line: line, Reason: fmt.Sprintf(format, args...)}
}

// Decode parses one line in the store format back into a Task. It is
// the exact inverse of MarshalLine. Malformed input returns a
// *DecodeError.
func Decode(line string) (Task, error) {
	parts := strings.Split(line, sep)
	if len(parts) < 3 {
		return nil, decodeErrf(line, "want at least 3 fields, got %d", len(parts))
	}

	var done bool
	switch parts[1] {
	case "0":
		// not done
	case "1":
		done = true
	default:
		return nil, decodeErrf(line, "invalid done flag %q", parts[1])
	}

	var t Task
	var err error
	switch parts[0] {
	case "T":
		if len(parts) != 3 {
			return nil, decodeErrf(line, "todo wants 3 fields, got %d", len(parts))
		}
		t, err = NewTodo(parts[2])
	case "D":
		if len(parts) != 4 {
			return nil, decodeErrf(line, "deadline wants 4 fields, got %d", len(parts))
		}
		t, err = NewDeadline(parts[2], parts[3])
	case "E":
		if len(parts) != 5 {
			return nil, decodeErrf(line, "event wants 5 fields, got %d", len(parts))
		}
		t, err = NewEvent(parts[2], parts[3], parts[4])
	default:
		return nil, decodeErrf(line, "unknown task type %q", parts[0])
	}
	if err != nil {
		return nil, &DecodeError{Line: line, Reason: err.Error()}
	}
	if done {
		t.MarkDone()
	}
	return t, nil
}
