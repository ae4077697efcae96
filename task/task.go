// Package task defines the task types tracked by the application and
// the single-line text format they are stored in.
//
// The format is a small set of " | "-separated fields:
//
//	T | 0 | read book
//	D | 1 | return book | June 6th
//	E | 0 | project meeting | Aug 6th 2pm | 4pm
//
// The first field is the task type, the second the done flag. Decode
// is the exact inverse of MarshalLine.
package task

import (
	"fmt"
	"strings"
)

// field separator of the line format
const sep = " | "

// Task is a single tracked item
type Task interface {
	// MarshalLine returns the task as one line of text, without a
	// trailing newline
	MarshalLine() string
	Description() string
	IsDone() bool
	MarkDone()
	MarkNotDone()
}

type base struct {
	description string
	done        bool
}

func (b *base) Description() string { return b.description }
func (b *base) IsDone() bool        { return b.done }
func (b *base) MarkDone()           { b.done = true }
func (b *base) MarkNotDone()        { b.done = false }

// checkField rejects values that would break the one-task-per-line format
func checkField(name, v string) error {
	if v == "" {
		return fmt.Errorf("%s is empty", name)
	}
	if strings.Contains(v, "\n") {
		return fmt.Errorf("%s cannot contain newlines", name)
	}
	if strings.Contains(v, "|") {
		return fmt.Errorf("%s cannot contain '|'", name)
	}
	return nil
}

func doneFlag(done bool) string {
	if done {
		return "1"
	}
	return "0"
}

// Todo is a task with nothing but a description
type Todo struct {
	base
}

func NewTodo(description string) (*Todo, error) {
	if err := checkField("description", description); err != nil {
		return nil, err
	}
	return &Todo{base{description: description}}, nil
}

func (t *Todo) MarshalLine() string {
	return strings.Join([]string{"T", doneFlag(t.done), t.description}, sep)
}

// Deadline is a task that must be finished by a given time
type Deadline struct {
	base
	by string
}

func NewDeadline(description, by string) (*Deadline, error) {
	if err := checkField("description", description); err != nil {
		return nil, err
	}
	if err := checkField("by", by); err != nil {
		return nil, err
	}
	return &Deadline{base: base{description: description}, by: by}, nil
}

// By returns when the task is due
func (d *Deadline) By() string { return d.by }

func (d *Deadline) MarshalLine() string {
	return strings.Join([]string{"D", doneFlag(d.done), d.description, d.by}, sep)
}

// Event is a task that happens between two times
type Event struct {
	base
	from string
	to   string
}

func NewEvent(description, from, to string) (*Event, error) {
	if err := checkField("description", description); err != nil {
		return nil, err
	}
	if err := checkField("from", from); err != nil {
		return nil, err
	}
	if err := checkField("to", to); err != nil {
		return nil, err
	}
	return &Event{base: base{description: description}, from: from, to: to}, nil
}

func (e *Event) From() string { return e.from }
func (e *Event) To() string   { return e.to }

func (e *Event) MarshalLine() string {
	return strings.Join([]string{"E", doneFlag(e.done), e.description, e.from, e.to}, sep)
}
