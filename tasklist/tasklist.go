// Package tasklist provides an ordered, mutable collection of tasks
// and the glue that fills it from a store.
package tasklist

import (
	"errors"

	"github.com/snowstopxt/taskstore/store"
	"github.com/snowstopxt/taskstore/task"
)

// ErrIndexOutOfRange is returned by Get and Remove for positions
// outside the list
var ErrIndexOutOfRange = errors.New("task index out of range")

// List keeps tasks in insertion order. The zero value is an empty
// list ready to use.
type List struct {
	tasks []task.Task
}

// Add appends t at the end of the list
func (l *List) Add(t task.Task) {
	l.tasks = append(l.tasks, t)
}

func (l *List) Len() int {
	return len(l.tasks)
}

func (l *List) Get(i int) (task.Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return nil, ErrIndexOutOfRange
	}
	return l.tasks[i], nil
}

// Remove deletes the task at position i and returns it. Relative
// order of the remaining tasks is preserved.
func (l *List) Remove(i int) (task.Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return nil, ErrIndexOutOfRange
	}
	t := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return t, nil
}

// Tasks returns a copy of the tasks, in order
func (l *List) Tasks() []task.Task {
	return append([]task.Task{}, l.tasks...)
}

// LoadFrom appends every task stored in s to the list, in file order.
// Lines that cannot be decoded are skipped and counted in the returned
// int; one bad line never aborts the load. If the store file cannot be
// read at all the list is left exactly as it was.
func (l *List) LoadFrom(s *store.Store) (int, error) {
	var loaded []task.Task
	skipped, err := s.LoadAll(func(line string) error {
		t, errDecode := task.Decode(line)
		if errDecode != nil {
			return errDecode
		}
		loaded = append(loaded, t)
		return nil
	})
	if err != nil {
		return skipped, err
	}
	l.tasks = append(l.tasks, loaded...)
	return skipped, nil
}
