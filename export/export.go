// Package export renders a task list to a human-readable report.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/pretty"

	"github.com/snowstopxt/taskstore/atomicfile"
	"github.com/snowstopxt/taskstore/task"
)

// exportedTask is the JSON shape of a single task
type exportedTask struct {
	Type        string `json:"type"`
	Done        bool   `json:"done"`
	Description string `json:"description"`
	By          string `json:"by,omitempty"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
}

func toExported(t task.Task) (exportedTask, error) {
	e := exportedTask{
		Done:        t.IsDone(),
		Description: t.Description(),
	}
	switch t := t.(type) {
	case *task.Todo:
		e.Type = "todo"
	case *task.Deadline:
		e.Type = "deadline"
		e.By = t.By()
	case *task.Event:
		e.Type = "event"
		e.From = t.From()
		e.To = t.To()
	default:
		return e, fmt.Errorf("cannot export task of type %T", t)
	}
	return e, nil
}

// JSON renders tasks as a pretty-printed JSON array, in order
func JSON(tasks []task.Task) ([]byte, error) {
	out := make([]exportedTask, 0, len(tasks))
	for _, t := range tasks {
		e, err := toExported(t)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	d, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(d), nil
}

// WriteJSON writes the JSON export of tasks to path atomically
func WriteJSON(path string, tasks []task.Task) error {
	d, err := JSON(tasks)
	if err != nil {
		return err
	}
	f, err := atomicfile.New(path)
	if err != nil {
		return err
	}
	defer f.Cancel()

	if _, err := f.Write(d); err != nil {
		return err
	}
	return f.Close()
}
