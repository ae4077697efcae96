package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalLine(t *testing.T) {
	todo, err := NewTodo("read book")
	require.NoError(t, err)
	assert.Equal(t, "T | 0 | read book", todo.MarshalLine())

	todo.MarkDone()
	assert.Equal(t, "T | 1 | read book", todo.MarshalLine())
	todo.MarkNotDone()
	assert.Equal(t, "T | 0 | read book", todo.MarshalLine())

	d, err := NewDeadline("return book", "June 6th")
	require.NoError(t, err)
	assert.Equal(t, "D | 0 | return book | June 6th", d.MarshalLine())
	assert.Equal(t, "June 6th", d.By())

	e, err := NewEvent("project meeting", "Aug 6th 2pm", "4pm")
	require.NoError(t, err)
	assert.Equal(t, "E | 0 | project meeting | Aug 6th 2pm | 4pm", e.MarshalLine())
	assert.Equal(t, "Aug 6th 2pm", e.From())
	assert.Equal(t, "4pm", e.To())
}

func TestConstructorsValidateFields(t *testing.T) {
	_, err := NewTodo("")
	assert.Error(t, err)
	_, err = NewTodo("line\nbreak")
	assert.Error(t, err)
	_, err = NewTodo("a | b")
	assert.Error(t, err)

	_, err = NewDeadline("desc", "")
	assert.Error(t, err)
	_, err = NewDeadline("desc", "by|when")
	assert.Error(t, err)

	_, err = NewEvent("desc", "from", "")
	assert.Error(t, err)
	_, err = NewEvent("desc", "a\nb", "to")
	assert.Error(t, err)
}

func TestDecodeInvertsMarshalLine(t *testing.T) {
	todo, err := NewTodo("buy milk")
	require.NoError(t, err)
	todo.MarkDone()

	deadline, err := NewDeadline("submit report", "Friday 5pm")
	require.NoError(t, err)

	event, err := NewEvent("standup", "09:00", "09:15")
	require.NoError(t, err)

	for _, want := range []Task{todo, deadline, event} {
		got, err := Decode(want.MarshalLine())
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, want.MarshalLine(), got.MarshalLine())
	}
}

func TestDecodeMalformedLines(t *testing.T) {
	lines := []string{
		"",
		"T",
		"T | 1",
		"T | yes | desc",
		"X | 0 | desc",
		"T | 0 | desc | extra",
		"D | 0 | desc",
		"D | 0 | desc | by | extra",
		"E | 0 | desc | from",
		"E | 1 | desc | from | to | extra",
		"not a task line at all",
		"T | 0 | ",
	}
	for _, line := range lines {
		_, err := Decode(line)
		require.Error(t, err, "line: %q", line)
		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr, "line: %q", line)
		assert.Equal(t, line, decodeErr.Line)
	}
}
