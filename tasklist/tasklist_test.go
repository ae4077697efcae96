package tasklist

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowstopxt/taskstore/store"
	"github.com/snowstopxt/taskstore/task"
)

// rawLine lets tests put arbitrary lines into a store
type rawLine string

func (l rawLine) MarshalLine() string { return string(l) }

func mustTodo(t *testing.T, description string) *task.Todo {
	t.Helper()
	todo, err := task.NewTodo(description)
	require.NoError(t, err)
	return todo
}

func TestAddGetRemove(t *testing.T) {
	var l List
	assert.Zero(t, l.Len())

	a := mustTodo(t, "a")
	b := mustTodo(t, "b")
	c := mustTodo(t, "c")
	l.Add(a)
	l.Add(b)
	l.Add(c)
	require.Equal(t, 3, l.Len())

	got, err := l.Get(1)
	require.NoError(t, err)
	assert.Same(t, b, got)

	removed, err := l.Remove(1)
	require.NoError(t, err)
	assert.Same(t, b, removed)

	// order of the remaining tasks is preserved
	assert.Equal(t, []task.Task{a, c}, l.Tasks())
}

func TestIndexOutOfRange(t *testing.T) {
	var l List
	l.Add(mustTodo(t, "only"))

	_, err := l.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = l.Get(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = l.Remove(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 1, l.Len())
}

func TestTasksReturnsCopy(t *testing.T) {
	var l List
	l.Add(mustTodo(t, "a"))
	l.Add(mustTodo(t, "b"))

	tasks := l.Tasks()
	tasks[0] = nil
	got, err := l.Get(0)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestLoadFromRoundTrip(t *testing.T) {
	s := &store.Store{DataDir: t.TempDir()}
	require.NoError(t, store.Open(s))

	todo := mustTodo(t, "buy milk")
	todo.MarkDone()
	deadline, err := task.NewDeadline("submit report", "Friday")
	require.NoError(t, err)
	require.NoError(t, s.Append(todo))
	require.NoError(t, s.Append(deadline))

	var l List
	skipped, err := l.LoadFrom(s)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Equal(t, 2, l.Len())

	got := l.Tasks()
	assert.Equal(t, todo.MarshalLine(), got[0].MarshalLine())
	assert.Equal(t, deadline.MarshalLine(), got[1].MarshalLine())
}

func TestLoadFromSkipsCorruptLines(t *testing.T) {
	s := &store.Store{DataDir: t.TempDir()}
	require.NoError(t, store.Open(s))

	require.NoError(t, s.Append(rawLine("T | 0 | valid one")))
	require.NoError(t, s.Append(rawLine("garbage that is not a task")))
	require.NoError(t, s.Append(rawLine("D | 1 | valid two | tomorrow")))

	var l List
	skipped, err := l.LoadFrom(s)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Equal(t, 2, l.Len())

	got := l.Tasks()
	assert.Equal(t, "valid one", got[0].Description())
	assert.Equal(t, "valid two", got[1].Description())
}

func TestLoadFromUnreadableStoreLeavesListAsIs(t *testing.T) {
	s := &store.Store{DataDir: t.TempDir()}
	require.NoError(t, store.Open(s))
	require.NoError(t, os.Remove(s.Path()))

	var l List
	l.Add(mustTodo(t, "already here"))

	_, err := l.LoadFrom(s)
	require.Error(t, err)
	require.Equal(t, 1, l.Len())
	got, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "already here", got.Description())
}
