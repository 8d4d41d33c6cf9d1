package queue

import "fmt"

// Stack holds the tasks pending to grow a tree. Tasks
// are pulled in the reverse order they were pushed.
type Stack struct {
	tasks []*Task
}

// New returns a stack holding the given tasks, the
// last one being the first to be pulled.
func New(tasks ...*Task) *Stack {
	return &Stack{tasks: append([]*Task(nil), tasks...)}
}

// Push takes a task and stores it on top of the stack.
func (s *Stack) Push(t *Task) {
	s.tasks = append(s.tasks, t)
}

// Pop removes the task on top of the stack and returns
// it, or returns nil if there are no pending tasks.
func (s *Stack) Pop() *Task {
	if len(s.tasks) == 0 {
		return nil
	}
	last := len(s.tasks) - 1
	t := s.tasks[last]
	s.tasks[last] = nil
	s.tasks = s.tasks[:last]
	return t
}

// Len returns the number of pending tasks.
func (s *Stack) Len() int {
	return len(s.tasks)
}

func (s *Stack) String() string {
	return fmt.Sprintf("{Stack pending: %d %v}", len(s.tasks), s.tasks)
}
