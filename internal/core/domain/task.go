package domain

// Task is one stage of the build pipeline.
// Version is folded into the cache entries the stage writes.
type Task struct {
	Name         InternedString
	Version      int
	Dependencies []InternedString
}

// NewTask creates a Task depending on the named stages.
func NewTask(name string, version int, deps ...string) *Task {
	t := &Task{Name: NewInternedString(name), Version: version}
	for _, d := range deps {
		t.Dependencies = append(t.Dependencies, NewInternedString(d))
	}
	return t
}
