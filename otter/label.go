package otter

import "fmt"

// maxLabelBytes bounds a task label the way original_source's
// `otterTaskRegisterLabel_v` bounds its vsnprintf buffer: 256 bytes,
// truncating anything longer rather than erroring.
const maxLabelBytes = 256

func truncateLabel(label string) string {
	if len(label) > maxLabelBytes {
		return label[:maxLabelBytes]
	}
	return label
}

func formatLabel(format string, args ...any) string {
	return truncateLabel(fmt.Sprintf(format, args...))
}

// TaskRegisterLabel associates label with task, so it can later be
// recovered by TaskGetLabel/TaskPopLabel without the caller having to carry
// the TaskContext itself across a call boundary.
func TaskRegisterLabel(task *TaskContext, label string) {
	labels.Register(truncateLabel(label), task)
}

// TaskRegisterLabelf is TaskRegisterLabel with a formatted label.
func TaskRegisterLabelf(task *TaskContext, format string, args ...any) {
	TaskRegisterLabel(task, formatLabel(format, args...))
}

// TaskGetLabel returns the task registered under label without removing
// the association. ok is false if no task is registered under label.
func TaskGetLabel(label string) (*TaskContext, bool) {
	return labels.Get(truncateLabel(label))
}

// TaskGetLabelf is TaskGetLabel with a formatted label.
func TaskGetLabelf(format string, args ...any) (*TaskContext, bool) {
	return TaskGetLabel(formatLabel(format, args...))
}

// TaskPopLabel returns the task registered under label and removes the
// association. ok is false if no task was registered under label.
func TaskPopLabel(label string) (*TaskContext, bool) {
	return labels.Pop(truncateLabel(label))
}

// TaskPopLabelf is TaskPopLabel with a formatted label.
func TaskPopLabelf(format string, args ...any) (*TaskContext, bool) {
	return TaskPopLabel(formatLabel(format, args...))
}
