package engine

import (
	"github.com/otterspan/otterspan/internal/attr"
	"github.com/otterspan/otterspan/internal/fatal"
	"github.com/otterspan/otterspan/internal/location"
	"github.com/otterspan/otterspan/internal/region"
)

// TaskCreate records the creation of a new task, grounded on
// original_source's `trace_event_task_create`: a single discrete event
// carrying the new task's attributes, emitted at the creating location
// without touching either location's active-region stack.
func (e *Engine) TaskCreate(loc *location.Location, task *region.Def) {
	fatal.AbortIf(e.logger, loc == nil, "engine: TaskCreate on nil location")
	fatal.AbortIf(e.logger, task == nil || task.Kind() != region.Task, "engine: TaskCreate requires a task region")

	task.Attrs().Reset()
	task.AddCommonAttributes()
	if err := task.AddVariantAttributes(); err != nil {
		fatal.Abort(e.logger, err.Error())
	}
	task.Attrs().AddLabel(attr.EventType, attr.EventTypeTaskCreate)
	task.Attrs().AddLabel(attr.Endpoint, attr.EndpointDiscrete)

	if err := e.sink.WriteDiscrete(loc.Ref(), task, attr.EventTypeTaskCreate, e.clk.Now()); err != nil {
		fatal.Abort(e.logger, err.Error())
	}
}

// TaskSchedule records a scheduling decision against priorTask: the reason
// it is no longer running (status), without transferring any active-region
// state. Grounded on `trace_event_task_schedule`, which LOG_ERRORs (here:
// fatal-aborts) if priorTask is not a Task region.
func (e *Engine) TaskSchedule(loc *location.Location, priorTask *region.Def, status region.TaskStatus) {
	fatal.AbortIf(e.logger, loc == nil, "engine: TaskSchedule on nil location")
	fatal.AbortIf(e.logger, priorTask == nil || priorTask.Kind() != region.Task,
		"engine: TaskSchedule requires a task region")

	if err := priorTask.SetTaskStatus(status); err != nil {
		fatal.Abort(e.logger, err.Error())
	}

	priorTask.Attrs().Reset()
	priorTask.AddCommonAttributes()
	if err := priorTask.AddVariantAttributes(); err != nil {
		fatal.Abort(e.logger, err.Error())
	}
	priorTask.Attrs().AddUint64(attr.PriorTaskID, priorTask.TaskID())
	priorTask.Attrs().AddString(attr.PriorTaskStatus, status.String())
	priorTask.Attrs().AddLabel(attr.EventType, attr.EventTypeTaskSwitch)
	priorTask.Attrs().AddLabel(attr.Endpoint, attr.EndpointDiscrete)

	if err := e.sink.WriteDiscrete(loc.Ref(), priorTask, attr.EventTypeTaskSwitch, e.clk.Now()); err != nil {
		fatal.Abort(e.logger, err.Error())
	}
}

// TaskSwitch schedules priorTask out (recording status) and transfers loc's
// entire active-region stack onto priorTask, then restores nextTask's
// previously-saved stack onto loc so nextTask resumes with the regions it
// had open when it was last suspended. Grounded on
// `trace_event_task_switch`, which calls
// `trace_location_store_active_regions_in_task` followed by
// `trace_location_get_active_regions_from_task`, each fatal-aborting if the
// transfer's destination is not empty.
func (e *Engine) TaskSwitch(loc *location.Location, priorTask *region.Def, status region.TaskStatus, nextTask *region.Def) {
	e.TaskSchedule(loc, priorTask, status)

	if err := loc.SaveActiveRegionsToTask(priorTask); err != nil {
		fatal.Abort(e.logger, err.Error())
	}
	if err := loc.RestoreActiveRegionsFromTask(nextTask); err != nil {
		fatal.Abort(e.logger, err.Error())
	}

	nextTask.Attrs().Reset()
	nextTask.AddCommonAttributes()
	if err := nextTask.AddVariantAttributes(); err != nil {
		fatal.Abort(e.logger, err.Error())
	}
	nextTask.Attrs().AddUint64(attr.NextTaskID, nextTask.TaskID())
	nextTask.Attrs().AddString(attr.NextTaskRegionType, nextTask.Kind().String())
	nextTask.Attrs().AddLabel(attr.EventType, attr.EventTypeTaskSwitch)
	nextTask.Attrs().AddLabel(attr.Endpoint, attr.EndpointDiscrete)

	if err := e.sink.WriteDiscrete(loc.Ref(), nextTask, attr.EventTypeTaskSwitch, e.clk.Now()); err != nil {
		fatal.Abort(e.logger, err.Error())
	}
}

// SynchroniseTasks brackets a synchronisation construct (barrier, taskwait,
// or taskgroup) as an immediate Enter/Leave pair: spec.md's task-graph
// SynchroniseTasks operation is point-in-time from the caller's
// perspective, so it opens and closes the Sync region in one call rather
// than requiring a separate Leave.
func (e *Engine) SynchroniseTasks(loc *location.Location, sync *region.Def) {
	fatal.AbortIf(e.logger, sync == nil || sync.Kind() != region.Sync,
		"engine: SynchroniseTasks requires a sync region")
	e.Enter(loc, sync)
	e.Leave(loc)
}
