// Package attr implements the attribute catalog (spec.md §2 "Attribute
// catalog", 8% share): a static table of named, typed attributes shared by
// every region variant's event contributor, plus the fixed vocabulary of
// event-type and endpoint labels attached to every Enter/Leave/discrete
// event.
//
// Grounded on the teacher's trace2semconv.go, which defines its attribute
// vocabulary as a table of `attribute.Key` constants from
// go.opentelemetry.io/otel/attribute; this catalog plays the same role for
// the region/task/thread attributes that original_source's
// trace-attributes.h/trace-static-constants.h define as OTF2 attribute and
// string-label ids.
package attr

import "go.opentelemetry.io/otel/attribute"

// Type tags the wire type of a catalog attribute, mirroring OTF2's
// attribute type enum (spec.md §6: "64-bit unsigned, 32-bit unsigned, 32-bit
// string ref").
type Type int

const (
	TypeString Type = iota
	TypeUint64
	TypeInt32
	TypeBool
	TypeStringRef
)

// Key names every attribute the engine can attach to an event. The name
// itself is also the otel attribute.Key used when building spans, so the
// catalog and the wire format never disagree about spelling.
type Key string

const (
	CPU                    Key = "otter.cpu"
	UniqueID               Key = "otter.unique_id"
	ThreadType             Key = "otter.thread.type"
	EventType              Key = "otter.event.type"
	Endpoint               Key = "otter.event.endpoint"
	EncounteringTaskID     Key = "otter.task.encountering_id"
	RegionType             Key = "otter.region.type"
	TaskCreateRA           Key = "otter.task.create_return_address"
	PriorTaskStatus        Key = "otter.task.prior_status"
	PriorTaskID            Key = "otter.task.prior_id"
	NextTaskID             Key = "otter.task.next_id"
	NextTaskRegionType     Key = "otter.task.next_region_type"
	SyncDescendantTasks    Key = "otter.sync.descendant_tasks"
	ParallelID             Key = "otter.parallel.id"
	ParallelMasterID       Key = "otter.parallel.master_id"
	ParallelFlags          Key = "otter.parallel.flags"
	ParallelRequestedPllsm Key = "otter.parallel.requested_parallelism"
	WorkshareType          Key = "otter.workshare.type"
	WorkshareCount         Key = "otter.workshare.count"
	SyncType               Key = "otter.sync.type"
	SyncTaskMode           Key = "otter.sync.task_mode"
	TaskID                 Key = "otter.task.id"
	TaskParentID           Key = "otter.task.parent_id"
	TaskFlags              Key = "otter.task.flags"
	TaskHasDependences     Key = "otter.task.has_dependences"
	TaskFlavour            Key = "otter.task.flavour"
	TaskSourceFile         Key = "otter.task.source.file"
	TaskSourceFunc         Key = "otter.task.source.func"
	TaskSourceLine         Key = "otter.task.source.line"
	PhaseType              Key = "otter.phase.type"
	PhaseName              Key = "otter.phase.name"
)

// OTelKey returns the otel attribute.Key spelling of k.
func (k Key) OTelKey() attribute.Key {
	return attribute.Key(k)
}

// Label is one of the fixed string values an attribute can take: event
// types and endpoints. Every event stores its labels as plain string
// attribute values; labels are not registered in the string registry.
type Label string

const (
	EventTypeParallelBegin  Label = "parallel_begin"
	EventTypeParallelEnd    Label = "parallel_end"
	EventTypeWorkshareBegin Label = "workshare_begin"
	EventTypeWorkshareEnd   Label = "workshare_end"
	EventTypeSyncBegin      Label = "sync_begin"
	EventTypeSyncEnd        Label = "sync_end"
	EventTypeMasterBegin    Label = "master_begin"
	EventTypeMasterEnd      Label = "master_end"
	EventTypePhaseBegin     Label = "phase_begin"
	EventTypePhaseEnd       Label = "phase_end"
	EventTypeTaskEnter      Label = "task_enter"
	EventTypeTaskLeave      Label = "task_leave"
	EventTypeTaskCreate     Label = "task_create"
	EventTypeTaskSwitch     Label = "task_switch"
	EventTypeThreadBegin    Label = "thread_begin"
	EventTypeThreadEnd      Label = "thread_end"

	EndpointEnter    Label = "enter"
	EndpointLeave    Label = "leave"
	EndpointDiscrete Label = "discrete"

	ThreadTypeInitial Label = "initial"
	ThreadTypeWorker  Label = "worker"
)
