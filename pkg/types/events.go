package types

// EventKind identifies one step reported during a run
type EventKind string

const (
	EventCleanStart  EventKind = "clean_start"
	EventRemove      EventKind = "remove"
	EventMirrorStart EventKind = "mirror_start"
	EventSourceRoot  EventKind = "source_root"
	EventCreateDir   EventKind = "create_dir"
	EventCopy        EventKind = "copy"
	EventSkip        EventKind = "skip"
)

// Event is a single observational record. Which fields are set depends on Kind:
// Count for EventMirrorStart, Source for roots, skips and copies, Destination
// for removals, directory creations and copies.
type Event struct {
	Kind        EventKind
	Source      string
	Destination string
	Count       int
	DryRun      bool
}

// Reporter receives progress events. Implementations must not fail the run.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to the Reporter interface
type ReporterFunc func(Event)

// Report calls f(e)
func (f ReporterFunc) Report(e Event) { f(e) }

// NopReporter discards every event
var NopReporter Reporter = ReporterFunc(func(Event) {})
