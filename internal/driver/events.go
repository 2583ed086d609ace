package driver

// Stage identifies a phase of the import pipeline.
type Stage uint8

const (
	StageScan Stage = iota + 1
	StageResolve
)

// Status describes how far a file has moved through a stage.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event is one progress notification. File is empty for stage-wide events.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// ProgressSink receives pipeline progress events.
type ProgressSink interface {
	Publish(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct{ Ch chan<- Event }

func (s ChannelSink) Publish(ev Event) {
	if s.Ch != nil {
		s.Ch <- ev
	}
}

// NopSink drops events.
type NopSink struct{}

func (NopSink) Publish(Event) {}
