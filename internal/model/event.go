package model

// EventKind identifies what a driver event reports
type EventKind int

const (
	// EventBatchStarted is emitted once, after the encoder check passed
	EventBatchStarted EventKind = iota
	// EventJobFinished is emitted once per job, in source order
	EventJobFinished
	// EventBatchFinished carries the batch summary
	EventBatchFinished
	// EventNotice is a user-visible notice that stopped the batch before it began
	EventNotice
)

// String returns a short name for the event kind
func (k EventKind) String() string {
	switch k {
	case EventBatchStarted:
		return "BatchStarted"
	case EventJobFinished:
		return "JobFinished"
	case EventBatchFinished:
		return "BatchFinished"
	case EventNotice:
		return "Notice"
	default:
		return "Unknown"
	}
}

// NoticeKind enumerates the conditions that are shown as a modal notice
type NoticeKind int

const (
	NoticeNoFiles NoticeKind = iota
	NoticeEncoderMissing
	NoticeBusy
	NoticeNoValidFiles
)

// Event is posted by the conversion driver to whoever renders the log
type Event struct {
	Kind    EventKind
	Batch   *Batch
	Job     *ConversionJob
	Summary Summary
	Notice  NoticeKind
	Err     error
}
