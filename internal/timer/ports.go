package timer

// Notifier schedules the out-of-band completion alert for a running session.
// At most one alert is pending at a time; cancel is idempotent.
//
//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=timer
type Notifier interface {
	ScheduleCompletion(afterSeconds int, isBreak bool)
	CancelScheduledCompletion()
}

// Feedback plays completion and interaction cues. Calls are fire-and-forget.
type Feedback interface {
	PlayCompletionSound()
	TriggerSuccessHaptic()
	TriggerLightHaptic()
}

// NopNotifier discards every call.
type NopNotifier struct{}

func (NopNotifier) ScheduleCompletion(int, bool) {}
func (NopNotifier) CancelScheduledCompletion()   {}

// NopFeedback discards every call.
type NopFeedback struct{}

func (NopFeedback) PlayCompletionSound()  {}
func (NopFeedback) TriggerSuccessHaptic() {}
func (NopFeedback) TriggerLightHaptic()   {}
