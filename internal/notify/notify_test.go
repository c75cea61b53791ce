package notify

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/focusclock/internal/util"
)

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (f *fakeTimer) Stop() bool {
	was := !f.stopped
	f.stopped = true
	return was
}

func setupScheduler(t *testing.T) (*Scheduler, *[]*fakeTimer, *[]Alert) {
	t.Helper()
	var timers []*fakeTimer
	var alerts []Alert
	s := NewScheduler(func(a Alert) { alerts = append(alerts, a) })
	s.afterFunc = func(d time.Duration, f func()) stopper {
		ft := &fakeTimer{d: d, f: f}
		timers = append(timers, ft)
		return ft
	}
	return s, &timers, &alerts
}

func TestScheduleDelivers(t *testing.T) {
	s, timers, alerts := setupScheduler(t)
	s.ScheduleCompletion(90, true)
	if len(*timers) != 1 || (*timers)[0].d != 90*time.Second {
		t.Fatalf("expected one 90s timer, got %+v", *timers)
	}
	if !s.Pending() {
		t.Fatalf("expected pending alert")
	}
	(*timers)[0].f()
	if len(*alerts) != 1 || !(*alerts)[0].IsBreak {
		t.Fatalf("expected one break alert, got %+v", *alerts)
	}
	if s.Pending() {
		t.Fatalf("expected nothing pending after delivery")
	}
}

func TestCancelSuppressesStaleTimer(t *testing.T) {
	s, timers, alerts := setupScheduler(t)
	s.ScheduleCompletion(10, false)
	s.CancelScheduledCompletion()
	s.CancelScheduledCompletion()
	if !(*timers)[0].stopped {
		t.Fatalf("expected timer to be stopped")
	}
	// A timer that already started running must still be ignored.
	(*timers)[0].f()
	if len(*alerts) != 0 {
		t.Fatalf("cancelled alert was delivered: %+v", *alerts)
	}
}

func TestRescheduleReplacesPending(t *testing.T) {
	s, timers, alerts := setupScheduler(t)
	s.ScheduleCompletion(100, false)
	s.ScheduleCompletion(40, false)
	if !(*timers)[0].stopped {
		t.Fatalf("expected first timer stopped on reschedule")
	}
	(*timers)[0].f()
	(*timers)[1].f()
	if len(*alerts) != 1 {
		t.Fatalf("expected exactly one alert, got %d", len(*alerts))
	}
}

func TestNegativeDelayClamped(t *testing.T) {
	s, timers, _ := setupScheduler(t)
	s.ScheduleCompletion(-5, false)
	if (*timers)[0].d != 0 {
		t.Fatalf("expected zero delay, got %v", (*timers)[0].d)
	}
}

func TestHugeDelayDoesNotWrap(t *testing.T) {
	s, timers, alerts := setupScheduler(t)
	s.ScheduleCompletion(10_000_000_000, false)
	d := (*timers)[0].d
	if d <= 0 || d < 100*365*24*time.Hour {
		t.Fatalf("expected a far-future delay, got %v", d)
	}
	if len(*alerts) != 0 || !s.Pending() {
		t.Fatalf("expected the alert to stay pending")
	}
}

func TestSchedulerRealTimer(t *testing.T) {
	s := NewScheduler(nil)
	got := make(chan Alert, 1)
	s.SetHandler(func(a Alert) { got <- a })
	s.ScheduleCompletion(0, false)
	select {
	case a := <-got:
		if a.IsBreak {
			t.Fatalf("expected work alert")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("alert was not delivered")
	}
}

func TestAlertMessage(t *testing.T) {
	if !strings.Contains(Alert{}.Message(), "break") {
		t.Fatalf("work alert should suggest a break")
	}
	if !strings.Contains(Alert{IsBreak: true}.Message(), "focus") {
		t.Fatalf("break alert should suggest focusing")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTerminalFeedback(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out)
	term.PlayCompletionSound()
	if out.String() != bell {
		t.Fatalf("expected bell, got %q", out.String())
	}

	var logs bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&logs)
	util.SetDebug(true)
	t.Cleanup(func() {
		log.SetOutput(prev)
		util.SetDebug(false)
	})
	term.TriggerSuccessHaptic()
	term.TriggerLightHaptic()
	if !strings.Contains(logs.String(), "haptic: success") || !strings.Contains(logs.String(), "haptic: light") {
		t.Fatalf("expected haptics to be logged, got %q", logs.String())
	}

	NewTerminal(failingWriter{}).PlayCompletionSound()
	if !strings.Contains(logs.String(), "play completion sound: closed") {
		t.Fatalf("expected write failure to be logged, got %q", logs.String())
	}
	NewTerminal(nil).PlayCompletionSound()
}
