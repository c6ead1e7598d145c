package chatview

import "time"

// Task is a handle to a scheduled callback.
type Task interface {
	// Stop prevents the callback from running if it has not started yet.
	Stop() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

// TimerScheduler runs callbacks on runtime timers.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}
