package outbound

// TaskDispatcher schedules a task to run on the shared worker pool.
// *ants.Pool satisfies it.
type TaskDispatcher interface {
	Submit(task func()) error
}
