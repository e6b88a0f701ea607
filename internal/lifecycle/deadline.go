package lifecycle

import (
	"time"

	"github.com/alexisbeaulieu97/glint/internal/scheduler"
)

// Deadline bounds the run that is current when it is armed. If that run is
// still going after d, the controller is stopped as if its trigger had been
// released. Later runs are unaffected; cancel the handle to disarm early.
func Deadline(sched scheduler.Scheduler, d time.Duration, c *Controller) scheduler.Handle {
	run := c.Runs()
	return sched.After(d, func() {
		if c.Runs() == run && c.State() == Running {
			c.Stop()
		}
	})
}
