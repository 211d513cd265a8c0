package watch

import (
	"time"
)

// RunSettled consumes arrivals and invokes run once no accepted event has
// been seen for the settle interval. A burst of files from a card reader or
// tether triggers a single organize pass instead of one per file. Returns
// when the arrivals channel closes, running one final pass if a trigger is
// still pending.
func RunSettled(arrivals <-chan FileArrival, settle time.Duration, accept func(path string) bool, run func()) {
	timer := time.NewTimer(settle)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case arrival, ok := <-arrivals:
			if !ok {
				if pending {
					run()
				}
				return
			}
			if accept != nil && !accept(arrival.Path) {
				continue
			}
			pending = true
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(settle)

		case <-timer.C:
			if pending {
				pending = false
				run()
			}
		}
	}
}
