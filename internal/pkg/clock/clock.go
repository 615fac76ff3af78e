// Package clock provides the real sleeper used between retry attempts.
package clock

import (
	"time"

	"github.com/doeshing/cictl/internal/ports"
)

// RealSleeper blocks with time.Sleep. Tests inject a fake instead.
type RealSleeper struct{}

func (RealSleeper) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}

var _ ports.Sleeper = RealSleeper{}
