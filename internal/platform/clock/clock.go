package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// System returns the wall clock. Tests substitute a clockwork fake clock,
// which satisfies Clock as well.
func System() Clock {
	return clockwork.NewRealClock()
}
