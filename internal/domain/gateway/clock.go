package gateway

import "time"

// Clock provides the current calendar date. Injected so that remaining-days
// arithmetic and the date-seeded capacity draw are testable.
type Clock interface {
	Today() time.Time
}
