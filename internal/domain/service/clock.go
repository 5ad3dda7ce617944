// Package service defines interfaces for collaborators the domain layer
// depends on but does not implement itself.
package service

import (
	"time"
)

// Clock supplies the current time. Injected so services stamp
// created_at/updated_at deterministically under test.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
