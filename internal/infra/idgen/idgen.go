// Package idgen generates entity identifiers.
package idgen

import (
	"fmt"
	"strings"

	"pricefield/internal/domain/service"

	"github.com/google/uuid"
)

type generator struct {
	clock service.Clock
}

// NewGenerator returns an IDGenerator producing ids of the form
// "<prefix>_<unix-ms>_<suffix>". The suffix is the leading segment of a
// random UUID, which keeps ids unique even within one millisecond.
func NewGenerator(clock service.Clock) service.IDGenerator {
	return &generator{clock: clock}
}

// NewID returns a fresh identifier carrying the given prefix.
func (g *generator) NewID(prefix string) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]

	return fmt.Sprintf("%s_%d_%s", prefix, g.clock.Now().UnixMilli(), suffix)
}
