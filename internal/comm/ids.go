package comm

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock abstracts time retrieval so business logic is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator produces commission and temp-workspace identities.
type IDGenerator interface {
	NewCommID() string
	NewTempID() string
}

// Identity shape prefixes. A temp id is never persisted as a permanent
// identity; it is replaced at promotion time.
const (
	commIDPrefix = "comm_"
	tempIDPrefix = "temp_"
)

// RandomIDGenerator builds ids of the form <prefix><unixms>_<suffix>,
// where the suffix is the leading segment of a random UUID.
type RandomIDGenerator struct {
	Clock Clock
}

func (g RandomIDGenerator) NewCommID() string { return g.newID(commIDPrefix) }
func (g RandomIDGenerator) NewTempID() string { return g.newID(tempIDPrefix) }

func (g RandomIDGenerator) newID(prefix string) string {
	clock := g.Clock
	if clock == nil {
		clock = RealClock{}
	}
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("%s%d_%s", prefix, clock.Now().UnixMilli(), suffix)
}

// IsCommID reports whether id has the permanent identity shape.
func IsCommID(id string) bool { return strings.HasPrefix(id, commIDPrefix) }

// IsTempID reports whether id has the temp identity shape.
func IsTempID(id string) bool { return strings.HasPrefix(id, tempIDPrefix) }

// IsEntityFolder reports whether a folder name under the entities root
// can hold an entity record at all.
func IsEntityFolder(name string) bool { return IsCommID(name) || IsTempID(name) }
