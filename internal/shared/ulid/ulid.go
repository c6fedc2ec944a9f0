package ulid

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
var NewULID = func() string {
	return ulid.Make().String()
}

// NewULIDAt generates a ULID whose timestamp component is t, so ids of call
// logs sort in the order they were observed. Times a ULID cannot encode
// (before the Unix epoch or past year 10889) get a ULID of the current time.
var NewULIDAt = func(t time.Time) string {
	if t.Before(time.UnixMilli(0)) {
		return NewULID()
	}
	id, err := ulid.New(ulid.Timestamp(t), rand.Reader)
	if err != nil {
		return NewULID()
	}
	return id.String()
}
