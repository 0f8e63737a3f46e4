package utils

import (
	"strings"
	"time"

	"github.com/itlightning/dateparse"
)

const iso8601 = "2006-01-02T15:04:05.999999"

type ISOTime struct {
	time.Time
}

func (i *ISOTime) UnmarshalJSON(bytes []byte) (err error) {
	i.Time, err = time.Parse(iso8601, strings.Trim(string(bytes), `"`))
	return
}

func (i *ISOTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.Time.Format(iso8601) + `"`), nil
}

// ParseTimestamp accepts timestamps in any common format. Configuration
// documents are written by hand, so the engine is lenient about how window
// bounds are spelled.
func ParseTimestamp(s string) (time.Time, error) {
	return dateparse.ParseAny(s)
}
