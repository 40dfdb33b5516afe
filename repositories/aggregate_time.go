package repositories

import (
	"fmt"
	"time"
)

// sqliteTimeLayouts are the text encodings the sqlite driver writes for
// timestamps. Postgres hands back time.Time directly.
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// aggregateTime scans the result of MIN/MAX over a timestamp column. SQLite
// loses the column type on aggregates and returns the stored text.
type aggregateTime struct {
	Time  time.Time
	Valid bool
}

func (t *aggregateTime) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = aggregateTime{}
		return nil
	case time.Time:
		*t = aggregateTime{Time: v, Valid: true}
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("scan aggregate time: unsupported type %T", value)
	}
}

func (t *aggregateTime) parse(raw string) error {
	for _, layout := range sqliteTimeLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			*t = aggregateTime{Time: parsed, Valid: true}
			return nil
		}
	}
	return fmt.Errorf("scan aggregate time: unrecognised value %q", raw)
}

// Ptr returns nil for a NULL aggregate.
func (t aggregateTime) Ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
