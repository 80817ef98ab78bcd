package l10n

import "time"

// ToUserTimezone converts an instant into the formatter's timezone.
func (f *Formatter) ToUserTimezone(t time.Time) time.Time {
	return t.In(f.loc)
}

// ToUTC reinterprets the wall-clock reading of t as local time in the
// formatter's timezone and converts it to UTC. This matches the behavior of
// frameworks that store naive local timestamps: 13:46 under Europe/Vienna in
// summer becomes 11:46 UTC.
func (f *Formatter) ToUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), f.loc).UTC()
}
