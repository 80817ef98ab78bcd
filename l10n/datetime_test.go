package l10n_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/l10n"
)

var refTime = time.Date(2010, 4, 12, 13, 46, 0, 0, time.UTC)

func newFormatter(t *testing.T, locale string, opts ...l10n.Option) *l10n.Formatter {
	t.Helper()
	f, err := l10n.New(locale, opts...)
	require.NoError(t, err)
	return f
}

func TestFormatterNew(t *testing.T) {
	t.Run("accepts underscore form", func(t *testing.T) {
		f := newFormatter(t, "de_DE")
		assert.Equal(t, "de-de", f.Locale())
	})

	t.Run("empty locale defaults to english", func(t *testing.T) {
		f := newFormatter(t, "")
		assert.Equal(t, "en", f.Locale())
	})

	t.Run("invalid locale", func(t *testing.T) {
		_, err := l10n.New("!!invalid!!")
		var invalid *l10n.ErrInvalidLocale
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("NewOrDefault degrades to english", func(t *testing.T) {
		f := l10n.NewOrDefault("!!invalid!!")
		assert.Equal(t, "en", f.Locale())
	})

	t.Run("default timezone is UTC", func(t *testing.T) {
		f := newFormatter(t, "en")
		assert.Equal(t, time.UTC, f.Location())
	})
}

func TestFormatDatetime(t *testing.T) {
	t.Run("english medium default", func(t *testing.T) {
		f := newFormatter(t, "en_US")
		assert.Equal(t, "Apr 12, 2010, 1:46:00 PM", f.FormatDatetime(refTime, ""))
		assert.Equal(t, "Apr 12, 2010", f.FormatDate(refTime, ""))
		assert.Equal(t, "1:46:00 PM", f.FormatTime(refTime, ""))
	})

	t.Run("converts into user timezone", func(t *testing.T) {
		vienna, err := time.LoadLocation("Europe/Vienna")
		require.NoError(t, err)
		f := newFormatter(t, "en_US", l10n.WithLocation(vienna))

		assert.Equal(t, "Apr 12, 2010, 3:46:00 PM", f.FormatDatetime(refTime, ""))
		assert.Equal(t, "Apr 12, 2010", f.FormatDate(refTime, ""))
		assert.Equal(t, "3:46:00 PM", f.FormatTime(refTime, ""))
	})

	t.Run("german medium", func(t *testing.T) {
		f := newFormatter(t, "de_DE")
		assert.Equal(t, "12.04.2010, 15:46:00", f.FormatDatetime(refTime.Add(2*time.Hour), ""))
	})

	t.Run("german long date has localized month", func(t *testing.T) {
		f := newFormatter(t, "de_DE")
		assert.Equal(t, "12. April 2010", f.FormatDate(refTime, l10n.StyleLong))
	})

	t.Run("french medium date", func(t *testing.T) {
		f := newFormatter(t, "fr_FR")
		// Abbreviated French months carry a trailing period, full-word
		// months do not.
		assert.Equal(t, "12 avr. 2010", f.FormatDate(refTime, ""))
		assert.Equal(t, "12 avr. 2010, 13:46:00", f.FormatDatetime(refTime, ""))
		assert.Equal(t, "12 mars 2010", f.FormatDate(time.Date(2010, time.March, 12, 0, 0, 0, 0, time.UTC), ""))
	})

	t.Run("explicit layout wins", func(t *testing.T) {
		f := newFormatter(t, "en_US")
		assert.Equal(t, "2010-04-12", f.FormatDate(refTime, "2006-01-02"))
	})

	t.Run("full style includes weekday", func(t *testing.T) {
		f := newFormatter(t, "en_US")
		assert.Equal(t, "Monday, April 12, 2010", f.FormatDate(refTime, l10n.StyleFull))
	})
}

func TestDateFormatOverrides(t *testing.T) {
	t.Run("style alias and layout override", func(t *testing.T) {
		f := newFormatter(t, "en_US", l10n.WithDateFormats(map[string]string{
			"datetime":      "long",
			"datetime.long": "January 2, 2006 3:04:05 PM",
		}))
		assert.Equal(t, "April 12, 2010 1:46:00 PM", f.FormatDatetime(refTime, ""))
	})

	t.Run("override only selected style", func(t *testing.T) {
		f := newFormatter(t, "en_US", l10n.WithDateFormats(map[string]string{
			"date.short": "01 02",
		}))
		assert.Equal(t, "04 12", f.FormatDate(refTime, l10n.StyleShort))
		assert.Equal(t, "Apr 12, 2010", f.FormatDate(refTime, ""), "medium untouched")
	})

	t.Run("resolution exposes the layout", func(t *testing.T) {
		f := newFormatter(t, "en_US", l10n.WithDateFormats(map[string]string{
			"datetime":      "long",
			"datetime.long": "January 2, 2006 3:04:05 PM",
		}))
		assert.Equal(t, "January 2, 2006 3:04:05 PM", f.Format("datetime", ""))
		assert.Equal(t, "Jan 2, 2006, 3:04:05 PM", f.Format("datetime", l10n.StyleMedium))
	})
}

func TestTimezoneConversion(t *testing.T) {
	vienna, err := time.LoadLocation("Europe/Vienna")
	require.NoError(t, err)
	f := newFormatter(t, "en", l10n.WithLocation(vienna))

	t.Run("to user timezone", func(t *testing.T) {
		local := f.ToUserTimezone(refTime)
		assert.Equal(t, vienna, local.Location())
		assert.Equal(t, 15, local.Hour())
	})

	t.Run("to utc reinterprets wall clock", func(t *testing.T) {
		utc := f.ToUTC(refTime)
		assert.Equal(t, time.UTC, utc.Location())
		assert.Equal(t, 11, utc.Hour(), "13:46 Vienna summer time is 11:46 UTC")
		assert.Equal(t, 46, utc.Minute())
	})
}
