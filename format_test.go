package localekit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit"
)

var formatRefTime = time.Date(2010, time.April, 12, 13, 46, 0, 0, time.UTC)

func TestKitFormatting(t *testing.T) {
	t.Parallel()

	kit := newTestKit(t)
	vienna, err := time.LoadLocation("Europe/Vienna")
	require.NoError(t, err)

	t.Run("datetime uses context locale and timezone", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		assert.Equal(t, "Apr 12, 2010, 1:46:00 PM", kit.FormatDatetime(ctx, formatRefTime, ""))

		ctx = localekit.WithTimezone(ctx, vienna)
		assert.Equal(t, "Apr 12, 2010, 3:46:00 PM", kit.FormatDatetime(ctx, formatRefTime, ""))

		ctx = localekit.WithLocale(ctx, "de")
		assert.Equal(t, "12.04.2010, 15:46:00", kit.FormatDatetime(ctx, formatRefTime, ""))
	})

	t.Run("date and time parts", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		assert.Equal(t, "Apr 12, 2010", kit.FormatDate(ctx, formatRefTime, ""))
		assert.Equal(t, "1:46:00 PM", kit.FormatTime(ctx, formatRefTime, ""))
		assert.Equal(t, "4/12/10", kit.FormatDate(ctx, formatRefTime, "short"))
	})

	t.Run("numbers follow the context locale", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		assert.Equal(t, "1,099", kit.FormatNumber(ctx, 1099))
		assert.Equal(t, "19%", kit.FormatPercent(ctx, 0.19))

		de := localekit.WithLocale(ctx, "de")
		assert.Equal(t, "1.099", kit.FormatNumber(de, 1099))
	})

	t.Run("currency", func(t *testing.T) {
		t.Parallel()
		got, err := kit.FormatCurrency(context.Background(), 1099, "USD")
		require.NoError(t, err)
		assert.Equal(t, "$1,099.00", got)

		_, err = kit.FormatCurrency(context.Background(), 1, "NOPE")
		require.Error(t, err)
	})

	t.Run("timedelta", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		assert.Equal(t, "5 hours", kit.FormatTimedelta(ctx, 5*time.Hour))

		de := localekit.WithLocale(ctx, "de")
		assert.Equal(t, "5 Stunden", kit.FormatTimedelta(de, 5*time.Hour))
	})

	t.Run("timezone conversion round trip", func(t *testing.T) {
		t.Parallel()
		ctx := localekit.WithTimezone(context.Background(), vienna)

		local := kit.ToUserTimezone(ctx, formatRefTime)
		assert.Equal(t, 15, local.Hour())

		// Wall clock 13:46 read as Vienna local time is 11:46 UTC in April.
		back := kit.ToUTC(ctx, formatRefTime)
		assert.Equal(t, 11, back.Hour())
		assert.Equal(t, time.UTC, back.Location())
	})

	t.Run("date format overrides", func(t *testing.T) {
		t.Parallel()
		scoped := newTestKit(t, localekit.WithKitDateFormats(map[string]string{
			"datetime": "long",
		}))
		got := scoped.FormatDatetime(context.Background(), formatRefTime, "")
		assert.Equal(t, "April 12, 2010 at 1:46:00 PM UTC", got)

		scoped.SetDateFormat("datetime.long", "2006-01-02 15:04")
		got = scoped.FormatDatetime(context.Background(), formatRefTime, "")
		assert.Equal(t, "2010-04-12 13:46", got)
	})
}
