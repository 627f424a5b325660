package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeladderbush/LED-Project/internal/providers"
	"github.com/mikeladderbush/LED-Project/internal/testutil"
	"github.com/mikeladderbush/LED-Project/internal/timeutil"
)

func TestCurrentDateReturnsProviderDate(t *testing.T) {
	clock := &testutil.StubDate{Date: testutil.MustDate(2024, 2, 28)}

	d, err := CurrentDate(context.Background(), clock, "America/New_York", nil)

	require.NoError(t, err)
	assert.Equal(t, "2024-02-28", d.String())
	assert.Equal(t, []string{"America/New_York"}, clock.Zones)
}

func TestCurrentDateWrapsFailures(t *testing.T) {
	cause := providers.FetchFailed(providers.FeedTime, 0, errors.New("dial tcp: refused"))
	logger, buf := testutil.NewBufferLogger()

	_, err := CurrentDate(context.Background(), &testutil.StubDate{Err: cause}, "UTC", logger)

	require.ErrorIs(t, err, ErrDateUnresolved)
	assert.ErrorIs(t, err, providers.ErrFetchFailed)
	assert.Contains(t, buf.String(), "current date unresolved")
}

func TestCurrentDateRejectsInvalidDate(t *testing.T) {
	_, err := CurrentDate(context.Background(), &testutil.StubDate{Date: timeutil.Date{}}, "UTC", nil)
	assert.ErrorIs(t, err, ErrDateUnresolved)
}

func TestCurrentDateWithoutProvider(t *testing.T) {
	_, err := CurrentDate(context.Background(), nil, "UTC", nil)
	assert.ErrorIs(t, err, ErrDateUnresolved)
	assert.ErrorIs(t, err, providers.ErrProviderUnavailable)
}
