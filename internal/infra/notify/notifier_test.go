package notify

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrainReturnsAndClearsNotices(t *testing.T) {
	n := New()

	n.Notify("error", "upstream unavailable")
	n.Notify("warning", "slow response")

	notices := n.Drain()
	require.Len(t, notices, 2)
	assert.Equal(t, "error", notices[0].Level)
	assert.Equal(t, "upstream unavailable", notices[0].Message)
	assert.False(t, notices[0].Time.IsZero())
	assert.Equal(t, "warning", notices[1].Level)

	assert.Empty(t, n.Drain())
}

func TestDrainEmptyNotifier(t *testing.T) {
	n := New()
	assert.Empty(t, n.Drain())
}

func TestOldestNoticesDroppedPastCap(t *testing.T) {
	n := New()

	for i := 0; i < maxPending+10; i++ {
		n.Notify("error", strconv.Itoa(i))
	}

	notices := n.Drain()
	require.Len(t, notices, maxPending)
	assert.Equal(t, "10", notices[0].Message)
	assert.Equal(t, strconv.Itoa(maxPending+9), notices[len(notices)-1].Message)
}
