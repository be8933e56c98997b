package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursera-extractor/internal/types"
)

// fakeSession replays a fixed extent sequence and counts scrolls.
type fakeSession struct {
	heights []int64
	next    int
	scrolls int
}

func (f *fakeSession) scrollToBottom(ctx context.Context) error {
	f.scrolls++
	return nil
}

func (f *fakeSession) pageHeight(ctx context.Context) (int64, error) {
	h := f.heights[f.next]
	if f.next < len(f.heights)-1 {
		f.next++
	}
	return h, nil
}

func TestWaitForStableHeight_Converges(t *testing.T) {
	page := &fakeSession{heights: []int64{100, 200, 200}}

	outcome, err := waitForStableHeight(context.Background(), page, 10, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, types.LoadComplete, outcome)
	// Third measurement matched the second, so exactly two scrolls ran.
	assert.Equal(t, 2, page.scrolls)
	assert.Equal(t, 2, page.next)
}

func TestWaitForStableHeight_ImmediatelyStable(t *testing.T) {
	page := &fakeSession{heights: []int64{500, 500}}

	outcome, err := waitForStableHeight(context.Background(), page, 10, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, types.LoadComplete, outcome)
	assert.Equal(t, 1, page.scrolls)
}

func TestWaitForStableHeight_HitsScrollBound(t *testing.T) {
	// Strictly growing extents never converge; the bound must stop the
	// loop with an incomplete outcome rather than an error.
	page := &fakeSession{heights: []int64{100, 200, 300, 400, 500, 600, 700}}

	outcome, err := waitForStableHeight(context.Background(), page, 3, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, types.LoadIncomplete, outcome)
	assert.Equal(t, 3, page.scrolls)
}

func TestWaitForStableHeight_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	page := &fakeSession{heights: []int64{100, 200}}
	_, err := waitForStableHeight(ctx, page, 10, time.Minute)

	assert.ErrorIs(t, err, context.Canceled)
}
