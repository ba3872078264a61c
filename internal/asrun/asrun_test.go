package asrun

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernwood/playoutd/internal/clock"
	"github.com/fernwood/playoutd/internal/execwindow"
	"github.com/fernwood/playoutd/internal/models"
)

type memAsRunRepo struct {
	blocks  []*models.AsRunBlock
	failing bool
}

func (m *memAsRunRepo) AppendBlock(_ context.Context, block *models.AsRunBlock) error {
	if m.failing {
		return errors.New("disk full")
	}
	m.blocks = append(m.blocks, block)
	return nil
}

func (m *memAsRunRepo) GetByChannelRange(_ context.Context, channelSlug string, startMs, endMs int64) ([]*models.AsRunBlock, error) {
	var out []*models.AsRunBlock
	for _, b := range m.blocks {
		if b.ChannelSlug == channelSlug && b.StartUTCMs >= startMs && b.StartUTCMs < endMs {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memAsRunRepo) LastBlock(_ context.Context, channelSlug string) (*models.AsRunBlock, error) {
	for i := len(m.blocks) - 1; i >= 0; i-- {
		if m.blocks[i].ChannelSlug == channelSlug {
			return m.blocks[i], nil
		}
	}
	return nil, nil
}

type memOverrideRepo struct {
	records []*models.OverrideRecord
	failing bool
}

func (m *memOverrideRepo) Create(_ context.Context, record *models.OverrideRecord) error {
	if m.failing {
		return errors.New("db locked")
	}
	record.Seq = uint64(len(m.records) + 1)
	m.records = append(m.records, record)
	return nil
}

func (m *memOverrideRepo) GetByTarget(_ context.Context, targetID string) ([]*models.OverrideRecord, error) {
	var out []*models.OverrideRecord
	for _, r := range m.records {
		if r.TargetID == targetID {
			out = append(out, r)
		}
	}
	return out, nil
}

func testEntry() execwindow.Entry {
	return execwindow.Entry{
		BlockID:    "blk-0011223344556677889900aa",
		StartUTCMs: 1_000_000,
		EndUTCMs:   2_800_000,
		Segments: []models.SegmentRecord{
			{SegmentType: models.SegmentContent, AssetURI: "file:///media/ep-a.mkv", SegmentDurationMs: 1_440_000, BreakpointClass: models.BreakpointChapter},
			{SegmentType: models.SegmentPromo, AssetURI: "file:///media/promo.mkv", SegmentDurationMs: 60_000},
			{SegmentType: models.SegmentPad, SegmentDurationMs: 300_000},
		},
	}
}

func TestWriter_RecordCompleted(t *testing.T) {
	repo := &memAsRunRepo{}
	w := NewWriter(repo, nil)

	require.NoError(t, w.RecordCompleted(context.Background(), "retro-one", testEntry(), -42))

	require.Len(t, repo.blocks, 1)
	b := repo.blocks[0]
	assert.Equal(t, "retro-one", b.ChannelSlug)
	assert.Equal(t, "blk-0011223344556677889900aa", b.BlockID)
	assert.True(t, b.Completed)
	assert.Equal(t, int64(-42), b.DeltaMs)
	assert.Empty(t, b.Reason)

	require.Len(t, b.Segments, 3)
	assert.Equal(t, 0, b.Segments[0].SegmentIndex)
	assert.Equal(t, models.BreakpointChapter, b.Segments[0].BreakpointClass)
	assert.Equal(t, 1, b.Segments[1].SegmentIndex)
	// Unset classes are stored explicitly, not as empty strings.
	assert.Equal(t, models.BreakpointNone, b.Segments[1].BreakpointClass)
	assert.Equal(t, models.SegmentPad, b.Segments[2].SegmentType)
}

func TestWriter_RecordIncomplete(t *testing.T) {
	repo := &memAsRunRepo{}
	w := NewWriter(repo, nil)

	require.NoError(t, w.RecordIncomplete(context.Background(), "retro-one", testEntry(), "sink_disconnect"))

	require.Len(t, repo.blocks, 1)
	assert.False(t, repo.blocks[0].Completed)
	assert.Equal(t, "sink_disconnect", repo.blocks[0].Reason)
	assert.Zero(t, repo.blocks[0].DeltaMs)
}

func TestOverrideStore_CommitPersistsBeforePublish(t *testing.T) {
	repo := &memOverrideRepo{}
	store := NewOverrideStore(repo, clock.NewFakeClock(5_000_000))

	published := false
	record, err := store.Commit(context.Background(), "traffic", "blk-aa", "makegood", func() error {
		// The record must already be durable when publish runs.
		require.Len(t, repo.records, 1)
		published = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, published)
	assert.Equal(t, uint64(1), record.Seq)
	assert.Equal(t, int64(5_000_000), record.CreatedUTCMs)
}

func TestOverrideStore_PersistFailureAbortsPublish(t *testing.T) {
	repo := &memOverrideRepo{failing: true}
	store := NewOverrideStore(repo, clock.NewFakeClock(5_000_000))

	published := false
	_, err := store.Commit(context.Background(), "traffic", "blk-aa", "makegood", func() error {
		published = true
		return nil
	})

	var persistErr *OverridePersistFailure
	require.ErrorAs(t, err, &persistErr)
	assert.Equal(t, "blk-aa", persistErr.TargetID)
	assert.False(t, published)
	assert.Empty(t, repo.records)
}

func TestOverrideStore_SequenceIsMonotonic(t *testing.T) {
	repo := &memOverrideRepo{}
	store := NewOverrideStore(repo, clock.NewFakeClock(5_000_000))

	first, err := store.Commit(context.Background(), "traffic", "blk-aa", "makegood", nil)
	require.NoError(t, err)
	second, err := store.Commit(context.Background(), "plan", "blk-bb", "operator", nil)
	require.NoError(t, err)

	assert.Less(t, first.Seq, second.Seq)
}
