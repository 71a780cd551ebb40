package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDroppableID(t *testing.T) {
	tests := []struct {
		id      string
		want    Region
		wantErr bool
	}{
		{id: "pool:w1", want: RegionPool},
		{id: "choices:w1", want: RegionPool},
		{id: "slots:w1", want: RegionSlots},
		{id: "responses:a:b", want: RegionSlots},
		{id: "slots:", want: RegionSlots},
		{id: "slots", wantErr: true},
		{id: "matchable:responses", wantErr: true},
		{id: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := ParseDroppableID(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDroppableIDRoundTrip(t *testing.T) {
	for _, r := range []Region{RegionPool, RegionSlots} {
		got, err := ParseDroppableID(DroppableID(r, "abc"))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	assert.Equal(t, "region(9)", Region(9).String())
}

func TestParseDraggableID(t *testing.T) {
	tests := []struct {
		id      string
		want    DraggableRef
		wantErr bool
	}{
		{id: "choices:3", want: DraggableRef{Kind: KindChoice, ID: "3"}},
		{id: "choices:a:b", want: DraggableRef{Kind: KindChoice, ID: "a:b"}},
		{id: "placeholders:2", want: DraggableRef{Kind: KindPlaceholder, ID: "2"}},
		{id: "placeholders:x", wantErr: true},
		{id: "choices:", wantErr: true},
		{id: "choices", wantErr: true},
		{id: "widgets:1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := ParseDraggableID(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDragEnd(t *testing.T) {
	g, err := ParseDragEnd(DragEndEvent{
		DraggableID: "choices:4",
		Source:      RawLocation{DroppableID: "pool:w", Index: 2},
		Destination: &RawLocation{DroppableID: "slots:w", Index: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "4", g.ItemID)
	assert.Equal(t, Location{RegionPool, 2}, g.Source)
	require.NotNil(t, g.Destination)
	assert.Equal(t, Location{RegionSlots, 1}, *g.Destination)

	g, err = ParseDragEnd(DragEndEvent{
		DraggableID: "choices:4",
		Source:      RawLocation{DroppableID: "pool:w", Index: 2},
	})
	require.NoError(t, err)
	assert.True(t, g.Cancelled())

	_, err = ParseDragEnd(DragEndEvent{DraggableID: "placeholders:0", Source: RawLocation{DroppableID: "slots:w"}})
	assert.ErrorIs(t, err, ErrNotDraggable)

	_, err = ParseDragEnd(DragEndEvent{
		DraggableID: "choices:4",
		Source:      RawLocation{DroppableID: "pool:w"},
		Destination: &RawLocation{DroppableID: "nowhere"},
	})
	assert.ErrorIs(t, err, ErrMalformedID)
}
