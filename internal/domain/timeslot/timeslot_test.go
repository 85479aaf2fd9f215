package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for day := 0; day < DaysPerWeek; day++ {
		for bucket := 0; bucket < BucketsPerDay; bucket++ {
			idx, err := Encode(day, bucket)
			require.NoError(t, err)

			gotDay, gotBucket, err := Decode(idx)
			require.NoError(t, err)
			assert.Equal(t, day, gotDay)
			assert.Equal(t, bucket, gotBucket)
		}
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	for idx := Index(0); idx < SlotCount; idx++ {
		day, bucket, err := Decode(idx)
		require.NoError(t, err)

		got, err := Encode(day, bucket)
		require.NoError(t, err)
		assert.Equal(t, idx, got)
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	cases := []struct {
		name        string
		day, bucket int
	}{
		{"negative day", -1, 0},
		{"day too large", 7, 0},
		{"negative bucket", 0, -1},
		{"bucket too large", 0, 36},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Encode(c.day, c.bucket)
			assert.ErrorIs(t, err, ErrSlotOutOfRange)
		})
	}
}

func TestDecodeOutOfRange(t *testing.T) {
	for _, idx := range []Index{-1, SlotCount, SlotCount + 100} {
		_, _, err := Decode(idx)
		assert.ErrorIs(t, err, ErrSlotOutOfRange)
	}
}

func TestBucketStart(t *testing.T) {
	cases := []struct {
		bucket int
		want   string
	}{
		{0, "07:00"},
		{1, "07:30"},
		{2, "08:00"},
		{33, "23:30"},
		{34, "00:00"}, // wraps past midnight
		{35, "00:30"},
	}
	for _, c := range cases {
		got, err := BucketStart(c.bucket)
		require.NoError(t, err)
		assert.Equal(t, c.want, got.String(), "bucket %d", c.bucket)
	}

	_, err := BucketStart(36)
	assert.ErrorIs(t, err, ErrSlotOutOfRange)
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("21:00")
	require.NoError(t, err)
	assert.Equal(t, ClockTime(21*60), got)
	assert.Equal(t, "21:00", got.String())

	for _, bad := range []string{"", "21", "25:00", "21:60", "ab:cd", "-1:00"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
