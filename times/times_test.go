package times

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	instant := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		raw     interface{}
		want    time.Time
		wantErr error
	}{
		{
			name: "native instant",
			raw:  instant,
			want: instant,
		},
		{
			name: "pointer to instant",
			raw:  &instant,
			want: instant,
		},
		{
			name: "seconds nanoseconds pair",
			raw:  map[string]interface{}{"seconds": int64(1710495000), "nanoseconds": int64(0)},
			want: time.Unix(1710495000, 0).UTC(),
		},
		{
			name: "underscore prefixed pair",
			raw:  map[string]interface{}{"_seconds": float64(1710495000), "_nanoseconds": float64(0)},
			want: time.Unix(1710495000, 0).UTC(),
		},
		{
			name: "pair without nanoseconds",
			raw:  map[string]interface{}{"seconds": int64(1710495000)},
			want: time.Unix(1710495000, 0).UTC(),
		},
		{
			name: "epoch seconds int64",
			raw:  int64(1710495000),
			want: time.Unix(1710495000, 0).UTC(),
		},
		{
			name: "epoch seconds float64",
			raw:  float64(1710495000),
			want: time.Unix(1710495000, 0).UTC(),
		},
		{
			name: "rfc3339 string",
			raw:  "2024-03-15T09:30:00Z",
			want: instant,
		},
		{
			name: "date time string without zone",
			raw:  "2024-03-15T09:30:00",
			want: instant,
		},
		{
			name: "date only string",
			raw:  "2024-03-15",
			want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage string",
			raw:     "next tuesday-ish",
			wantErr: ErrUnparseable,
		},
		{
			name:    "nil value",
			raw:     nil,
			wantErr: ErrUnparseable,
		},
		{
			name:    "nil time pointer",
			raw:     (*time.Time)(nil),
			wantErr: ErrUnparseable,
		},
		{
			name:    "pair without seconds",
			raw:     map[string]interface{}{"nanoseconds": int64(12)},
			wantErr: ErrUnparseable,
		},
		{
			name:    "unsupported type",
			raw:     []string{"2024-03-15"},
			wantErr: ErrUnparseable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestFormatInLocation(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	assert.NoError(t, err)

	instant := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "15.03.2024", FormatInLocation(instant, berlin, PatternDate))
	assert.Equal(t, "15.03.2024 10:30", FormatInLocation(instant, berlin, PatternDateTime))
	assert.Equal(t, "10:30", FormatInLocation(instant, berlin, PatternTimeOnly))

	// nil location falls back to UTC
	assert.Equal(t, "15.03.2024 09:30", FormatInLocation(instant, nil, PatternDateTime))

	// deterministic for a fixed input
	assert.Equal(t,
		FormatInLocation(instant, berlin, PatternDateTime),
		FormatInLocation(instant, berlin, PatternDateTime),
	)
}

func TestDayKey(t *testing.T) {
	auckland, err := time.LoadLocation("Pacific/Auckland")
	assert.NoError(t, err)

	// late UTC evening is already the next day in Auckland
	instant := time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-03-15", DayKey(instant, time.UTC))
	assert.Equal(t, "2024-03-16", DayKey(instant, auckland))
	assert.Equal(t, "2024-03-15", DayKey(instant, nil))
}
