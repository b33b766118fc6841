package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationUntilNext4AM(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{name: "before 4am", now: time.Date(2026, 3, 1, 1, 30, 0, 0, loc), want: 150 * time.Minute},
		{name: "exactly 4am", now: time.Date(2026, 3, 1, 4, 0, 0, 0, loc), want: 24 * time.Hour},
		{name: "after 4am", now: time.Date(2026, 3, 1, 22, 0, 0, 0, loc), want: 6 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, durationUntilNext4AM(tt.now))
		})
	}
}
