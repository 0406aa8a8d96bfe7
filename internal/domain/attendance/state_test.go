package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dayEvents(types ...MarkType) []ClockEvent {
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	events := make([]ClockEvent, 0, len(types))
	for i, mt := range types {
		events = append(events, ClockEvent{
			Type:      mt,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return events
}

func TestEntranceOpen(t *testing.T) {
	tests := []struct {
		name   string
		events []ClockEvent
		want   bool
	}{
		{"empty day", dayEvents(), false},
		{"entrance only", dayEvents(MarkEntrance), true},
		{"entrance then exit", dayEvents(MarkEntrance, MarkExit), false},
		{"second entrance after exit", dayEvents(MarkEntrance, MarkExit, MarkEntrance), true},
		{"two full cycles", dayEvents(MarkEntrance, MarkExit, MarkEntrance, MarkExit), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EntranceOpen(tt.events))
		})
	}
}

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		name    string
		events  []ClockEvent
		mark    MarkType
		wantErr error
	}{
		{"first entrance", dayEvents(), MarkEntrance, nil},
		{"entrance while open", dayEvents(MarkEntrance), MarkEntrance, ErrEntranceAlreadyOpen},
		{"entrance after full cycle", dayEvents(MarkEntrance, MarkExit), MarkEntrance, nil},
		{"exit with nothing today", dayEvents(), MarkExit, ErrNoEntranceToday},
		{"exit while open", dayEvents(MarkEntrance), MarkExit, nil},
		{"exit already registered", dayEvents(MarkEntrance, MarkExit), MarkExit, ErrExitAlreadyRegistered},
		{"unknown mark", dayEvents(), MarkType("almuerzo"), ErrInvalidMarkType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTransition(tt.events, tt.mark)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
