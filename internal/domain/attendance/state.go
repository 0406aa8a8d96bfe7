package attendance

// EntranceOpen reports whether the worker is currently clocked in, given the
// day's events. It holds when the most recent entrance is newer than the most
// recent exit, or when an entrance exists and no exit does. Events are
// expected ordered by timestamp ascending.
func EntranceOpen(events []ClockEvent) bool {
	var lastEntrance, lastExit *ClockEvent
	for i := range events {
		switch events[i].Type {
		case MarkEntrance:
			lastEntrance = &events[i]
		case MarkExit:
			lastExit = &events[i]
		}
	}
	if lastEntrance == nil {
		return false
	}
	return lastExit == nil || lastEntrance.Timestamp.After(lastExit.Timestamp)
}

// CheckTransition validates that marking t is a legal next step for a day that
// already holds events. Entrances and exits must strictly alternate, starting
// with an entrance.
func CheckTransition(events []ClockEvent, t MarkType) error {
	switch t {
	case MarkEntrance:
		if EntranceOpen(events) {
			return ErrEntranceAlreadyOpen
		}
	case MarkExit:
		hasEntrance := false
		for i := range events {
			if events[i].Type == MarkEntrance {
				hasEntrance = true
				break
			}
		}
		if !hasEntrance {
			return ErrNoEntranceToday
		}
		if !EntranceOpen(events) {
			return ErrExitAlreadyRegistered
		}
	default:
		return ErrInvalidMarkType
	}
	return nil
}
