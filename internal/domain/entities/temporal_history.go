package entities

import "time"

// TemporalHistory records the lifecycle milestones of a service order.
//
// Each milestone must not precede the previous one, and a milestone cannot be
// set without its predecessor:
//
//	CreatedAt <= ExecutionStartedAt <= FinalizedAt <= DeliveredAt
//
// Mutators return a new value; the receiver is never modified.
type TemporalHistory struct {
	createdAt          time.Time
	executionStartedAt *time.Time
	finalizedAt        *time.Time
	deliveredAt        *time.Time
}

// NewTemporalHistory starts a history at createdAt.
func NewTemporalHistory(createdAt time.Time) (TemporalHistory, error) {
	return RestoreTemporalHistory(createdAt, nil, nil, nil)
}

// RestoreTemporalHistory rebuilds a persisted history, validating chronology.
func RestoreTemporalHistory(createdAt time.Time, executionStartedAt, finalizedAt, deliveredAt *time.Time) (TemporalHistory, error) {
	if createdAt.IsZero() {
		return TemporalHistory{}, invalidInput("creation date is required")
	}
	h := TemporalHistory{createdAt: createdAt}
	var err error
	if executionStartedAt != nil {
		if h, err = h.WithExecutionStarted(*executionStartedAt); err != nil {
			return TemporalHistory{}, err
		}
	}
	if finalizedAt != nil {
		if h, err = h.WithFinalized(*finalizedAt); err != nil {
			return TemporalHistory{}, err
		}
	}
	if deliveredAt != nil {
		if h, err = h.WithDelivered(*deliveredAt); err != nil {
			return TemporalHistory{}, err
		}
	}
	return h, nil
}

// WithExecutionStarted stamps the execution start. Stamping again is allowed
// (execution restarts after a compensated stock failure) as long as no later
// milestone exists.
func (h TemporalHistory) WithExecutionStarted(at time.Time) (TemporalHistory, error) {
	if at.Before(h.createdAt) {
		return TemporalHistory{}, invalidInput("execution start %s cannot precede creation %s", at.Format(time.RFC3339Nano), h.createdAt.Format(time.RFC3339Nano))
	}
	if h.finalizedAt != nil {
		return TemporalHistory{}, invalidInput("execution start cannot change after finalization")
	}
	h.executionStartedAt = &at
	return h, nil
}

func (h TemporalHistory) WithFinalized(at time.Time) (TemporalHistory, error) {
	if h.executionStartedAt == nil {
		return TemporalHistory{}, invalidInput("finalization date requires an execution start date")
	}
	if at.Before(*h.executionStartedAt) {
		return TemporalHistory{}, invalidInput("finalization %s cannot precede execution start %s", at.Format(time.RFC3339Nano), h.executionStartedAt.Format(time.RFC3339Nano))
	}
	if h.deliveredAt != nil {
		return TemporalHistory{}, invalidInput("finalization date cannot change after delivery")
	}
	h.finalizedAt = &at
	return h, nil
}

func (h TemporalHistory) WithDelivered(at time.Time) (TemporalHistory, error) {
	if h.finalizedAt == nil {
		return TemporalHistory{}, invalidInput("delivery date requires a finalization date")
	}
	if at.Before(*h.finalizedAt) {
		return TemporalHistory{}, invalidInput("delivery %s cannot precede finalization %s", at.Format(time.RFC3339Nano), h.finalizedAt.Format(time.RFC3339Nano))
	}
	h.deliveredAt = &at
	return h, nil
}

func (h TemporalHistory) CreatedAt() time.Time { return h.createdAt }

func (h TemporalHistory) ExecutionStartedAt() *time.Time { return copyTime(h.executionStartedAt) }

func (h TemporalHistory) FinalizedAt() *time.Time { return copyTime(h.finalizedAt) }

func (h TemporalHistory) DeliveredAt() *time.Time { return copyTime(h.deliveredAt) }

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
