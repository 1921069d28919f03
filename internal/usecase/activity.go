package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/audit"
	"github.com/riskibarqy/golf-league/internal/domain/timeline"
	"github.com/riskibarqy/golf-league/internal/platform/id"
)

// Activity describes what a committed write should leave behind in the
// timeline and the audit sink.
type Activity struct {
	SeasonID   string
	Kind       timeline.Kind
	ActorID    string
	SubjectID  string
	Summary    string
	Action     string
	TargetType string
	Metadata   map[string]string
}

type ActivityRecorder struct {
	timelineRepo timeline.Repository
	auditSink    audit.Sink
	effects      *SideEffects
	idGen        id.Generator
	now          func() time.Time
}

func NewActivityRecorder(timelineRepo timeline.Repository, auditSink audit.Sink, effects *SideEffects, idGen id.Generator) *ActivityRecorder {
	return &ActivityRecorder{
		timelineRepo: timelineRepo,
		auditSink:    auditSink,
		effects:      effects,
		idGen:        idGen,
		now:          time.Now,
	}
}

// Record fires the timeline and audit writes for activity without waiting.
func (r *ActivityRecorder) Record(ctx context.Context, activity Activity) {
	if r == nil {
		return
	}

	occurredAt := r.now().UTC()
	effects := make([]Effect, 0, 2)

	if r.timelineRepo != nil && activity.SeasonID != "" && activity.Kind != "" {
		effects = append(effects, Effect{
			Name: "timeline." + string(activity.Kind),
			Run: func(ctx context.Context) error {
				entryID, err := r.idGen.NewID()
				if err != nil {
					return fmt.Errorf("generate timeline entry id: %w", err)
				}
				return r.timelineRepo.Append(ctx, timeline.Entry{
					ID:        entryID,
					SeasonID:  activity.SeasonID,
					Kind:      activity.Kind,
					ActorID:   activity.ActorID,
					SubjectID: activity.SubjectID,
					Summary:   activity.Summary,
					CreatedAt: occurredAt,
				})
			},
		})
	}

	if r.auditSink != nil && activity.Action != "" {
		effects = append(effects, Effect{
			Name: "audit." + activity.Action,
			Run: func(ctx context.Context) error {
				return r.auditSink.Record(ctx, audit.Entry{
					Action:     activity.Action,
					ActorID:    activity.ActorID,
					TargetType: activity.TargetType,
					TargetID:   activity.SubjectID,
					Metadata:   activity.Metadata,
					OccurredAt: occurredAt,
				})
			},
		})
	}

	r.effects.Dispatch(ctx, effects...)
}
