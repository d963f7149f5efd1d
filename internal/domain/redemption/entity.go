package redemption

import (
	"time"

	"github.com/google/uuid"
)

// Record is one scan event. GroupID is the base local-admin of the scanning actor
// and is what storage keys uniqueness on.
type Record struct {
	id        uuid.UUID
	couponID  uuid.UUID
	actorID   uuid.UUID
	groupID   uuid.UUID
	scannedAt time.Time
}

func NewRecord(couponID, actorID, groupID uuid.UUID, now time.Time) *Record {
	return &Record{
		id:        uuid.New(),
		couponID:  couponID,
		actorID:   actorID,
		groupID:   groupID,
		scannedAt: now,
	}
}

func Reconstruct(id, couponID, actorID, groupID uuid.UUID, scannedAt time.Time) *Record {
	return &Record{id: id, couponID: couponID, actorID: actorID, groupID: groupID, scannedAt: scannedAt}
}

func (r *Record) ID() uuid.UUID        { return r.id }
func (r *Record) CouponID() uuid.UUID  { return r.couponID }
func (r *Record) ActorID() uuid.UUID   { return r.actorID }
func (r *Record) GroupID() uuid.UUID   { return r.groupID }
func (r *Record) ScannedAt() time.Time { return r.scannedAt }
