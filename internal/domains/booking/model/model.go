package model

import (
	"shareit/shared/failure"
	"shareit/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID       = "id"
	FieldStart    = "start_date"
	FieldEnd      = "end_date"
	FieldItemID   = "item_id"
	FieldBookerID = "booker_id"
	FieldStatus   = "status"

	FieldItemOwnerID = "owner_id"
	ItemTableName    = "items"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Decision maps an owner's verdict onto the terminal status it produces.
func Decision(approve bool) Status {
	if approve {
		return StatusApproved
	}

	return StatusRejected
}

type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState reads a state query value. An empty value means ALL.
func ParseState(value string) (State, error) {
	switch state := State(value); state {
	case "":
		return StateAll, nil
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return state, nil
	default:
		return "", failure.BadRequestf("Unknown state: %s", value)
	}
}

// Scope selects whose bookings a listing returns.
type Scope string

const (
	ScopeBooker Scope = "booker"
	ScopeOwner  Scope = "owner"
)

type Booking struct {
	ID          int64     `db:"id"            json:"id"`
	Start       time.Time `db:"start_date"    json:"start"`
	End         time.Time `db:"end_date"      json:"end"`
	ItemID      int64     `db:"item_id"       json:"item_id"`
	BookerID    int64     `db:"booker_id"     json:"booker_id"`
	Status      Status    `db:"status"        json:"status"`
	ItemName    string    `column:"name"      db:"item_name"     json:"item_name"     table:"items"`
	ItemOwnerID int64     `column:"owner_id"  db:"item_owner_id" json:"item_owner_id" table:"items"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN items ON items.id = bookings.item_id"
}

// IsVisibleTo reports whether userID may read the booking: its booker or the item owner.
func (b Booking) IsVisibleTo(userID int64) bool {
	return b.BookerID == userID || b.ItemOwnerID == userID
}
