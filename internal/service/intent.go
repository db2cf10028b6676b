package service

import (
	"fmt"

	"github.com/pkordes/tabi-shiori/internal/domain"
)

// Op names a mutation in its serialized form.
type Op string

const (
	OpSetTitle           Op = "set_title"
	OpAddDate            Op = "add_date"
	OpRemoveDate         Op = "remove_date"
	OpAddSpot            Op = "add_spot"
	OpRemoveSpot         Op = "remove_spot"
	OpAddDay             Op = "add_day"
	OpRemoveDay          Op = "remove_day"
	OpAddScheduleItem    Op = "add_schedule_item"
	OpUpdateScheduleItem Op = "update_schedule_item"
	OpRemoveScheduleItem Op = "remove_schedule_item"
	OpUpdateTransport    Op = "update_transport"
	OpAddTodo            Op = "add_todo"
	OpRemoveTodo         Op = "remove_todo"
	OpAddItem            Op = "add_item"
	OpRemoveItem         Op = "remove_item"
	OpAddHotel           Op = "add_hotel"
	OpUpdateHotel        Op = "update_hotel"
	OpRemoveHotel        Op = "remove_hotel"
	OpAddEmergency       Op = "add_emergency"
	OpUpdateEmergency    Op = "update_emergency"
	OpRemoveEmergency    Op = "remove_emergency"
)

// Intent is a serializable request to mutate a trip, as sent by the HTTP
// adapter and the CLI. Which fields are read depends on Op.
//
// Hotels and emergencies are addressed by ID when it is set and by Index
// otherwise.
type Intent struct {
	Op        Op                    `json:"op"`
	Title     string                `json:"title,omitempty"`
	Date      string                `json:"date,omitempty"`
	DayID     string                `json:"dayId,omitempty"`
	ItemID    string                `json:"itemId,omitempty"`
	ID        string                `json:"id,omitempty"`
	Index     *int                  `json:"index,omitempty"`
	Text      string                `json:"text,omitempty"`
	Spot      *domain.Spot          `json:"spot,omitempty"`
	Item      *ScheduleItemInput    `json:"item,omitempty"`
	Patch     *ScheduleItemPatch    `json:"patch,omitempty"`
	Transport *domain.TransportType `json:"transport,omitempty"` // nil clears
	Hotel     *domain.Hotel         `json:"hotel,omitempty"`
	Emergency *domain.Emergency     `json:"emergency,omitempty"`
}

// Apply dispatches in to the matching operation. It returns
// domain.ErrValidation when the op is unknown or the payload the op needs is
// missing altogether; input the operation rejects is still a silent no-op.
func Apply(t domain.Trip, in Intent) (domain.Trip, error) {
	switch in.Op {
	case OpSetTitle:
		return SetTitle(t, in.Title), nil
	case OpAddDate:
		return AddDate(t, in.Date), nil
	case OpRemoveDate:
		return RemoveDate(t, in.Date), nil
	case OpAddSpot:
		if in.Spot == nil {
			return t, missing(in.Op, "spot")
		}
		return AddSpot(t, *in.Spot), nil
	case OpRemoveSpot:
		if in.Index == nil {
			return t, missing(in.Op, "index")
		}
		return RemoveSpot(t, *in.Index), nil
	case OpAddDay:
		return AddDaySchedule(t, in.Date), nil
	case OpRemoveDay:
		return RemoveDaySchedule(t, in.DayID), nil
	case OpAddScheduleItem:
		if in.Item == nil {
			return t, missing(in.Op, "item")
		}
		return AddScheduleItem(t, in.DayID, *in.Item), nil
	case OpUpdateScheduleItem:
		if in.Patch == nil {
			return t, missing(in.Op, "patch")
		}
		return UpdateScheduleItem(t, in.DayID, in.ItemID, *in.Patch), nil
	case OpRemoveScheduleItem:
		return RemoveScheduleItem(t, in.DayID, in.ItemID), nil
	case OpUpdateTransport:
		var transport domain.TransportType
		if in.Transport != nil {
			transport = *in.Transport
		}
		return UpdateTransport(t, in.DayID, in.ItemID, transport), nil
	case OpAddTodo:
		return AddTodo(t, in.Text), nil
	case OpRemoveTodo:
		if in.Index == nil {
			return t, missing(in.Op, "index")
		}
		return RemoveTodo(t, *in.Index), nil
	case OpAddItem:
		return AddItem(t, in.Text), nil
	case OpRemoveItem:
		if in.Index == nil {
			return t, missing(in.Op, "index")
		}
		return RemoveItem(t, *in.Index), nil
	case OpAddHotel:
		if in.Hotel == nil {
			return t, missing(in.Op, "hotel")
		}
		return AddHotel(t, *in.Hotel), nil
	case OpUpdateHotel:
		if in.Hotel == nil {
			return t, missing(in.Op, "hotel")
		}
		if in.ID != "" {
			return UpdateHotelByID(t, in.ID, *in.Hotel), nil
		}
		if in.Index == nil {
			return t, missing(in.Op, "id or index")
		}
		return UpdateHotel(t, *in.Index, *in.Hotel), nil
	case OpRemoveHotel:
		if in.ID != "" {
			return RemoveHotelByID(t, in.ID), nil
		}
		if in.Index == nil {
			return t, missing(in.Op, "id or index")
		}
		return RemoveHotel(t, *in.Index), nil
	case OpAddEmergency:
		if in.Emergency == nil {
			return t, missing(in.Op, "emergency")
		}
		return AddEmergency(t, *in.Emergency), nil
	case OpUpdateEmergency:
		if in.Emergency == nil {
			return t, missing(in.Op, "emergency")
		}
		if in.ID != "" {
			return UpdateEmergencyByID(t, in.ID, *in.Emergency), nil
		}
		if in.Index == nil {
			return t, missing(in.Op, "id or index")
		}
		return UpdateEmergency(t, *in.Index, *in.Emergency), nil
	case OpRemoveEmergency:
		if in.ID != "" {
			return RemoveEmergencyByID(t, in.ID), nil
		}
		if in.Index == nil {
			return t, missing(in.Op, "id or index")
		}
		return RemoveEmergency(t, *in.Index), nil
	}
	return t, fmt.Errorf("%w: unknown op %q", domain.ErrValidation, in.Op)
}

func missing(op Op, field string) error {
	return fmt.Errorf("%w: %s requires %s", domain.ErrValidation, op, field)
}
