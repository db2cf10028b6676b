package service

import (
	"slices"

	"github.com/pkordes/tabi-shiori/internal/domain"
)

// Hotels and emergency contacts were historically addressed by list
// position. They now get a stable id on add; the index-based operations are
// kept for callers that still address entries by position, and they preserve
// the id of the entry they replace.

// AddHotel appends a hotel with a fresh id. Name and address are required.
func AddHotel(t domain.Trip, h domain.Hotel) domain.Trip {
	h, ok := cleanHotel(h)
	if !ok {
		return t
	}
	h.ID = domain.NewID()
	out := t.Clone()
	out.Hotels = append(out.Hotels, h)
	return out
}

// UpdateHotel replaces the hotel at index.
func UpdateHotel(t domain.Trip, index int, h domain.Hotel) domain.Trip {
	if !inRange(index, len(t.Hotels)) {
		return t
	}
	h, ok := cleanHotel(h)
	if !ok {
		return t
	}
	out := t.Clone()
	h.ID = out.Hotels[index].ID
	out.Hotels[index] = h
	return out
}

// RemoveHotel removes the hotel at index.
func RemoveHotel(t domain.Trip, index int) domain.Trip {
	if !inRange(index, len(t.Hotels)) {
		return t
	}
	out := t.Clone()
	out.Hotels = slices.Delete(out.Hotels, index, index+1)
	return out
}

// UpdateHotelByID replaces the hotel with the given id.
func UpdateHotelByID(t domain.Trip, id string, h domain.Hotel) domain.Trip {
	return UpdateHotel(t, hotelIndex(t, id), h)
}

// RemoveHotelByID removes the hotel with the given id.
func RemoveHotelByID(t domain.Trip, id string) domain.Trip {
	return RemoveHotel(t, hotelIndex(t, id))
}

// AddEmergency appends a contact with a fresh id. Name and phone are required.
func AddEmergency(t domain.Trip, e domain.Emergency) domain.Trip {
	e, ok := cleanEmergency(e)
	if !ok {
		return t
	}
	e.ID = domain.NewID()
	out := t.Clone()
	out.Emergencies = append(out.Emergencies, e)
	return out
}

// UpdateEmergency replaces the contact at index.
func UpdateEmergency(t domain.Trip, index int, e domain.Emergency) domain.Trip {
	if !inRange(index, len(t.Emergencies)) {
		return t
	}
	e, ok := cleanEmergency(e)
	if !ok {
		return t
	}
	out := t.Clone()
	e.ID = out.Emergencies[index].ID
	out.Emergencies[index] = e
	return out
}

// RemoveEmergency removes the contact at index.
func RemoveEmergency(t domain.Trip, index int) domain.Trip {
	if !inRange(index, len(t.Emergencies)) {
		return t
	}
	out := t.Clone()
	out.Emergencies = slices.Delete(out.Emergencies, index, index+1)
	return out
}

// UpdateEmergencyByID replaces the contact with the given id.
func UpdateEmergencyByID(t domain.Trip, id string, e domain.Emergency) domain.Trip {
	return UpdateEmergency(t, emergencyIndex(t, id), e)
}

// RemoveEmergencyByID removes the contact with the given id.
func RemoveEmergencyByID(t domain.Trip, id string) domain.Trip {
	return RemoveEmergency(t, emergencyIndex(t, id))
}

func cleanHotel(h domain.Hotel) (domain.Hotel, bool) {
	h = h.Clone()
	h.Name = cleanText(h.Name)
	h.Address = cleanText(h.Address)
	h.Memo = cleanText(h.Memo)
	return h, h.Name != "" && h.Address != ""
}

func cleanEmergency(e domain.Emergency) (domain.Emergency, bool) {
	e.Name = cleanText(e.Name)
	e.Phone = cleanText(e.Phone)
	e.Memo = cleanText(e.Memo)
	return e, e.Name != "" && e.Phone != ""
}

// hotelIndex returns -1 for an empty or unknown id, which every index-based
// operation treats as out of range.
func hotelIndex(t domain.Trip, id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(t.Hotels, func(h domain.Hotel) bool { return h.ID == id })
}

func emergencyIndex(t domain.Trip, id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(t.Emergencies, func(e domain.Emergency) bool { return e.ID == id })
}
