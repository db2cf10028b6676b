package service

import (
	"slices"
	"strings"

	"github.com/pkordes/tabi-shiori/internal/domain"
)

// AddTodo appends text to the to-do list. Blank text is ignored.
func AddTodo(t domain.Trip, text string) domain.Trip {
	text = cleanText(text)
	if text == "" {
		return t
	}
	out := t.Clone()
	out.Todos = append(out.Todos, text)
	return out
}

// RemoveTodo removes the to-do at index.
func RemoveTodo(t domain.Trip, index int) domain.Trip {
	if !inRange(index, len(t.Todos)) {
		return t
	}
	out := t.Clone()
	out.Todos = slices.Delete(out.Todos, index, index+1)
	return out
}

// AddItem appends text to the packing list. Blank text is ignored.
func AddItem(t domain.Trip, text string) domain.Trip {
	text = cleanText(text)
	if text == "" {
		return t
	}
	out := t.Clone()
	out.Items = append(out.Items, text)
	return out
}

// RemoveItem removes the packing-list entry at index.
func RemoveItem(t domain.Trip, index int) domain.Trip {
	if !inRange(index, len(t.Items)) {
		return t
	}
	out := t.Clone()
	out.Items = slices.Delete(out.Items, index, index+1)
	return out
}

func inRange(index, n int) bool {
	return index >= 0 && index < n
}

// cleanText trims s and replaces invalid UTF-8 with U+FFFD.
func cleanText(s string) string {
	return validText(strings.TrimSpace(s))
}

func validText(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

func cleanSpot(s domain.Spot) domain.Spot {
	s.Name = validText(s.Name)
	s.PlaceID = validText(s.PlaceID)
	return s
}
