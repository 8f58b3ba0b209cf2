package entity

import (
	"gridsnake/game/types"
)

type Color struct {
	R, G, B uint8
}

// Snake body is stored head-first: Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Point
	Color     Color
}

func NewSnake(startPos types.Point, color Color) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.Point{}, // waits for the first input
		Color:     color,
	}
}

// Move prepends the new head.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveTail drops the last segment, never the head.
func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// HitsSelf reports whether the head overlaps any other segment.
func (s *Snake) HitsSelf() bool {
	head := s.GetHead()
	for _, part := range s.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body, safe to hand to a renderer.
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
