package models

import (
	"strconv"
	"strings"
)

// Die represents one die as an immutable, ordered sequence of face values.
// Faces may repeat and may be any integer magnitude; the order is significant
// because roll results are face indexes, not face values.
type Die struct {
	faces []int
}

// NewDie creates a die from the given faces. The slice is copied so the die
// cannot be mutated through the caller's reference.
func NewDie(faces []int) Die {
	copied := make([]int, len(faces))
	copy(copied, faces)

	return Die{faces: copied}
}

// FaceCount returns the number of faces on the die
func (d Die) FaceCount() int {
	return len(d.faces)
}

// Face returns the face value at the given index
func (d Die) Face(index int) int {
	return d.faces[index]
}

// Faces returns a copy of the face values in order
func (d Die) Faces() []int {
	copied := make([]int, len(d.faces))
	copy(copied, d.faces)

	return copied
}

// String renders the die as a comma-separated face list, matching the
// command-line input format
func (d Die) String() string {
	parts := make([]string, len(d.faces))
	for i, face := range d.faces {
		parts[i] = strconv.Itoa(face)
	}

	return strings.Join(parts, ",")
}
