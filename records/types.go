// Package records declares the example records as Go structs.
//
// The analyzer tests load this package and compare the computed layouts with
// what the compiler reports.
package records

// CFoo is declared largest member first, so only trailing padding is needed.
type CFoo struct {
	A int64
	B int32
	C int16
	D int8
}

// Foo puts a 64-bit member between 32-bit members.
type Foo struct {
	A32Bit      uint32
	A64Bit      uint64
	A16Bit      uint16
	AFinal32Bit uint32
}

// Bar holds the same members as Foo with the 32-bit ones grouped.
type Bar struct {
	A32Bit      uint32
	AFinal32Bit uint32
	A64Bit      uint64
	A16Bit      uint16
}

// Billy surrounds a 16-bit member with bytes.
type Billy struct {
	AChar01 uint8
	A16Bit  uint16
	AChar02 uint8
	AChar03 uint8
}

// Pair is filled in by an assembly routine in the C original.
type Pair struct {
	X int32
	Y int32
}

// Node mixes word-sized members with a short array.
type Node struct {
	Name  string
	Next  *Node
	Count int
	Flags [3]byte
}

// Wrapped nests Billy and an array of Pair.
type Wrapped struct {
	Tag   bool
	Inner Billy
	Pairs [2]Pair
	Last  int16
}

// Marker has no fields and therefore no layout to show.
type Marker struct{}

// Tagged ends with a zero-size field.
type Tagged struct {
	ID  int64
	Tag struct{}
}

// Header has a blank field next to a field whose name looks like one.
type Header struct {
	Magic uint32
	_     uint16
	_1    uint16
	Size  uint64
}

// Status is not a struct and is ignored.
type Status uint8

type point struct {
	x, y int16
}

// Origin keeps point referenced.
var Origin = point{}
