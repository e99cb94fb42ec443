package view_test

import (
	"fmt"

	"lab-dashboard/internal/view"
)

// A five-member union used across the engine tests.

type shapeKind string

const (
	kindCircle   shapeKind = "circle"
	kindSquare   shapeKind = "square"
	kindTriangle shapeKind = "triangle"
	kindLine     shapeKind = "line"
	kindDot      shapeKind = "dot"
)

type shape interface {
	view.Variant[shapeKind]
	isShape()
}

type circle struct{ R int }
type square struct{ Side int }
type triangle struct{ Base, Height int }
type line struct{ Len int }
type dot struct{}

func (circle) Kind() shapeKind   { return kindCircle }
func (square) Kind() shapeKind   { return kindSquare }
func (triangle) Kind() shapeKind { return kindTriangle }
func (line) Kind() shapeKind     { return kindLine }
func (dot) Kind() shapeKind      { return kindDot }

func (circle) isShape()   {}
func (square) isShape()   {}
func (triangle) isShape() {}
func (line) isShape()     {}
func (dot) isShape()      {}

// impostor reports a declared kind but is not a member of shape.
type impostor struct{}

func (impostor) Kind() shapeKind { return kindCircle }

// liar is a member that reports another member's kind.
type liar struct{}

func (liar) Kind() shapeKind { return kindSquare }
func (liar) isShape()        {}

func shapeKinds() []shapeKind {
	return view.KindsOf[shapeKind]([]shape{circle{}, square{}, triangle{}, line{}, dot{}})
}

func describeCircle(c circle) string     { return fmt.Sprintf("circle r=%d", c.R) }
func describeSquare(s square) string     { return fmt.Sprintf("square side=%d", s.Side) }
func describeTriangle(t triangle) string { return fmt.Sprintf("triangle %dx%d", t.Base, t.Height) }
func describeLine(l line) string         { return fmt.Sprintf("line len=%d", l.Len) }
func describeDot(dot) string             { return "dot" }

func shapeBindings() []view.Binding[shapeKind, shape, string] {
	return []view.Binding[shapeKind, shape, string]{
		view.Bind[shapeKind, shape](kindCircle, describeCircle),
		view.Bind[shapeKind, shape](kindSquare, describeSquare),
		view.Bind[shapeKind, shape](kindTriangle, describeTriangle),
		view.Bind[shapeKind, shape](kindLine, describeLine),
		view.Bind[shapeKind, shape](kindDot, describeDot),
	}
}

func shapeRegistry() *view.Registry[shapeKind, shape, string] {
	return view.MustRegistry("shape", shapeKinds(), shapeBindings()...)
}
