package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ShapeList is an ordered collection of shapes hit as a single shape.
// Every member is tested on every ray.
type ShapeList []Shape

// NewShapeList creates a list from the given shapes
func NewShapeList(shapes ...Shape) ShapeList {
	return ShapeList(shapes)
}

// Add appends shapes to the list
func (l *ShapeList) Add(shapes ...Shape) {
	*l = append(*l, shapes...)
}

// Hit returns the nearest intersection across all members
func (l ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
