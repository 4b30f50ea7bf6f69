// Copyright 2026 The Diorama Authors. All rights reserved.

// Package engine implements resource registration and
// immediate-mode rendering of static composite scenes.
//
// A Session owns the per-scene resources: a TextureRegistry
// mapping tags to bound texture units, a MaterialRegistry of
// named reflectance property sets and a MeshLibrary of
// uploaded primitives. State pushes per-draw uniform values
// to the shading program; it never caches, and pushed values
// stick until overwritten. Everything runs on the single
// thread that owns the graphics context.
package engine

import (
	"errors"
	"strings"

	"github.com/diorama-gl/diorama"
	"github.com/diorama-gl/diorama/driver"
)

const (
	// MaxTextures is the capacity of a TextureRegistry.
	// It matches the minimum number of simultaneously
	// bound texture units that drivers guarantee.
	MaxTextures = 16

	// MaxLights is the number of light sources the shading
	// program declares.
	MaxLights = diorama.MaxLights
)

var errNoDriver = errors.New("engine: driver not found")

// Open loads any registered driver whose name contains the
// provided name string. It is case-sensitive. If name is the
// empty string, all drivers are considered.
// The caller is responsible for closing the returned driver
// when rendering ends.
func Open(name string) (driver.Driver, driver.GPU, error) {
	drivers := driver.Drivers()
	err := errNoDriver
	for i := range drivers {
		if !strings.Contains(drivers[i].Name(), name) {
			continue
		}
		var gpu driver.GPU
		if gpu, err = drivers[i].Open(); err != nil {
			continue
		}
		return drivers[i], gpu, nil
	}
	return nil, nil, err
}
