// Copyright 2026 The Diorama Authors. All rights reserved.

// Package driver defines a set of interfaces encompassing
// the GPU functionality that scene rendering requires.
// It is designed to allow graphics APIs to be implemented
// in a mostly straightforward manner.
package driver

import (
	"errors"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Driver is the interface that provides methods for
// loading and unloading an underlying implementation.
type Driver interface {
	// Open initializes the driver.
	// If it succeeds, further calls with the same receiver
	// have no effect and must return the same GPU instance.
	// Implementations may require that a graphics context
	// be current on the calling thread; such preconditions
	// are documented by the implementation.
	// Callers should assume that Open is not safe for
	// parallel execution.
	Open() (GPU, error)

	// Name returns the name of the driver.
	// It must not cause the driver to be opened.
	Name() string

	// Close deinitializes the driver.
	// Closing a driver that is not open has no effect.
	// Callers should assume that Close is not safe for
	// parallel execution.
	Close()
}

// GPU is the interface that exposes a device opened by a
// Driver. All resource creation goes through it.
type GPU interface {
	// NewProgram compiles and links a shading program from
	// vertex and fragment stage sources.
	NewProgram(vertexSrc, fragmentSrc string) (Program, error)

	// NewTexture creates a 2D texture from decoded image
	// data and generates its full mipmap chain.
	// The texture is configured with wrap-repeat addressing
	// on both axes and linear min/mag filtering.
	NewTexture(img *Image) (Texture, error)

	// NewMesh uploads indexed geometry.
	NewMesh(data *MeshData) (Mesh, error)

	// Limits returns the limits of the device.
	Limits() Limits

	// Viewport sets the drawable region to the given size
	// in pixels.
	Viewport(width, height int)

	// Clear clears the color buffer to the given value and
	// the depth buffer to its maximum.
	Clear(r, g, b, a float32)
}

// Program is the interface that represents a linked shading
// program. Values are pushed by uniform name; names may use
// array-index and struct-field syntax, such as
// "lightSources[0].position".
// Setting a name the program does not declare (or that the
// linker discarded) is a silent no-op.
type Program interface {
	// Use makes the program current.
	// It must be called before any Set method takes effect
	// and before drawing meshes that rely on the program.
	Use()

	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetBool(name string, v bool)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, v mgl32.Mat4)

	// Free invalidates the program and releases its
	// resources.
	Free()
}

// Texture is the interface that represents an immutable 2D
// texture with a full mipmap chain.
type Texture interface {
	// Bind binds the texture to the given texture unit.
	// unit must be in [0, Limits.MaxTextureUnits).
	Bind(unit int) error

	// Free invalidates the texture and releases its
	// resources.
	Free()
}

// Mesh is the interface that represents uploaded indexed
// geometry.
type Mesh interface {
	// Draw renders count indices starting at index first,
	// using whatever program and uniform state is current.
	Draw(first, count int)

	// Len returns the total number of indices.
	Len() int

	// Free invalidates the mesh and releases its resources.
	Free()
}

// Limits describes the limits of a GPU.
type Limits struct {
	// MaxTextureUnits is the number of texture units that
	// can be bound simultaneously. At least 16.
	MaxTextureUnits int

	// MaxTextureSize is the maximum width/height of a 2D
	// texture, in pixels.
	MaxTextureSize int
}

// Image is decoded image data as consumed by GPU.NewTexture.
// Pix holds tightly packed 8-bit RGBA pixels in row-major
// order, regardless of the source channel count; Channels
// records the source layout (3 for RGB, 4 for RGBA) so that
// implementations can pick a matching internal format.
type Image struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int
}

// Vertex layout of MeshData.Verts. Attributes are
// interleaved per vertex as position, normal, uv.
const (
	PositionFloats = 3
	NormalFloats   = 3
	TexCoordFloats = 2
	VertexFloats   = PositionFloats + NormalFloats + TexCoordFloats
)

// MeshData is indexed geometry as consumed by GPU.NewMesh.
// Verts holds VertexFloats float32 values per vertex;
// Indices refer to vertices, three per triangle.
type MeshData struct {
	Verts   []float32
	Indices []uint32
}

// ErrNotInstalled means that a library required for the
// driver to work is not present in the system.
var ErrNotInstalled = errors.New("driver: missing required library")

// ErrNoContext means that the driver requires a current
// graphics context on the calling thread and none was
// found.
var ErrNoContext = errors.New("driver: no current graphics context")

// ErrFatal means that the driver is in an unrecoverable
// state. Upon encountering such an error, the application
// must destroy everything that it created using the
// driver's GPU and then call the Close method. It may call
// Open again to reinitialize the driver for further use.
var ErrFatal = errors.New("driver: fatal error")

// Drivers returns the registered Drivers.
// Client code imports specific driver packages, and then
// calls this function to select one. Drivers that do not
// register themselves on init will not be considered for
// selection.
func Drivers() []Driver {
	mu.Lock()
	defer mu.Unlock()
	drv := make([]Driver, len(drivers))
	copy(drv, drivers)
	return drv
}

// Register registers a Driver.
// Driver implementations are expected to call Register
// exactly once, from an init function.
// If a driver with the same name has already been
// registered, it will be replaced by drv.
func Register(drv Driver) {
	mu.Lock()
	defer mu.Unlock()
	for i := range drivers {
		if drivers[i].Name() == drv.Name() {
			drivers[i] = drv
			return
		}
	}
	drivers = append(drivers, drv)
}

// Variables used for driver registration.
var (
	mu      sync.Mutex
	drivers = make([]Driver, 0, 1)
)
