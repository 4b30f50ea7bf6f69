// Copyright 2026 The Diorama Authors. All rights reserved.

package engine

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegister(t *testing.T) {
	gpu := new(testGPU)
	reg := NewTextureRegistry(gpu)

	rgba := writeRGBA(t, "granite")
	if err := reg.Register(rgba, "granite"); err != nil {
		t.Fatalf("Register: unexpected error:\n%#v", err)
	}
	rgb := writeRGB(t, "cardboard")
	if err := reg.Register(rgb, "cardboard"); err != nil {
		t.Fatalf("Register: unexpected error:\n%#v", err)
	}
	if n := reg.Len(); n != 2 {
		t.Fatalf("Len:\nhave %d\nwant 2", n)
	}

	for i, tag := range [2]string{"granite", "cardboard"} {
		slot, ok := reg.FindSlot(tag)
		if !ok || slot != i {
			t.Fatalf("FindSlot(%q):\nhave %d, %v\nwant %d, true", tag, slot, ok, i)
		}
		tex, ok := reg.FindHandle(tag)
		if !ok || tex == nil {
			t.Fatalf("FindHandle(%q):\nhave %v, %v\nwant non-nil, true", tag, tex, ok)
		}
	}
	if gpu.textures[0].img.Channels != 4 {
		t.Fatalf("Register: channel count:\nhave %d\nwant 4", gpu.textures[0].img.Channels)
	}
	if gpu.textures[1].img.Channels != 3 {
		t.Fatalf("Register: channel count:\nhave %d\nwant 3", gpu.textures[1].img.Channels)
	}
}

func TestRegisterUnsupported(t *testing.T) {
	reg := NewTextureRegistry(new(testGPU))
	gray := writeGray(t, "craft_top")

	err := reg.Register(gray, "craft_top")
	switch {
	case err == nil:
		t.Fatal("Register: unexpected success")
	case !errors.Is(err, ErrUnsupportedFormat):
		t.Fatalf("Register: unexpected error:\n%#v", err)
	case !strings.HasPrefix(err.Error(), texPrefix):
		t.Fatalf("Register: unexpected error prefix:\n%#v", err)
	}
	if n := reg.Len(); n != 0 {
		t.Fatalf("Len after failed Register:\nhave %d\nwant 0", n)
	}
	if _, ok := reg.FindSlot("craft_top"); ok {
		t.Fatal("FindSlot after failed Register: unexpected match")
	}
}

func TestRegisterDecode(t *testing.T) {
	reg := NewTextureRegistry(new(testGPU))

	missing := filepath.Join(t.TempDir(), "nonexistent.png")
	err := reg.Register(missing, "missing")
	switch {
	case err == nil:
		t.Fatal("Register: unexpected success")
	case !errors.Is(err, ErrDecode):
		t.Fatalf("Register: unexpected error:\n%#v", err)
	}
	if n := reg.Len(); n != 0 {
		t.Fatalf("Len after failed Register:\nhave %d\nwant 0", n)
	}
}

func TestRegisterLimit(t *testing.T) {
	reg := NewTextureRegistry(new(testGPU))
	path := writeRGBA(t, "tile")

	for i := 0; i < MaxTextures; i++ {
		tag := fmt.Sprintf("tile-%d", i)
		if err := reg.Register(path, tag); err != nil {
			t.Fatalf("Register #%d: unexpected error:\n%#v", i, err)
		}
	}
	err := reg.Register(path, "one-too-many")
	switch {
	case err == nil:
		t.Fatal("Register: unexpected success")
	case !errors.Is(err, ErrTextureLimit):
		t.Fatalf("Register: unexpected error:\n%#v", err)
	}
	if n := reg.Len(); n != MaxTextures {
		t.Fatalf("Len:\nhave %d\nwant %d", n, MaxTextures)
	}
	if _, ok := reg.FindSlot("one-too-many"); ok {
		t.Fatal("FindSlot after failed Register: unexpected match")
	}
}

func TestRegisterUploadFailure(t *testing.T) {
	gpu := &testGPU{failTex: errors.New("out of memory")}
	reg := NewTextureRegistry(gpu)
	path := writeRGBA(t, "glass")

	err := reg.Register(path, "glass")
	switch {
	case err == nil:
		t.Fatal("Register: unexpected success")
	case !strings.HasPrefix(err.Error(), texPrefix):
		t.Fatalf("Register: unexpected error prefix:\n%#v", err)
	}
	if n := reg.Len(); n != 0 {
		t.Fatalf("Len after failed Register:\nhave %d\nwant 0", n)
	}
}

func TestBindAll(t *testing.T) {
	gpu := new(testGPU)
	reg := NewTextureRegistry(gpu)
	path := writeRGBA(t, "wood")

	const n = 3
	for i := 0; i < n; i++ {
		if err := reg.Register(path, fmt.Sprintf("wood-%d", i)); err != nil {
			t.Fatalf("Register: unexpected error:\n%#v", err)
		}
	}
	if err := reg.BindAll(); err != nil {
		t.Fatalf("BindAll: unexpected error:\n%#v", err)
	}
	for i := 0; i < n; i++ {
		if unit := gpu.textures[i].unit; unit != i {
			t.Fatalf("BindAll: unit of texture %d:\nhave %d\nwant %d", i, unit, i)
		}
	}
}

func TestFindMiss(t *testing.T) {
	reg := NewTextureRegistry(new(testGPU))

	if slot, ok := reg.FindSlot("granite"); ok || slot != -1 {
		t.Fatalf("FindSlot on empty registry:\nhave %d, %v\nwant -1, false", slot, ok)
	}
	if tex, ok := reg.FindHandle("granite"); ok || tex != nil {
		t.Fatalf("FindHandle on empty registry:\nhave %v, %v\nwant nil, false", tex, ok)
	}

	if err := reg.Register(writeRGBA(t, "granite"), "granite"); err != nil {
		t.Fatalf("Register: unexpected error:\n%#v", err)
	}
	if slot, ok := reg.FindSlot("lemon_skin"); ok || slot != -1 {
		t.Fatalf("FindSlot miss:\nhave %d, %v\nwant -1, false", slot, ok)
	}
}

func TestDuplicateTag(t *testing.T) {
	reg := NewTextureRegistry(new(testGPU))
	path := writeRGBA(t, "dup")

	if err := reg.Register(path, "dup"); err != nil {
		t.Fatalf("Register: unexpected error:\n%#v", err)
	}
	if err := reg.Register(path, "dup"); err != nil {
		t.Fatalf("Register: unexpected error:\n%#v", err)
	}
	if slot, ok := reg.FindSlot("dup"); !ok || slot != 0 {
		t.Fatalf("FindSlot with duplicate tags:\nhave %d, %v\nwant 0, true", slot, ok)
	}
}

func TestReleaseAll(t *testing.T) {
	gpu := new(testGPU)
	reg := NewTextureRegistry(gpu)
	path := writeRGBA(t, "lemon_skin")

	if err := reg.Register(path, "lemon_skin"); err != nil {
		t.Fatalf("Register: unexpected error:\n%#v", err)
	}
	reg.ReleaseAll()
	if n := reg.Len(); n != 0 {
		t.Fatalf("Len after ReleaseAll:\nhave %d\nwant 0", n)
	}
	if !gpu.textures[0].freed {
		t.Fatal("ReleaseAll: texture not freed")
	}
	// Idempotent.
	reg.ReleaseAll()

	// The registry must be usable again.
	if err := reg.Register(path, "lemon_skin"); err != nil {
		t.Fatalf("Register after ReleaseAll: unexpected error:\n%#v", err)
	}
	if slot, ok := reg.FindSlot("lemon_skin"); !ok || slot != 0 {
		t.Fatalf("FindSlot after re-Register:\nhave %d, %v\nwant 0, true", slot, ok)
	}
}
