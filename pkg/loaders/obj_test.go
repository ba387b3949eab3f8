package loaders

import (
	"strings"
	"testing"
)

func TestParseOBJTriangle(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	mesh, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mesh.Vertices) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(mesh.Vertices))
	}
	if len(mesh.Faces) != 3 {
		t.Fatalf("expected 1 triangle (3 indices), got %d", len(mesh.Faces))
	}
}

func TestParseOBJQuadTriangulates(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1/1/1 2/2/1 3/3/1 4/4/1\n"
	mesh, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mesh.Faces) != 6 {
		t.Fatalf("expected a quad to fan-triangulate into 6 indices, got %d", len(mesh.Faces))
	}
}

func TestParseOBJIgnoresUnknownDirectives(t *testing.T) {
	src := "mtllib foo.mtl\nv 0 0 0\nv 1 0 0\nv 0 1 0\nusemtl bar\nf 1 2 3\n"
	mesh, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mesh.Vertices) != 3 || len(mesh.Faces) != 3 {
		t.Fatal("unknown directives should be silently skipped")
	}
}

func TestParseOBJRejectsOutOfRangeIndex(t *testing.T) {
	src := "v 0 0 0\nf 1 2 3\n"
	if _, err := ParseOBJ(strings.NewReader(src)); err == nil {
		t.Fatal("expected an error for an out-of-range face index")
	}
}

func TestParseOBJNegativeIndices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"
	mesh, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mesh.Faces) != 3 {
		t.Fatal("expected negative indices to resolve relative to the end of the vertex list")
	}
}
