package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/quevivasbien/spectral-pathtracer/pkg/core"
)

// Mesh holds a flat vertex/face-index payload suitable for
// geometry.NewTriangleMesh: every face is fan-triangulated into groups of
// three indices into Vertices.
type Mesh struct {
	Vertices []core.Vec3
	Faces    []int
}

// LoadOBJ parses a minimal Wavefront OBJ file per spec §6: `v x y z [w]`,
// `vn x y z`, and `f` lines in the `a`, `a/b`, `a/b/c`, or `a//c` per-vertex
// forms, triangulated by a vertex fan for faces with more than 3 corners.
// Normal (vn) and texture-coordinate (vt) lines are skipped — the mesh
// recomputes flat per-triangle normals (geometry.Triangle's convention) on
// load, matching the teacher's fan-triangulation approach in
// mrigankad-gorenderengine's io/obj.go. Unknown directives are ignored.
func LoadOBJ(filename string) (*Mesh, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer f.Close()
	return ParseOBJ(f)
}

// ParseOBJ parses OBJ-format geometry from r, for callers that already have
// the content in memory (e.g. tests, embedded scenes).
func ParseOBJ(r io.Reader) (*Mesh, error) {
	mesh := &Mesh{}
	var positions []core.Vec3

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: malformed vertex %q", lineNo, line)
			}
			x, err1 := strconv.ParseFloat(fields[1], 64)
			y, err2 := strconv.ParseFloat(fields[2], 64)
			z, err3 := strconv.ParseFloat(fields[3], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("obj line %d: non-numeric vertex %q", lineNo, line)
			}
			positions = append(positions, core.NewVec3(x, y, z))

		case "vn":
			// Normals are accepted but not parsed or stored: geometry.Triangle
			// derives its own flat normal from the winding order.

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: face needs at least 3 vertices", lineNo)
			}
			indices := make([]int, 0, len(fields)-1)
			for _, spec := range fields[1:] {
				idx, err := parseFaceIndex(spec, len(positions))
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
				}
				indices = append(indices, idx)
			}
			for i := 2; i < len(indices); i++ {
				mesh.Faces = append(mesh.Faces, indices[0], indices[i-1], indices[i])
			}

		default:
			// unknown directive, ignored per spec §6
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("obj file contains no faces")
	}
	mesh.Vertices = positions
	return mesh, nil
}

// parseFaceIndex extracts the position index from a face vertex spec like
// "3", "3/2", "3/2/1", or "3//1", supporting OBJ's negative (relative-to-end)
// indexing, and converts from OBJ's 1-based indexing to 0-based.
func parseFaceIndex(spec string, vertexCount int) (int, error) {
	posPart := strings.SplitN(spec, "/", 2)[0]
	idx, err := strconv.Atoi(posPart)
	if err != nil {
		return 0, fmt.Errorf("malformed face vertex %q", spec)
	}
	if idx < 0 {
		idx = vertexCount + idx + 1
	}
	if idx < 1 || idx > vertexCount {
		return 0, fmt.Errorf("face vertex index %d out of range (have %d vertices)", idx, vertexCount)
	}
	return idx - 1, nil
}
