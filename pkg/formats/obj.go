// Package formats provides parsers for 3D asset file formats.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// OBJ format errors.
var (
	ErrOBJNoGeometry   = errors.New("OBJ file contains no faces")
	ErrOBJIndexRange   = errors.New("OBJ face index out of range")
	ErrOBJMalformed    = errors.New("malformed OBJ directive")
	ErrOBJZeroIndex    = errors.New("OBJ indices are 1-based, found 0")
	ErrOBJShortFace    = errors.New("OBJ face has fewer than 3 vertices")
)

// OBJFaceVertex references the attribute arrays of an OBJ mesh.
// Indices are 0-based after parsing; TexCoord and Normal are -1 when
// the face element does not provide them.
type OBJFaceVertex struct {
	Position int
	TexCoord int
	Normal   int
}

// OBJFace is a single polygonal face. Faces with more than three
// vertices are kept as-is; triangulation is the consumer's job.
type OBJFace struct {
	Vertices []OBJFaceVertex
}

// OBJ represents a parsed Wavefront OBJ file.
type OBJ struct {
	Positions [][3]float32
	TexCoords [][2]float32
	Normals   [][3]float32
	Faces     []OBJFace
}

// HasNormals reports whether any face references a normal.
func (o *OBJ) HasNormals() bool {
	for _, f := range o.Faces {
		for _, v := range f.Vertices {
			if v.Normal >= 0 {
				return true
			}
		}
	}
	return false
}

// HasTexCoords reports whether any face references a texture coordinate.
func (o *OBJ) HasTexCoords() bool {
	for _, f := range o.Faces {
		for _, v := range f.Vertices {
			if v.TexCoord >= 0 {
				return true
			}
		}
	}
	return false
}

// TriangleCount returns the number of triangles after fan triangulation.
func (o *OBJ) TriangleCount() int {
	count := 0
	for _, f := range o.Faces {
		count += len(f.Vertices) - 2
	}
	return count
}

// LoadOBJ reads and parses an OBJ file from disk.
func LoadOBJ(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	obj, err := ParseOBJ(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return obj, nil
}

// ParseOBJ parses Wavefront OBJ data.
//
// Supported directives: v, vt, vn, f. Grouping and material directives
// (o, g, s, usemtl, mtllib) and comments are skipped. Face elements may
// be any of "v", "v/vt", "v//vn" or "v/vt/vn", and indices may be
// negative, counting back from the end of the respective array.
func ParseOBJ(data []byte) (*OBJ, error) {
	obj := &OBJ{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		keyword := fields[0]
		args := fields[1:]

		var err error
		switch keyword {
		case "v":
			err = obj.parsePosition(args)
		case "vt":
			err = obj.parseTexCoord(args)
		case "vn":
			err = obj.parseNormal(args)
		case "f":
			err = obj.parseFace(args)
		default:
			// o, g, s, usemtl, mtllib and anything else
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ data: %w", err)
	}

	if len(obj.Faces) == 0 {
		return nil, ErrOBJNoGeometry
	}

	return obj, nil
}

func (o *OBJ) parsePosition(args []string) error {
	// "v x y z" with an optional w we ignore
	if len(args) < 3 {
		return fmt.Errorf("%w: v needs 3 coordinates, got %d", ErrOBJMalformed, len(args))
	}
	v, err := parseFloats3(args)
	if err != nil {
		return err
	}
	o.Positions = append(o.Positions, v)
	return nil
}

func (o *OBJ) parseTexCoord(args []string) error {
	// "vt u v" with an optional w we ignore; bare "vt u" gets v=0
	if len(args) < 1 {
		return fmt.Errorf("%w: vt needs at least 1 coordinate", ErrOBJMalformed)
	}
	u, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOBJMalformed, err)
	}
	var v float64
	if len(args) > 1 {
		v, err = strconv.ParseFloat(args[1], 32)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrOBJMalformed, err)
		}
	}
	o.TexCoords = append(o.TexCoords, [2]float32{float32(u), float32(v)})
	return nil
}

func (o *OBJ) parseNormal(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: vn needs 3 coordinates, got %d", ErrOBJMalformed, len(args))
	}
	n, err := parseFloats3(args)
	if err != nil {
		return err
	}
	o.Normals = append(o.Normals, n)
	return nil
}

func (o *OBJ) parseFace(args []string) error {
	if len(args) < 3 {
		return ErrOBJShortFace
	}

	face := OBJFace{Vertices: make([]OBJFaceVertex, 0, len(args))}
	for _, elem := range args {
		fv, err := o.parseFaceVertex(elem)
		if err != nil {
			return err
		}
		face.Vertices = append(face.Vertices, fv)
	}

	o.Faces = append(o.Faces, face)
	return nil
}

// parseFaceVertex parses a single "v", "v/vt", "v//vn" or "v/vt/vn" element.
func (o *OBJ) parseFaceVertex(elem string) (OBJFaceVertex, error) {
	fv := OBJFaceVertex{TexCoord: -1, Normal: -1}

	parts := strings.Split(elem, "/")
	if len(parts) > 3 {
		return fv, fmt.Errorf("%w: face element %q", ErrOBJMalformed, elem)
	}

	pos, err := resolveIndex(parts[0], len(o.Positions))
	if err != nil {
		return fv, fmt.Errorf("face element %q: %w", elem, err)
	}
	fv.Position = pos

	if len(parts) > 1 && parts[1] != "" {
		tc, err := resolveIndex(parts[1], len(o.TexCoords))
		if err != nil {
			return fv, fmt.Errorf("face element %q: %w", elem, err)
		}
		fv.TexCoord = tc
	}

	if len(parts) > 2 && parts[2] != "" {
		n, err := resolveIndex(parts[2], len(o.Normals))
		if err != nil {
			return fv, fmt.Errorf("face element %q: %w", elem, err)
		}
		fv.Normal = n
	}

	return fv, nil
}

// resolveIndex converts a 1-based or negative OBJ index into a 0-based
// index and validates it against the current array length.
func resolveIndex(s string, length int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrOBJMalformed, err)
	}
	if idx == 0 {
		return 0, ErrOBJZeroIndex
	}

	if idx < 0 {
		idx = length + idx
	} else {
		idx--
	}

	if idx < 0 || idx >= length {
		return 0, fmt.Errorf("%w: %s (have %d)", ErrOBJIndexRange, s, length)
	}
	return idx, nil
}

func parseFloats3(args []string) ([3]float32, error) {
	var out [3]float32
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return out, fmt.Errorf("%w: %v", ErrOBJMalformed, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}
