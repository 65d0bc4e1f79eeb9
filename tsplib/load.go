// Package tsplib loads symmetric TSP instances from the TSPLIB-like text
// format the solvers consume.
//
// Supported subset:
//   - DIMENSION: <n>
//   - EDGE_WEIGHT_TYPE: EXPLICIT with EDGE_WEIGHT_FORMAT: FULL_MATRIX or
//     UPPER_ROW, followed by EDGE_WEIGHT_SECTION
//   - EDGE_WEIGHT_TYPE: EUC_2D with NODE_COORD_SECTION (nearest-integer
//     Euclidean rounding, see dist.FromCoords)
//   - an optional EOF terminator line
//
// Anything outside this subset is a sentinel error, never a panic: the
// format is consumed at a trust boundary. Parse errors wrap the sentinel
// with positional context via %w so callers can still errors.Is.
package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/grasptsp/dist"
)

var (
	// ErrBadHeader signals a missing or malformed DIMENSION /
	// EDGE_WEIGHT_TYPE preamble.
	ErrBadHeader = errors.New("tsplib: malformed header")

	// ErrUnsupportedFormat signals an EDGE_WEIGHT_TYPE or
	// EDGE_WEIGHT_FORMAT outside the supported subset.
	ErrUnsupportedFormat = errors.New("tsplib: unsupported weight format")

	// ErrBadSection signals a truncated or non-numeric data section.
	ErrBadSection = errors.New("tsplib: malformed data section")
)

// Load reads filename and builds the distance model.
func Load(filename string) (*dist.Matrix, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("tsplib: open %s: %w", filename, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lines := make([]string, 0, 256)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: read %s: %w", filename, err)
	}

	return Parse(lines)
}

// Parse builds the distance model from the instance text, one entry per
// line, header order as in the supported subset.
func Parse(lines []string) (*dist.Matrix, error) {
	var (
		n      int    // DIMENSION
		wtype  string // EDGE_WEIGHT_TYPE value
		format string // EDGE_WEIGHT_FORMAT value (EXPLICIT only)
		cursor int    // current line index
		line   string
	)

	// Preamble scan: DIMENSION must precede the weight data.
	for cursor = 0; cursor < len(lines); cursor++ {
		line = strings.TrimSpace(lines[cursor])
		switch {
		case strings.HasPrefix(line, "DIMENSION"):
			fields := strings.Fields(line)
			v, err := strconv.Atoi(fields[len(fields)-1])
			if err != nil || v <= 0 {
				return nil, fmt.Errorf("line %d: %w", cursor+1, ErrBadHeader)
			}
			n = v
		case strings.HasPrefix(line, "EDGE_WEIGHT_TYPE"):
			fields := strings.Fields(line)
			wtype = fields[len(fields)-1]
		case strings.HasPrefix(line, "EDGE_WEIGHT_FORMAT"):
			fields := strings.Fields(line)
			format = fields[len(fields)-1]
		case strings.HasPrefix(line, "EDGE_WEIGHT_SECTION"),
			strings.HasPrefix(line, "NODE_COORD_SECTION"):
			// Data begins on the next line.
			if n == 0 {
				return nil, ErrBadHeader
			}

			data := lines[cursor+1:]
			switch {
			case wtype == "EXPLICIT" && format == "FULL_MATRIX":
				return parseFullMatrix(data, n)
			case wtype == "EXPLICIT" && format == "UPPER_ROW":
				return parseUpperRow(data, n)
			case wtype == "EUC_2D":
				return parseCoords(data, n)
			default:
				return nil, fmt.Errorf("%s/%s: %w", wtype, format, ErrUnsupportedFormat)
			}
		}
	}

	return nil, ErrBadHeader
}

// parseFullMatrix reads n rows of n integers.
func parseFullMatrix(data []string, n int) (*dist.Matrix, error) {
	rows := make([][]int, 0, n)

	var (
		i    int
		vals []int
		err  error
	)
	for i = 0; i < n; i++ {
		if i >= len(data) {
			return nil, ErrBadSection
		}
		vals, err = parseInts(data[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if len(vals) < n {
			return nil, fmt.Errorf("row %d: %w", i+1, ErrBadSection)
		}
		rows = append(rows, vals[:n])
	}

	return dist.New(n, rows)
}

// parseUpperRow reads the strict upper triangle row by row (row i holding
// entries (i, i+1..n-1)), possibly wrapped across physical lines, and
// mirrors it.
func parseUpperRow(data []string, n int) (*dist.Matrix, error) {
	rows := make([][]int, n)
	var i int
	for i = 0; i < n; i++ {
		rows[i] = make([]int, n)
	}

	var (
		row  = 0
		col  = 1
		vals []int
		err  error
		v    int
	)
	for _, line := range data {
		if strings.HasPrefix(strings.TrimSpace(line), "EOF") {
			break
		}

		vals, err = parseInts(line)
		if err != nil {
			return nil, err
		}
		for _, v = range vals {
			if row >= n-1 {
				return nil, ErrBadSection
			}
			rows[row][col] = v
			rows[col][row] = v
			col++
			if col >= n {
				row++
				col = row + 1
			}
		}
	}

	// The triangle is complete when the row cursor walked past n-2.
	if row < n-1 {
		return nil, ErrBadSection
	}

	return dist.New(n, rows)
}

// parseCoords reads n "<id> <x> <y>" lines and derives EUC_2D distances.
func parseCoords(data []string, n int) (*dist.Matrix, error) {
	pts := make([][2]float64, 0, n)

	var (
		i      int
		fields []string
		x, y   float64
		err    error
	)
	for i = 0; i < n; i++ {
		if i >= len(data) {
			return nil, ErrBadSection
		}
		fields = strings.Fields(data[i])
		if len(fields) < 3 {
			return nil, fmt.Errorf("coord %d: %w", i+1, ErrBadSection)
		}
		x, err = strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("coord %d: %w", i+1, ErrBadSection)
		}
		y, err = strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("coord %d: %w", i+1, ErrBadSection)
		}
		pts = append(pts, [2]float64{x, y})
	}

	return dist.FromCoords(pts)
}

// parseInts splits one whitespace-separated line into integers.
func parseInts(line string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, 0, len(fields))

	var (
		f string
		v int
	)
	for _, f = range fields {
		var err error
		v, err = strconv.Atoi(f)
		if err != nil {
			return nil, ErrBadSection
		}
		out = append(out, v)
	}

	return out, nil
}
