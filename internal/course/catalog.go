// Package course loads the read-only course reference catalog from a CSV
// file. The catalog tells the form UI how many holes a round consists of and
// in what order; saved rounds are never validated against it.
package course

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/fairwaylabs/golftrack-backend/internal/domain"
)

// Catalog is the in-memory course reference data, loaded once at startup.
type Catalog struct {
	courses map[string]domain.Course
	names   []string
}

// Load reads the catalog CSV at path. Expected header:
// course_name,hole,par,yardage,layout_image (layout_image optional per row).
// A missing file yields an empty catalog, not an error; the data file ships
// separately from the binary.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Catalog{courses: map[string]domain.Course{}}, nil
		}
		return nil, fmt.Errorf("open courses file: %w", err)
	}
	defer f.Close()

	c, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func parse(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Catalog{courses: map[string]domain.Course{}}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"course_name", "hole", "par", "yardage"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	courses := map[string]domain.Course{}
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		line++

		name := strings.TrimSpace(record[col["course_name"]])
		if name == "" {
			return nil, fmt.Errorf("line %d: empty course_name", line)
		}

		hole, err := atoiField(record, col, "hole", line)
		if err != nil {
			return nil, err
		}
		par, err := atoiField(record, col, "par", line)
		if err != nil {
			return nil, err
		}
		yardage, err := atoiField(record, col, "yardage", line)
		if err != nil {
			return nil, err
		}

		c := courses[name]
		c.Name = name
		c.Holes = append(c.Holes, domain.CourseHole{Hole: hole, Par: par, Yardage: yardage})
		if idx, ok := col["layout_image"]; ok && idx < len(record) {
			if img := strings.TrimSpace(record[idx]); img != "" {
				c.LayoutImage = img
			}
		}
		courses[name] = c
	}

	names := make([]string, 0, len(courses))
	for name, c := range courses {
		sort.Slice(c.Holes, func(i, j int) bool { return c.Holes[i].Hole < c.Holes[j].Hole })
		courses[name] = c
		names = append(names, name)
	}
	sort.Strings(names)

	return &Catalog{courses: courses, names: names}, nil
}

func atoiField(record []string, col map[string]int, field string, line int) (int, error) {
	raw := strings.TrimSpace(record[col[field]])
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s %q: %w", line, field, raw, err)
	}
	return v, nil
}

// Get returns the course with the given name.
func (c *Catalog) Get(name string) (domain.Course, bool) {
	course, ok := c.courses[name]
	return course, ok
}

// List returns all courses sorted by name.
func (c *Catalog) List() []domain.Course {
	out := make([]domain.Course, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.courses[name])
	}
	return out
}

// Len returns the number of courses in the catalog.
func (c *Catalog) Len() int { return len(c.courses) }
