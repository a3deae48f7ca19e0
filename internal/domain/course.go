package domain

// CourseHole is one hole of a course's reference layout.
type CourseHole struct {
	Hole    int
	Par     int
	Yardage int
}

// Course is read-only reference data: the ordered hole layout for one course.
// It tells the form UI how many holes a round consists of; saved rounds are
// never validated against it.
type Course struct {
	Name        string
	Holes       []CourseHole
	LayoutImage string
}

// TotalPar returns the sum of pars across the course's holes.
func (c Course) TotalPar() int {
	var par int
	for _, h := range c.Holes {
		par += h.Par
	}
	return par
}
