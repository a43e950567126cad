package game

// Score tracks points, level, and cleared lines for one session.
//
// Points awarded per lock grow with the square of the lines cleared at
// once, so a quadruple clear is worth far more than four singles. The
// level rises after every linesPerLevel cumulative cleared lines and
// feeds back into both the point value and the gravity speed.
type Score struct {
	points        int
	level         int
	lines         int
	pointsBase    int
	linesPerLevel int
	linesSinceUp  int
}

// NewScore creates a score tracker starting at the given level.
func NewScore(startLevel, linesPerLevel, pointsBase int) *Score {
	if startLevel < 1 {
		startLevel = 1
	}
	if linesPerLevel < 1 {
		linesPerLevel = 1
	}
	if pointsBase < 1 {
		pointsBase = 1
	}
	return &Score{
		level:         startLevel,
		pointsBase:    pointsBase,
		linesPerLevel: linesPerLevel,
	}
}

// Add records a lock event that cleared the given number of lines.
// The award is computed at the level in effect before any level-up the
// same lines trigger.
func (s *Score) Add(lines int) {
	if lines <= 0 {
		return
	}
	s.points += s.pointsBase * lines * lines * s.level
	s.lines += lines
	s.linesSinceUp += lines
	s.level += s.linesSinceUp / s.linesPerLevel
	s.linesSinceUp %= s.linesPerLevel
}

// Points returns the points earned so far.
func (s *Score) Points() int {
	return s.points
}

// Level returns the current level.
func (s *Score) Level() int {
	return s.level
}

// Lines returns the total number of cleared lines.
func (s *Score) Lines() int {
	return s.lines
}
