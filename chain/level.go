package chain

// Level is the severity attached to a message.
type Level int

// Severities, most severe first.
const (
	Error Level = iota
	Warning
	Info
	Debug
	Trace
)

var levelNames = [...]string{"ERROR", "WARNING", "INFO", "DEBUG", "TRACE"}

// String returns the upper-case name of l.
func (l Level) String() string {
	if l < Error || l > Trace {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// AllLevels returns every Level, most severe first.
func AllLevels() []Level {
	return []Level{Error, Warning, Info, Debug, Trace}
}

// levelSet is a small bitset of accepted levels.
type levelSet uint8

func newLevelSet(levels ...Level) levelSet {
	var s levelSet
	for _, l := range levels {
		if l >= Error && l <= Trace {
			s |= 1 << uint(l)
		}
	}
	return s
}

func (s levelSet) has(l Level) bool {
	return l >= Error && l <= Trace && s&(1<<uint(l)) != 0
}
