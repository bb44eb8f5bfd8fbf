package builder

// Option sets one builder-only field of a HeavyEntry.
type Option func(*HeavyEntry)

func WithMField1(v string) Option { return func(e *HeavyEntry) { e.mfield1 = v } }
func WithMField2(v string) Option { return func(e *HeavyEntry) { e.mfield2 = v } }
func WithMField3(v string) Option { return func(e *HeavyEntry) { e.mfield3 = v } }
func WithMField4(v string) Option { return func(e *HeavyEntry) { e.mfield4 = v } }

// NewHeavyEntry applies opts in order to an empty entry; later options win.
func NewHeavyEntry(opts ...Option) HeavyEntry {
	var e HeavyEntry
	for _, opt := range opts {
		if opt != nil {
			opt(&e)
		}
	}
	return e
}
