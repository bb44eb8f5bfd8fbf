package builder

// HeavyEntryBuilder accumulates MField values for HeavyEntry.
// The zero value is ready to use.
type HeavyEntryBuilder struct {
	mfield1, mfield2, mfield3, mfield4 string
}

// NewHeavyEntryBuilder returns an empty builder.
func NewHeavyEntryBuilder() *HeavyEntryBuilder { return &HeavyEntryBuilder{} }

func (b *HeavyEntryBuilder) WithMField1(v string) *HeavyEntryBuilder { b.mfield1 = v; return b }
func (b *HeavyEntryBuilder) WithMField2(v string) *HeavyEntryBuilder { b.mfield2 = v; return b }
func (b *HeavyEntryBuilder) WithMField3(v string) *HeavyEntryBuilder { b.mfield3 = v; return b }
func (b *HeavyEntryBuilder) WithMField4(v string) *HeavyEntryBuilder { b.mfield4 = v; return b }

// Build returns a new entry from the accumulated values.
func (b *HeavyEntryBuilder) Build() HeavyEntry {
	return HeavyEntry{
		mfield1: b.mfield1,
		mfield2: b.mfield2,
		mfield3: b.mfield3,
		mfield4: b.mfield4,
	}
}
