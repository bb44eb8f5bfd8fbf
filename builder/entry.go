package builder

import "fmt"

// HeavyEntry is a record with builder-only fields (MField*) and mutable
// fields (Field*).
type HeavyEntry struct {
	field1, field2, field3, field4     string
	mfield1, mfield2, mfield3, mfield4 string
}

func (e *HeavyEntry) SetField1(v string) { e.field1 = v }
func (e *HeavyEntry) SetField2(v string) { e.field2 = v }
func (e *HeavyEntry) SetField3(v string) { e.field3 = v }
func (e *HeavyEntry) SetField4(v string) { e.field4 = v }

func (e HeavyEntry) Field1() string { return e.field1 }
func (e HeavyEntry) Field2() string { return e.field2 }
func (e HeavyEntry) Field3() string { return e.field3 }
func (e HeavyEntry) Field4() string { return e.field4 }

func (e HeavyEntry) MField1() string { return e.mfield1 }
func (e HeavyEntry) MField2() string { return e.mfield2 }
func (e HeavyEntry) MField3() string { return e.mfield3 }
func (e HeavyEntry) MField4() string { return e.mfield4 }

// String implements fmt.Stringer.
func (e HeavyEntry) String() string {
	return fmt.Sprintf("HeavyEntry{field1=%q, field2=%q, field3=%q, field4=%q, mfield1=%q, mfield2=%q, mfield3=%q, mfield4=%q}",
		e.field1, e.field2, e.field3, e.field4, e.mfield1, e.mfield2, e.mfield3, e.mfield4)
}
