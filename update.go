package filetime

type updateKind int

const (
	updateOmit updateKind = iota
	updateSet
	updateNow
)

// Update describes what to do with a single timestamp
// field during a set operation: write a given instant,
// write the wall clock of the call, or leave the field
// exactly as it is.
//
// The zero value leaves the field unchanged.
type Update struct {
	kind updateKind
	when FileTime
}

// Set requests writing the given instant to the field.
func Set(t FileTime) Update {
	return Update{kind: updateSet, when: t}
}

// Omit requests leaving the field untouched.
func Omit() Update {
	return Update{kind: updateOmit}
}

// Now requests writing the wall-clock time sampled at the
// moment the set operation runs, not at the moment the
// Update is constructed.
func Now() Update {
	return Update{kind: updateNow}
}

// resolve pins down the concrete instant of the update,
// sampling the clock for Now and applying the second-only
// emulation filter. The returned update is either a
// resolved set or an omit.
func (u Update) resolve() Update {
	switch u.kind {
	case updateNow:
		return Update{kind: updateSet, when: emulated(FromTime(now()))}
	case updateSet:
		return Update{kind: updateSet, when: emulated(u.when)}
	}
	return Update{kind: updateOmit}
}

func (u Update) omitted() bool { return u.kind != updateSet }
