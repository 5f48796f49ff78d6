package dict_test

// entryModel is a reference mapping backed by a slice of entries rather than a
// map. Lookups are linear, which is fine for the sizes rapid generates.

type entry struct {
	key int
	val string
}

type entryModel struct {
	entries []entry
}

func (m *entryModel) Get(key int) (string, bool) {
	for _, e := range m.entries {
		if e.key == key {
			return e.val, true
		}
	}
	return "", false
}

func (m *entryModel) Store(key int, val string) {
	for i := range m.entries {
		if m.entries[i].key == key {
			m.entries[i].val = val
			return
		}
	}
	m.entries = append(m.entries, entry{key: key, val: val})
}

func (m *entryModel) Len() int {
	return len(m.entries)
}
