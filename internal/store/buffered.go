package store

type entryKey struct {
	class Class
	key   string
}

type entry struct {
	entryKey
	value []byte
}

// readFunc reads a committed value from a backend
type readFunc func(class Class, key string) ([]byte, bool, error)

// bufferedTx stages writes in memory on top of a backend reader.
// Backends commit the staged entries in one atomic step.
type bufferedTx struct {
	read     readFunc
	readOnly bool
	pending  map[entryKey][]byte
	order    []entryKey
}

func newBufferedTx(read readFunc, readOnly bool) *bufferedTx {
	return &bufferedTx{
		read:     read,
		readOnly: readOnly,
		pending:  make(map[entryKey][]byte),
	}
}

func (t *bufferedTx) Get(class Class, key string) ([]byte, bool, error) {
	if err := validateKey(class, key); err != nil {
		return nil, false, err
	}
	if v, ok := t.pending[entryKey{class, key}]; ok {
		return cloneBytes(v), true, nil
	}
	return t.read(class, key)
}

func (t *bufferedTx) Has(class Class, key string) (bool, error) {
	_, ok, err := t.Get(class, key)
	return ok, err
}

func (t *bufferedTx) Put(class Class, key string, value []byte) error {
	if t.readOnly {
		return ErrReadOnly
	}
	if err := validateKey(class, key); err != nil {
		return err
	}
	k := entryKey{class, key}
	if _, ok := t.pending[k]; !ok {
		t.order = append(t.order, k)
	}
	t.pending[k] = cloneBytes(value)
	return nil
}

// entries returns the staged writes in first-write order
func (t *bufferedTx) entries() []entry {
	out := make([]entry, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, entry{entryKey: k, value: t.pending[k]})
	}
	return out
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
