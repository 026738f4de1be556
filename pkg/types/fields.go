package types

// Fields - множество JSON-ключей, реально присланных в теле запроса.
// Позволяет отличить "поле не прислано" от "поле прислано как null".
type Fields map[string]struct{}

func NewFields(keys ...string) Fields {
	f := make(Fields, len(keys))
	for _, k := range keys {
		f[k] = struct{}{}
	}
	return f
}

func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

func (f Fields) Len() int { return len(f) }
