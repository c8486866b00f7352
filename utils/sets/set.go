package sets

type Set[K comparable] map[K]struct{}

func New[K comparable]() Set[K] {
	return make(Set[K])
}

func FromSlice[K comparable](keys []K) Set[K] {
	s := make(Set[K], len(keys))
	for _, k := range keys {
		s.Append(k)
	}

	return s
}

func (s Set[K]) Has(key K) bool {
	_, ok := s[key]
	return ok
}

func (s Set[K]) Append(key K) {
	s[key] = struct{}{}
}
