package argument

// DiscreteSetは、離散型の引数として許可するラベルの集合です。
//
// 生成後は変更できないため、複数のゴルーチンから参照できます。
type DiscreteSet struct {
	labels []string
	index  map[string]int
}

// NewDiscreteSetは、labelsを許可するDiscreteSetを生成します。
//
// 重複したラベルは最初の位置のみを使用します。
func NewDiscreteSet(labels ...string) *DiscreteSet {
	s := &DiscreteSet{
		labels: make([]string, 0, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	for _, l := range labels {
		if _, ok := s.index[l]; ok {
			continue
		}
		s.index[l] = len(s.labels)
		s.labels = append(s.labels, l)
	}
	return s
}

// Parseは、引数が集合に含まれる場合にそのラベルを返却します。
func (s *DiscreteSet) Parse(token string) (string, error) {
	if _, err := s.Index(token); err != nil {
		return "", err
	}
	return token, nil
}

// Indexは、引数に一致するラベルの位置を返却します。
func (s *DiscreteSet) Index(token string) (int, error) {
	i, ok := s.index[token]
	if !ok {
		return 0, mismatch(TypeDiscrete, token)
	}
	return i, nil
}

// Containsは、ラベルが集合に含まれる場合にtrueを返却します。
func (s *DiscreteSet) Contains(label string) bool {
	_, ok := s.index[label]
	return ok
}

// Labelsは、ラベルのコピーを登録順に返却します。
func (s *DiscreteSet) Labels() []string {
	res := make([]string, len(s.labels))
	copy(res, s.labels)
	return res
}

// Formatは、ラベルを引数へ変換します。
//
// 集合に含まれないラベルの場合は errors.TypeMismatchError を返却します。
func (s *DiscreteSet) Format(label string) (string, error) {
	if !s.Contains(label) {
		return "", mismatch(TypeDiscrete, label)
	}
	return label, nil
}
