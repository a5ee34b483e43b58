package advanced

// Work list for the traversals that would otherwise recurse once per
// triangle.
type intStack []int

func (s *intStack) Push(i int) {
	*s = append(*s, i)
}

func (s *intStack) Pop() int {
	i := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return i
}

func (s *intStack) Empty() bool {
	return len(*s) == 0
}
