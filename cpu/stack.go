package cpu

// Stack is the data stack used by PUSH and POP.
type Stack struct {
	Data []uint8
}

func (s *Stack) Push(value uint8) {
	s.Data = append(s.Data, value)
}

func (s *Stack) Pop() (value uint8, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Peek() (value uint8, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}

// Return is an optional return address.
type Return struct {
	Ip    int
	Valid bool
}

// CallStack holds the return slots saved by nested calls.
type CallStack struct {
	Data []Return
}

func (cs *CallStack) Push(ret Return) {
	cs.Data = append(cs.Data, ret)
}

func (cs *CallStack) Pop() (ret Return, ok bool) {
	if len(cs.Data) == 0 {
		return
	}

	ret, ok = cs.Data[len(cs.Data)-1], true
	cs.Data = cs.Data[:len(cs.Data)-1]
	return
}

func (cs *CallStack) Depth() int {
	return len(cs.Data)
}

func (cs *CallStack) Reset() {
	if len(cs.Data) > 0 {
		cs.Data = cs.Data[:0]
	}
}
