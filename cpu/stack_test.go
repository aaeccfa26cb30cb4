package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())

	s.Push(0x12)
	assert.False(s.Empty())
	assert.Equal(1, len(s.Data))
	assert.Equal(uint8(0x12), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x12)
	s.Push(0xAB)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(uint8(0xAB), val)
	assert.Equal(1, len(s.Data))

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(uint8(0x12), val)
	assert.Equal(0, len(s.Data))
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(uint8(0), val)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x12)
	s.Push(0xAB)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(uint8(0xAB), val)
	assert.Equal(2, len(s.Data))
}

func TestStack_Grows(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	for i := range 1000 {
		s.Push(uint8(i))
	}
	assert.Equal(1000, len(s.Data))

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(uint8(999&0xff), val)
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x12)
	s.Push(0xAB)
	assert.Equal(2, len(s.Data))

	s.Reset()
	assert.True(s.Empty())

	s.Reset()
	assert.True(s.Empty())
}

func TestCallStack(t *testing.T) {
	assert := assert.New(t)

	cs := &CallStack{}
	assert.Equal(0, cs.Depth())

	_, ok := cs.Pop()
	assert.False(ok)

	cs.Push(Return{})
	cs.Push(Return{Ip: 7, Valid: true})
	assert.Equal(2, cs.Depth())

	ret, ok := cs.Pop()
	assert.True(ok)
	assert.Equal(Return{Ip: 7, Valid: true}, ret)

	ret, ok = cs.Pop()
	assert.True(ok)
	assert.False(ret.Valid)

	cs.Push(Return{})
	cs.Reset()
	assert.Equal(0, cs.Depth())
}
