package mocks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type MocksSuite struct {
	suite.Suite
}

func TestMocksSuite(t *testing.T) {
	suite.Run(t, new(MocksSuite))
}

func (s *MocksSuite) TestClockStep() {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := NewMockClock(start)
	clk.Step = time.Second

	s.Equal(start, clk.Now())
	s.Equal(start.Add(time.Second), clk.Now())
	s.Equal(2*time.Second, clk.Since(start))

	clk.Advance(time.Minute)
	s.Equal(time.Minute+2*time.Second, clk.Since(start))
}

func (s *MocksSuite) TestRandomQueue() {
	rnd := NewMockRandom()
	rnd.QueueIntn(7, 2)

	s.Equal(1, rnd.Intn(3))
	s.Equal(1, rnd.Remaining())
	s.Equal(2, rnd.Intn(5))
	s.Equal(0, rnd.Intn(5))
	s.Equal([]int{3, 5, 5}, rnd.Calls)

	rnd.Reset()
	s.Empty(rnd.Calls)
	s.Equal(0, rnd.Remaining())
}
