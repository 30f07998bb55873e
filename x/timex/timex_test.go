package timex

import (
	"testing"
	"time"
)

func TestCyclesCountsDownAndRearms(t *testing.T) {
	c := NewCycles(3)
	// A budget of n allows n-1 successful ticks, so a wait polls n times.
	for i := 0; i < 2; i++ {
		if !c.Tick() {
			t.Fatalf("tick %d should succeed", i)
		}
	}
	if c.Tick() {
		t.Fatal("budget should be exhausted")
	}
	if c.Tick() {
		t.Fatal("exhausted budget must stay exhausted")
	}
	c.Reset()
	if !c.Tick() {
		t.Fatal("reset should re-arm the budget")
	}
}

func TestZeroCyclesExpiresImmediately(t *testing.T) {
	var c Cycles
	c.Reset()
	if c.Tick() {
		t.Fatal("zero budget must not allow a tick")
	}
}

func TestWallUsesInjectedClock(t *testing.T) {
	now := time.Unix(0, 0)
	w := &Wall{Timeout: 10 * time.Millisecond, Now: func() time.Time { return now }}
	w.Reset()
	if !w.Tick() {
		t.Fatal("fresh deadline should allow a tick")
	}
	now = now.Add(10 * time.Millisecond)
	if w.Tick() {
		t.Fatal("deadline reached; tick must fail")
	}
	w.Reset()
	if !w.Tick() {
		t.Fatal("reset should move the deadline")
	}
}

func TestSpinReturns(t *testing.T) {
	Spin(0)
	Spin(10000)
}
