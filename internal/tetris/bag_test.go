package tetris

import "testing"

func TestBagDealsEveryKindPerCycle(t *testing.T) {
	bag := NewBag(42)

	for cycle := 0; cycle < 4; cycle++ {
		seen := make(map[Kind]int)
		for i := 0; i < KindCount; i++ {
			seen[bag.Next()]++
		}
		for _, kind := range AllKinds() {
			if seen[kind] != 1 {
				t.Errorf("cycle %d: kind %s dealt %d times, want 1", cycle, kind, seen[kind])
			}
		}
	}
}

func TestBagDeterminism(t *testing.T) {
	a := NewBag(777)
	b := NewBag(777)
	for i := 0; i < 28; i++ {
		if ka, kb := a.Next(), b.Next(); ka != kb {
			t.Fatalf("deal %d: %s vs %s with equal seeds", i, ka, kb)
		}
	}
}

func TestQueueCycles(t *testing.T) {
	q := NewQueue(KindI, KindO, KindT)
	want := []Kind{KindI, KindO, KindT, KindI, KindO, KindT, KindI}
	for i, w := range want {
		if got := q.Next(); got != w {
			t.Errorf("deal %d = %s, want %s", i, got, w)
		}
	}
}

func TestQueuePanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewQueue() with no kinds did not panic")
		}
	}()
	NewQueue()
}
