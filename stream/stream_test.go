package stream

import (
	"context"
	"errors"
	"testing"
)

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFromSlice_Collect(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestFromSlice_Empty(t *testing.T) {
	s := FromSlice([]int{})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestFrom_Iterator(t *testing.T) {
	iter := &sliceIter[string]{items: []string{"a", "b"}}
	s := From[string](iter)
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v, want [a b]", got)
	}
}

func TestDrain(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	var sum int
	err := Drain(s, func(_ context.Context, n int) error {
		sum += n
		return nil
	}).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sum != 6 {
		t.Errorf("expected sum 6, got %d", sum)
	}
}

func TestDrain_SinkError(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	sinkErr := errors.New("sink failed")
	err := Drain(s, func(_ context.Context, n int) error {
		if n == 2 {
			return sinkErr
		}
		return nil
	}).Run(context.Background())
	if !errors.Is(err, sinkErr) {
		t.Errorf("expected sink error, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	s := FromSlice([]string{"a", "b"})
	var seen []string
	err := ForEach(context.Background(), s, func(_ context.Context, v string) error {
		seen = append(seen, v)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Errorf("got %v, want [a b]", seen)
	}
}

func TestObserve_FiresPerValue(t *testing.T) {
	s := FromSlice([]int{10, 20, 30})
	var observed []int
	s.Observe(func(n int) { observed = append(observed, n) })

	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{10, 20, 30}) {
		t.Errorf("main sequence altered: %v", got)
	}
	if !intSliceEqual(observed, []int{10, 20, 30}) {
		t.Errorf("observer missed values: %v", observed)
	}
}

func TestObserve_PerStageNotGlobal(t *testing.T) {
	src := FromSlice([]int{1, 2, 3, 4})
	evens := Filter(src, func(n int) bool { return n%2 == 0 })

	var srcSeen, evenSeen []int
	src.Observe(func(n int) { srcSeen = append(srcSeen, n) })
	evens.Observe(func(n int) { evenSeen = append(evenSeen, n) })

	if _, err := Collect(context.Background(), evens); err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(srcSeen, []int{1, 2, 3, 4}) {
		t.Errorf("source stage observed %v, want all inputs", srcSeen)
	}
	if !intSliceEqual(evenSeen, []int{2, 4}) {
		t.Errorf("filter stage observed %v, want [2 4]", evenSeen)
	}
}

func TestOnFirstConsumer(t *testing.T) {
	t.Run("fires once on pull", func(t *testing.T) {
		s := FromSlice([]int{1})
		var fired int
		s.OnFirstConsumer(func() { fired++ })

		_, _ = Collect(context.Background(), s)
		_, _ = Collect(context.Background(), s)
		if fired != 1 {
			t.Errorf("expected hook to fire once, fired %d times", fired)
		}
	})

	t.Run("fires on observer registration", func(t *testing.T) {
		s := FromSlice([]int{1})
		var fired int
		s.OnFirstConsumer(func() { fired++ })

		s.Observe(func(int) {})
		if fired != 1 {
			t.Errorf("expected hook to fire on Observe, fired %d times", fired)
		}
	})

	t.Run("not fired without consumer", func(t *testing.T) {
		s := FromSlice([]int{1})
		var fired int
		s.OnFirstConsumer(func() { fired++ })
		if fired != 0 {
			t.Errorf("hook fired with no consumer")
		}
	})
}

func TestSource_PushAndClose(t *testing.T) {
	src := NewSource[int](8)
	go func() {
		defer src.Close()
		for _, n := range []int{1, 2, 3} {
			if err := src.Push(context.Background(), n); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	got, err := Collect(context.Background(), src.Stream())
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestSource_PushAfterClose(t *testing.T) {
	src := NewSource[int](1)
	src.Close()
	if err := src.Push(context.Background(), 1); err == nil {
		t.Error("expected error pushing to closed source")
	}
	if !src.Closed() {
		t.Error("expected Closed to report true")
	}
}

func TestSource_Fail(t *testing.T) {
	src := NewSource[int](8)
	src.Push(context.Background(), 1)
	failErr := errors.New("producer failed")
	src.Fail(failErr)

	got, err := Collect(context.Background(), src.Stream())
	if !errors.Is(err, failErr) {
		t.Fatalf("expected producer error, got %v", err)
	}
	if !intSliceEqual(got, []int{1}) {
		t.Errorf("expected values before failure, got %v", got)
	}
}

func TestSource_BufferedBeforeConsumption(t *testing.T) {
	// Values pushed before any consumer exists sit in the buffer untouched.
	src := NewSource[int](8)
	for _, n := range []int{1, 2, 3} {
		if err := src.Push(context.Background(), n); err != nil {
			t.Fatal(err)
		}
	}
	src.Close()

	got, err := Collect(context.Background(), src.Stream())
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestBuffer_PreservesOrder(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5})
	buffered := Buffer(s, 2)
	got, err := Collect(context.Background(), buffered)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("got %v, want ordered input", got)
	}
}

func TestBuffer_PropagatesError(t *testing.T) {
	srcErr := errors.New("upstream failed")
	s := Map(FromSlice([]int{1, 2}), func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, srcErr
		}
		return n, nil
	})
	buffered := Buffer(s, 4)
	_, err := Collect(context.Background(), buffered)
	if !errors.Is(err, srcErr) {
		t.Errorf("expected upstream error, got %v", err)
	}
}

func TestIter_ManualPull(t *testing.T) {
	s := FromSlice([]int{7})
	iter := s.Iter(context.Background())
	defer iter.Close()

	val, ok, err := iter.Next(context.Background())
	if err != nil || !ok || val != 7 {
		t.Errorf("expected (7, true, nil), got (%d, %v, %v)", val, ok, err)
	}
	_, ok, err = iter.Next(context.Background())
	if err != nil || ok {
		t.Errorf("expected exhaustion, got (%v, %v)", ok, err)
	}
}
