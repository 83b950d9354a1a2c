package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_DeliversAfterDelay(t *testing.T) {
	got := make(chan string, 1)
	d := New(100*time.Millisecond, func(v string) { got <- v })
	defer d.Stop()

	d.Set("hello")

	select {
	case v := <-got:
		t.Fatalf("value %q delivered before the delay elapsed", v)
	case <-time.After(50 * time.Millisecond):
	}

	select {
	case v := <-got:
		assert.Equal(t, "hello", v)
	case <-time.After(200 * time.Millisecond):
		t.Fatal("value not delivered after the delay")
	}
}

func TestDebouncer_SupersedingSetResetsTimer(t *testing.T) {
	got := make(chan string, 4)
	d := New(100*time.Millisecond, func(v string) { got <- v })
	defer d.Stop()

	d.Set("a")
	time.Sleep(50 * time.Millisecond)
	d.Set("b")
	time.Sleep(50 * time.Millisecond)
	d.Set("c")

	select {
	case v := <-got:
		t.Fatalf("value %q delivered during the busy period", v)
	default:
	}

	select {
	case v := <-got:
		assert.Equal(t, "c", v)
	case <-time.After(300 * time.Millisecond):
		t.Fatal("final value not delivered")
	}

	select {
	case v := <-got:
		t.Fatalf("unexpected extra delivery %q", v)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestDebouncer_StopCancelsPendingDelivery(t *testing.T) {
	got := make(chan int, 1)
	d := New(50*time.Millisecond, func(v int) { got <- v })

	d.Set(1)
	d.Stop()

	select {
	case v := <-got:
		t.Fatalf("value %d delivered after Stop", v)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestDebouncer_StopWithNothingPending(t *testing.T) {
	d := New(10*time.Millisecond, func(int) {})
	d.Stop()
}
