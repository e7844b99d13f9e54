package engine

import (
	"strings"
	"testing"

	"github.com/willothy/lazyline/text"
)

func TestUserEventPatternRouting(t *testing.T) {
	host := newMockHost()
	fooRenders, barRenders := 0, 0
	e := setupEngine(t, host, Layout{
		Left: []Item{
			{Config: Config{
				Provider: Supplier(func() string { fooRenders++; return "foo" }),
				Update:   []string{"User:Foo"},
			}},
			{Config: Config{
				Provider: Supplier(func() string { barRenders++; return "bar" }),
				Update:   []string{"User:Bar"},
			}},
		},
	})
	_ = e

	host.Fire("User", "Foo")
	if fooRenders != 1 || barRenders != 0 {
		t.Errorf("after User:Foo: foo=%d bar=%d, want 1 and 0", fooRenders, barRenders)
	}

	host.Fire("User", "Bar")
	if fooRenders != 1 || barRenders != 1 {
		t.Errorf("after User:Bar: foo=%d bar=%d, want 1 and 1", fooRenders, barRenders)
	}
}

func TestSharedEventRendersAllSubscribers(t *testing.T) {
	host := newMockHost()
	renders := 0
	count := func() string { renders++; return "x" }
	setupEngine(t, host, Layout{
		Left:  []Item{{Config: Config{Provider: Supplier(count), Update: []string{"BufEnter"}}}},
		Right: []Item{{Config: Config{Provider: Supplier(count), Update: []string{"BufEnter"}}}},
	})

	// Both share one host subscription.
	if n := host.SubCount("BufEnter"); n != 1 {
		t.Fatalf("host subscriptions = %d, want 1", n)
	}

	host.Fire("BufEnter", "")
	if renders != 2 {
		t.Errorf("renders = %d, want both subscribers", renders)
	}
}

func TestRenderFailureIsolated(t *testing.T) {
	host := newMockHost()
	survived := 0
	e := setupEngine(t, host, Layout{
		Left: []Item{
			{Config: Config{
				Provider: Supplier(func() string { panic("boom") }),
				Lazy:     Bool(true),
				Default:  "?",
				Update:   []string{"BufEnter"},
			}},
			{Config: Config{
				Provider: Supplier(func() string { survived++; return "ok" }),
				Update:   []string{"BufEnter"},
			}},
		},
	})

	host.Fire("BufEnter", "")

	if survived != 1 {
		t.Errorf("sibling renders = %d, want 1 despite the panic", survived)
	}
	if len(host.Warnings) == 0 {
		t.Error("render panic should surface as a warning")
	}
	if got := text.Strip(e.Compose()); !strings.Contains(got, "ok") {
		t.Errorf("compose = %q, want surviving component text", got)
	}
}

func TestNoUpdateRendersOnce(t *testing.T) {
	host := newMockHost()
	renders := 0
	e := setupEngine(t, host, Layout{
		Left: []Item{{Config: Config{
			Provider: Supplier(func() string { renders++; return "static" }),
		}}},
	})

	e.Compose()
	e.Compose()
	e.Compose()
	if renders != 1 {
		t.Errorf("renders = %d, want 1 (cached after first compose)", renders)
	}

	// A manual re-render bypasses the cache.
	e.Rerender(1)
	if renders != 2 {
		t.Errorf("renders after Rerender = %d, want 2", renders)
	}
}
