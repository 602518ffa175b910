package audio

import (
	"testing"
	"time"
)

func TestGateThrottles(t *testing.T) {
	clock := time.Unix(0, 0)
	g := gate{enabled: true, gap: 50 * time.Millisecond, now: func() time.Time { return clock }}

	if !g.open() {
		t.Fatal("first event should pass")
	}
	clock = clock.Add(20 * time.Millisecond)
	if g.open() {
		t.Fatal("event inside the gap should be dropped")
	}
	clock = clock.Add(30 * time.Millisecond)
	if !g.open() {
		t.Fatal("event after the gap should pass")
	}
}

func TestDisabledGateStaysClosed(t *testing.T) {
	g := gate{gap: time.Millisecond, now: time.Now}
	if g.open() {
		t.Fatal("disabled gate should never open")
	}
}

func TestNilPourerIsSilent(t *testing.T) {
	var p *Pourer
	p.Pour()
	p.Close()
}
