package browse

import (
	"reflect"
	"testing"
)

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Display()
	}
	return out
}

func containerStack(labels ...string) *Stack {
	entries := make([]Entry, len(labels))
	for i, label := range labels {
		entries[i] = Container(label)
	}
	return NewStack(entries)
}

func TestPushIncreasesDepthAndResetsCursor(t *testing.T) {
	s := containerStack("a", "b", "c")
	s.Top().Move(2)
	s.Push([]Entry{Container("x"), Container("y")})
	if s.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", s.Depth())
	}
	if s.Top().Cursor != 0 {
		t.Fatalf("cursor = %d, want 0", s.Top().Cursor)
	}
	if s.Top().Filter != "" {
		t.Fatalf("new level must start unfiltered")
	}
}

func TestPopStopsAtRoot(t *testing.T) {
	s := containerStack("a")
	if s.Pop() {
		t.Fatalf("pop at depth 1 must be a no-op")
	}
	s.Push([]Entry{Container("x")})
	if !s.Pop() {
		t.Fatalf("pop at depth 2 must succeed")
	}
	if s.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", s.Depth())
	}
	if s.Pop() {
		t.Fatalf("pop must never go below the root")
	}
}

func TestPopRestoresParentCursor(t *testing.T) {
	s := containerStack("a", "b", "c")
	s.Top().Move(1)
	s.Push([]Entry{Container("x")})
	s.Pop()
	if _, cursor := s.Current(); cursor != 1 {
		t.Fatalf("cursor = %d, want 1", cursor)
	}
}

func TestMoveClampsToBounds(t *testing.T) {
	s := containerStack("a", "b", "c")
	top := s.Top()
	top.Move(-5)
	if top.Cursor != 0 {
		t.Fatalf("cursor = %d, want 0", top.Cursor)
	}
	top.Move(100)
	if top.Cursor != 2 {
		t.Fatalf("cursor = %d, want 2", top.Cursor)
	}
	top.Move(-1)
	if top.Cursor != 1 {
		t.Fatalf("cursor = %d, want 1", top.Cursor)
	}
}

func TestMoveHalfViewport(t *testing.T) {
	labels := make([]string, 20)
	for i := range labels {
		labels[i] = string(rune('a' + i))
	}
	s := containerStack(labels...)
	top := s.Top()
	top.MoveHalfViewport(1, 10)
	if top.Cursor != 5 {
		t.Fatalf("cursor = %d, want 5", top.Cursor)
	}
	top.MoveHalfViewport(-1, 10)
	if top.Cursor != 0 {
		t.Fatalf("cursor = %d, want 0", top.Cursor)
	}
	// Tiny viewports still move by at least one row.
	top.MoveHalfViewport(1, 1)
	if top.Cursor != 1 {
		t.Fatalf("cursor = %d, want 1", top.Cursor)
	}
}

func TestFilterIsCaseSensitiveSubstring(t *testing.T) {
	s := containerStack("Abbey Road", "abbey lane", "Let It Be")
	top := s.Top()
	top.SetFilter("Abbey")
	if got := names(top.Items); !reflect.DeepEqual(got, []string{"Abbey Road"}) {
		t.Fatalf("items = %v", got)
	}
	if top.Cursor != 0 {
		t.Fatalf("cursor should move to the first match")
	}
}

func TestFilterIdempotence(t *testing.T) {
	s := containerStack("red", "green", "blue", "grey")
	top := s.Top()
	top.SetFilter("gr")
	once := names(top.Items)
	top.SetFilter("gr")
	if got := names(top.Items); !reflect.DeepEqual(got, once) {
		t.Fatalf("second application changed the view: %v vs %v", got, once)
	}
}

func TestClearFilterRestoresFullOrdering(t *testing.T) {
	s := containerStack("red", "green", "blue", "grey")
	top := s.Top()
	top.Move(1)
	top.SetFilter("blue")
	top.ClearFilter()
	if got := names(top.Items); !reflect.DeepEqual(got, []string{"red", "green", "blue", "grey"}) {
		t.Fatalf("items = %v", got)
	}
	if top.Cursor != 1 {
		t.Fatalf("cursor = %d, want pre-filter position 1", top.Cursor)
	}
}

func TestFilterWithNoMatches(t *testing.T) {
	s := containerStack("red", "green")
	top := s.Top()
	top.SetFilter("zzz")
	if !top.Empty() {
		t.Fatalf("expected empty view")
	}
	if _, ok := top.Selected(); ok {
		t.Fatalf("empty view must report no selection")
	}
	top.ClearFilter()
	if top.Empty() {
		t.Fatalf("clearing must restore the full list")
	}
}

func TestCyclicJumpClosesAndInverts(t *testing.T) {
	s := containerStack("ga", "x", "gb", "y", "gc")
	top := s.Top()
	top.SetFilter("g")
	if got := len(top.Items); got != 3 {
		t.Fatalf("matches = %d, want 3", got)
	}
	seen := []int{top.Cursor}
	for i := 0; i < 3; i++ {
		top.JumpForward()
		seen = append(seen, top.Cursor)
	}
	// The cycle closes after exactly len(matches) steps.
	if seen[0] != seen[len(seen)-1] {
		t.Fatalf("cycle did not close: %v", seen)
	}
	// jump_back retraces the forward ordering exactly.
	for i := len(seen) - 2; i >= 0; i-- {
		top.JumpBack()
		if top.Cursor != seen[i] {
			t.Fatalf("jump back diverged at step %d: %d != %d", i, top.Cursor, seen[i])
		}
	}
}

func TestEnsureVisibleTracksCursor(t *testing.T) {
	labels := make([]string, 30)
	for i := range labels {
		labels[i] = string(rune('a' + i%26))
	}
	s := containerStack(labels...)
	top := s.Top()
	top.Move(25)
	top.EnsureVisible(10)
	if top.Cursor < top.ViewportOffset || top.Cursor > top.ViewportOffset+9 {
		t.Fatalf("cursor %d outside viewport [%d,%d]", top.Cursor, top.ViewportOffset, top.ViewportOffset+9)
	}
	top.First()
	top.EnsureVisible(10)
	if top.ViewportOffset != 0 {
		t.Fatalf("offset = %d, want 0", top.ViewportOffset)
	}
}

func TestPreviewSupersession(t *testing.T) {
	s := containerStack("a", "b")
	first := s.IssuePreview()
	second := s.IssuePreview()
	if s.ApplyPreview(first, []Entry{Container("stale")}) {
		t.Fatalf("superseded preview must be discarded")
	}
	if !s.ApplyPreview(second, []Entry{Container("fresh")}) {
		t.Fatalf("latest preview must apply")
	}
	if got := names(s.Preview()); !reflect.DeepEqual(got, []string{"fresh"}) {
		t.Fatalf("preview = %v", got)
	}
}

func TestReplaceTopKeepsFilterAndClampsCursor(t *testing.T) {
	s := containerStack("alpha", "beta", "gamma")
	top := s.Top()
	top.Move(2)
	s.ReplaceTop([]Entry{Container("alpha")})
	if _, cursor := s.Current(); cursor != 0 {
		t.Fatalf("cursor = %d, want clamp to 0", cursor)
	}
	top.SetFilter("al")
	s.ReplaceTop([]Entry{Container("alpha"), Container("altair"), Container("beta")})
	if got := names(s.Top().Items); !reflect.DeepEqual(got, []string{"alpha", "altair"}) {
		t.Fatalf("items = %v", got)
	}
}
