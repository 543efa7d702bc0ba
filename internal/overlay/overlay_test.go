package overlay

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"bifrost-engine/internal/bifrost"
	"bifrost-engine/internal/timing"
	"bifrost-engine/internal/updatemodel"
)

// fakeSurface records widget calls and plays back scripted user input.
type fakeSurface struct {
	calls     []string
	comboPick map[string]int  // label -> index the user selects
	toggle    map[string]bool // label -> user clicks the checkbox
	collapsed map[string]bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		comboPick: map[string]int{},
		toggle:    map[string]bool{},
		collapsed: map[string]bool{},
	}
}

func (f *fakeSurface) Begin(title string) bool {
	f.calls = append(f.calls, "begin:"+title)
	return !f.collapsed[title]
}

func (f *fakeSurface) End() { f.calls = append(f.calls, "end") }

func (f *fakeSurface) Text(format string, args ...any) {
	f.calls = append(f.calls, "text:"+fmt.Sprintf(format, args...))
}

func (f *fakeSurface) TextWrapped(text string) { f.calls = append(f.calls, "wrapped:"+text) }

func (f *fakeSurface) Tooltip(text string) {}

func (f *fakeSurface) Checkbox(label string, v *bool) bool {
	f.calls = append(f.calls, "checkbox:"+label)
	if f.toggle[label] {
		*v = !*v
		return true
	}
	return false
}

func (f *fakeSurface) Combo(label string, current *int, items []string) bool {
	f.calls = append(f.calls, fmt.Sprintf("combo:%s:%d:%s", label, *current, strings.Join(items, ",")))
	if pick, ok := f.comboPick[label]; ok && pick != *current {
		*current = pick
		return true
	}
	return false
}

func (f *fakeSurface) SliderFloat(label string, v *float32, min, max float32) bool { return false }

func (f *fakeSurface) Table(id string, columns int, values []float32) {
	f.calls = append(f.calls, fmt.Sprintf("table:%s:%d:%v", id, columns, values))
}

func (f *fakeSurface) has(prefix string) bool {
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func testTiming() *timing.FrameTiming {
	return &timing.FrameTiming{
		BeginTime:     0,
		UpdateEndTime: 2_000,
		GPUEndTime:    5_000,
		VisibleTime:   0.02,
		Frequency:     1_000_000,
	}
}

func TestDrawWithoutTimingIsNoop(t *testing.T) {
	s := newFakeSurface()
	apps := bifrost.New[int]()
	New().Draw(s, View{Apps: apps})
	if len(s.calls) != 0 {
		t.Errorf("expected no drawing before timing exists, got %v", s.calls)
	}
}

func TestDrawShowsMetrics(t *testing.T) {
	s := newFakeSurface()
	apps := bifrost.New[int]()
	apps.Register("one", func(int) {})
	apps.Register("two", func(int) {})

	New().Draw(s, View{Apps: apps, Timing: testTiming(), GPU: "test gpu", Width: 640, Height: 480})

	for _, want := range []string{
		"begin:bifrost",
		"combo:App:0:one,two",
		"text:CPU frame time: 2.000 ms",
		"text:CPU + GPU frame time: 5.000 ms",
		"text:frames displayed per second: 50.000 FPS",
		"text:GPU in use: test gpu",
		"text:render resolution: 640 x 480",
	} {
		if !s.has(want) {
			t.Errorf("expected call %q in %v", want, s.calls)
		}
	}
	if apps.CurrentIndex() != 0 {
		t.Errorf("expected no switch without user input, got index %d", apps.CurrentIndex())
	}
}

func TestComboSelectionSwitchesApp(t *testing.T) {
	s := newFakeSurface()
	var hooks []string
	apps := bifrost.New[int]()
	apps.Register("one", func(int) {}, bifrost.WithTransitionOut(func() { hooks = append(hooks, "out:one") }))
	apps.Register("two", func(int) {}, bifrost.WithTransitionInto(func() { hooks = append(hooks, "into:two") }))
	s.comboPick["App"] = 1

	New().Draw(s, View{Apps: apps, Timing: testTiming()})

	if apps.CurrentIndex() != 1 {
		t.Fatalf("expected switch to index 1, got %d", apps.CurrentIndex())
	}
	if want := []string{"out:one", "into:two"}; !reflect.DeepEqual(hooks, want) {
		t.Errorf("expected hooks %v, got %v", want, hooks)
	}
}

func TestCheckboxesOpenExtraWindows(t *testing.T) {
	s := newFakeSurface()
	apps := bifrost.New[int]()
	apps.Register("one", func(int) {})
	o := New()
	s.toggle["show runtime stats"] = true
	s.toggle["show "+readmeTitle] = true

	o.Draw(s, View{
		Apps:          apps,
		Timing:        testTiming(),
		Model:         updatemodel.FrameBuffering,
		DroppedInputs: 3,
		LogLines:      []string{"hello log"},
	})

	if !o.ShowStats || !o.ShowReadme {
		t.Fatal("expected both toggles to be set")
	}
	if !s.has("begin:runtime stats") || !s.has("wrapped:hello log") {
		t.Errorf("expected stats window with log lines, got %v", s.calls)
	}
	if !s.has("text:update model: AUTOMATA_ENGINE_UPDATE_MODEL_FRAME_BUFFERING (2 in flight)") {
		t.Errorf("expected update model line, got %v", s.calls)
	}
	if !s.has("text:dropped input polls: 3") {
		t.Errorf("expected dropped input line, got %v", s.calls)
	}
	if !s.has("begin:" + readmeTitle) {
		t.Errorf("expected README window, got %v", s.calls)
	}
}

func TestCollapsedWindowStillEnds(t *testing.T) {
	s := newFakeSurface()
	s.collapsed[EngineName] = true
	apps := bifrost.New[int]()
	apps.Register("one", func(int) {})

	New().Draw(s, View{Apps: apps, Timing: testTiming()})

	if want := []string{"begin:bifrost", "end"}; !reflect.DeepEqual(s.calls, want) {
		t.Errorf("expected %v, got %v", want, s.calls)
	}
}

func TestMat4IsColumnMajor(t *testing.T) {
	s := newFakeSurface()
	var m [16]float32
	for i := range m {
		m[i] = float32(i)
	}
	Mat4(s, "m", m)
	want := "table:m:4:[0 4 8 12 1 5 9 13 2 6 10 14 3 7 11 15]"
	if !s.has(want) {
		t.Errorf("expected %q, got %v", want, s.calls)
	}

	Vec3(s, "v", [3]float32{1, 2, 3})
	if !s.has("table:v:3:[1 2 3]") {
		t.Errorf("expected vec3 table, got %v", s.calls)
	}
}
