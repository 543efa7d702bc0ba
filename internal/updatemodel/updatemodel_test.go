package updatemodel

import "testing"

func TestToString(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "AUTOMATA_ENGINE_UPDATE_MODEL_ATOMIC"},
		{1, "AUTOMATA_ENGINE_UPDATE_MODEL_FRAME_BUFFERING"},
		{2, "AUTOMATA_ENGINE_UPDATE_MODEL_ONE_LATENT_FRAME"},
		{3, "UNKNOWN"},
		{-1, "UNKNOWN"},
		{1 << 20, "UNKNOWN"},
	}
	for _, c := range cases {
		if got := ToString(c.in); got != c.want {
			t.Errorf("ToString(%d): expected %q, got %q", c.in, c.want, got)
		}
	}
	if got := OneLatentFrame.String(); got != "AUTOMATA_ENGINE_UPDATE_MODEL_ONE_LATENT_FRAME" {
		t.Errorf("unexpected String() %q", got)
	}
	if got := Model(9).String(); got != Unknown {
		t.Errorf("expected %q, got %q", Unknown, got)
	}
}

func TestParse(t *testing.T) {
	cases := map[string]Model{
		"":                 Atomic,
		"atomic":           Atomic,
		"Frame_Buffering":  FrameBuffering,
		"one_latent_frame": OneLatentFrame,
		"AUTOMATA_ENGINE_UPDATE_MODEL_FRAME_BUFFERING": FrameBuffering,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q): expected %v, got %v", in, want, got)
		}
	}
	if _, err := Parse("triple"); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestPacing(t *testing.T) {
	if Atomic.FramesInFlight() != 1 || Atomic.VSync() {
		t.Error("atomic model must keep one frame in flight without vsync")
	}
	if FrameBuffering.FramesInFlight() != 2 || !FrameBuffering.VSync() {
		t.Error("frame buffering must keep two frames in flight with vsync")
	}
	if !OneLatentFrame.Valid() || Model(3).Valid() {
		t.Error("unexpected Valid result")
	}
}
