package types

import "testing"

func TestCueString(t *testing.T) {
	want := map[Cue]string{
		CueHit:       "hit",
		CueMiss:      "miss",
		CuePopup:     "popup",
		CueExplosion: "explosion",
		Cue(99):      "unknown",
	}
	for cue, name := range want {
		if got := cue.String(); got != name {
			t.Errorf("Cue(%d).String() = %q, want %q", int(cue), got, name)
		}
	}
	if len(AllCues()) != 4 {
		t.Errorf("AllCues() returned %d cues, want 4", len(AllCues()))
	}
}
