package core

import "testing"

func TestSoundTypeString(t *testing.T) {
	if SoundCock.String() != "cock" || SoundExplosion.String() != "explosion" {
		t.Errorf("unexpected names %q %q", SoundCock, SoundExplosion)
	}
	if SoundType(-1).String() != "unknown" || SoundTypeCount.String() != "unknown" {
		t.Error("out of range sound should be unknown")
	}
}
