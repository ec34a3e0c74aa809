package parameter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuningValid(t *testing.T) {
	tu := DefaultTuning()
	if err := tu.Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
	if tu.Grenade.Fuse != 1.5 || tu.Grenade.ThrowSpeed != 620 || tu.Explosion.Range != 144 {
		t.Errorf("unexpected defaults %+v", tu)
	}
}

func TestParseTuningOverlaysDefaults(t *testing.T) {
	tu, err := ParseTuning(`
[explosion]
range = 200.0
lethal_range = 80.0

[sim]
delta = 0.01
`)
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if tu.Explosion.Range != 200 || tu.Explosion.LethalRange != 80 || tu.Sim.Delta != 0.01 {
		t.Errorf("overrides not applied: %+v", tu)
	}
	if tu.Grenade.Drag != GrenadeDrag || tu.Explosion.HighDamage != ExplosionHighDamage {
		t.Errorf("untouched keys lost defaults: %+v", tu)
	}
}

func TestParseTuningRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "[grenade]\nfuse = 1.0\nsplash = 3.0\n"},
		{"negative fuse", "[grenade]\nfuse = -1.0\n"},
		{"lethal beyond range", "[explosion]\nlethal_range = 500.0\n"},
		{"too few rays", "[explosion]\nmesh_rays = 2\n"},
		{"penetration over one", "[explosion]\npenetration = 1.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning(tt.data)
			if !errors.Is(err, ErrInvalidTuning) {
				t.Errorf("err = %v, want ErrInvalidTuning", err)
			}
		})
	}
}

func TestParseTuningSyntaxError(t *testing.T) {
	if _, err := ParseTuning("[grenade\nfuse = "); err == nil {
		t.Error("expected syntax error")
	}
}

func TestLoadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	if err := os.WriteFile(path, []byte("[grenade]\nthrow_speed = 400.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tu, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tu.Grenade.ThrowSpeed != 400 {
		t.Errorf("ThrowSpeed = %f", tu.Grenade.ThrowSpeed)
	}

	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}
}
