package terrain

import "testing"

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"levels":  "16",
		"octaves": "3",
		"speed":   "1.5",
		"line":    "2",
		"noise":   "Simplex",
		"seed":    "99",
		"bogus":   "1",
	})
	if c.Levels != 16 || c.Octaves != 3 || c.Speed != 1.5 || c.LineThickness != 2 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.Noise != "simplex" || c.Seed != 99 {
		t.Fatalf("noise override not applied: %q %d", c.Noise, c.Seed)
	}
}

func TestFromMapIgnoresMalformed(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{"levels": "many", "speed": "NaN", "seed": "x"})
	if c.Levels != def.Levels || c.Speed != def.Speed || c.Seed != def.Seed {
		t.Fatalf("malformed values should be ignored: %+v", c)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map should yield defaults")
	}
}

func TestSetReportsRecognition(t *testing.T) {
	c := DefaultConfig()
	if !c.Set("detail", "5") || c.Octaves != 5 {
		t.Fatal("detail alias should set octaves")
	}
	if c.Set("unknown", "1") {
		t.Fatal("unknown key reported as recognized")
	}
	if c.Set("ripple_gain", "") {
		t.Fatal("empty value reported as parsed")
	}
}

func TestNormalizeClamps(t *testing.T) {
	c := Config{Levels: 100, Octaves: 8, Speed: 0, LineThickness: 9, SmoothingMillis: 10}.Normalize()
	if c.Levels != MaxLevels || c.Octaves != MaxOctaves || c.Speed != MinSpeed ||
		c.LineThickness != MaxLineThickness || c.SmoothingMillis != MinSmoothingMillis {
		t.Fatalf("upper/lower clamps not applied: %+v", c)
	}
	c = Config{Levels: 1, Octaves: 1, Speed: 7, LineThickness: 0.1, SmoothingMillis: 900}.Normalize()
	if c.Levels != MinLevels || c.Octaves != MinOctaves || c.Speed != MaxSpeed ||
		c.LineThickness != MinLineThickness || c.SmoothingMillis != MaxSmoothingMillis {
		t.Fatalf("clamps not applied: %+v", c)
	}
	if c.ScaleX != 1 || c.ScaleY != 1 || c.Noise != "perlin" {
		t.Fatalf("zero scales and noise should fall back: %+v", c)
	}
	if d := DefaultConfig(); d.Normalize() != d {
		t.Fatal("defaults should already be normalized")
	}
}
