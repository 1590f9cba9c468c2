package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	if got, want := embeddedDefault(), DefaultFlappyConfig(); got != want {
		t.Errorf("embedded defaults differ from DefaultFlappyConfig:\n got  %+v\n want %+v", got, want)
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := DefaultFlappyConfig()

	if got := cfg.SpawnInterval(); got != 2500*time.Millisecond {
		t.Errorf("SpawnInterval() = %v, expected 2.5s", got)
	}
	if got := cfg.ObstacleWidth(); got != 80 {
		t.Errorf("ObstacleWidth() = %d, expected 80", got)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		field  string
	}{
		{"zero ground tile", func(c *FlappyConfig) { c.World.GroundTileWidth = 0 }, "world.ground_tile_width"},
		{"negative scale", func(c *FlappyConfig) { c.Obstacles.Scale = -1 }, "obstacles.scale"},
		{"zero fall divisor", func(c *FlappyConfig) { c.Physics.FallDivisor = 0 }, "physics.fall_divisor"},
		{"negative step", func(c *FlappyConfig) { c.Obstacles.MaxStep = -5 }, "obstacles.max_step"},
		{"zero fps", func(c *FlappyConfig) { c.Render.FPS = 0 }, "render.fps"},
		{"bad audio", func(c *FlappyConfig) { c.Audio.Output = "speaker" }, "audio.output"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %s", err, tc.field)
			}
		})
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("world:\n  spawn_interval_ms: 1000\nplayer:\n  x: 120\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.World.SpawnIntervalMS != 1000 {
		t.Errorf("spawn interval = %d, expected 1000", cfg.World.SpawnIntervalMS)
	}
	if cfg.Player.X != 120 {
		t.Errorf("player x = %d, expected 120", cfg.Player.X)
	}
	// Untouched keys keep defaults
	if cfg.World.GroundTileWidth != 64 || cfg.Player.StartY != 200 {
		t.Errorf("unspecified keys should keep defaults, got %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("world: [1, 2")); err == nil {
		t.Error("malformed YAML should fail")
	}
	if _, err := Parse([]byte("render:\n  cell_width: 0\n")); err == nil {
		t.Error("invalid values should fail validation")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("audio:\n  output: \"off\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Audio.Output != "off" {
		t.Errorf("audio output = %q, expected off", cfg.Audio.Output)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("obstacles:\n  scale: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := Load(bad)
	if err == nil {
		t.Fatal("invalid explicit config should fail")
	}
	if !strings.Contains(err.Error(), bad) || !strings.Contains(err.Error(), "obstacles.scale") {
		t.Errorf("error %q should name the file and the field", err)
	}

	malformed := filepath.Join(dir, "malformed.yaml")
	if err := os.WriteFile(malformed, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(malformed); err == nil || !strings.Contains(err.Error(), "cannot parse") {
		t.Errorf("malformed explicit config should fail to parse, got %v", err)
	}
}

func TestLoadSkipsInvalidLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	chdir(t, work)

	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, localConfigPath), []byte("render:\n  fps: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded || cfg != DefaultFlappyConfig() {
		t.Errorf("invalid local config should be skipped, got source %q fps %d", source, cfg.Render.FPS)
	}
}

func TestDefaultYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("DefaultYAML() does not decode to DefaultFlappyConfig()")
	}
}

func TestLoadFallsBackToLocalThenEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	chdir(t, work)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected embedded", source)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded config differs from defaults")
	}

	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, localConfigPath), []byte("render:\n  fps: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != localConfigPath {
		t.Errorf("source = %q, expected %q", source, localConfigPath)
	}
	if cfg.Render.FPS != 30 {
		t.Errorf("fps = %d, expected 30", cfg.Render.FPS)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.World.SpawnIntervalMS = 1800

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "spawn_interval_ms: 1800") {
		t.Errorf("marshalled YAML should use yaml keys, got:\n%s", data)
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if parsed != cfg {
		t.Errorf("parsed config differs from original")
	}
}

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
