package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML is invalid: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default diverges from hardcoded default:\nembedded:  %+v\nhardcoded: %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "gameplay:\n  lives: 7\n  max_level: 4\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, want 7", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.MaxLevel != 4 {
		t.Errorf("max_level = %d, want 4", cfg.Gameplay.MaxLevel)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestApplyPreset(t *testing.T) {
	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives != 5 || easy.Gameplay.MaxLives != 5 {
		t.Errorf("easy preset lives = %d/%d, want 5/5", easy.Gameplay.Lives, easy.Gameplay.MaxLives)
	}

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Gameplay.Lives != 2 {
		t.Errorf("hard preset lives = %d, want 2", hard.Gameplay.Lives)
	}
	if hard.Spawn.SpecialChance <= Default().Spawn.SpecialChance {
		t.Error("hard preset should raise special chance")
	}

	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != Default() {
		t.Error("normal preset should leave config untouched")
	}
}
