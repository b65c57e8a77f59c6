package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata
func openTestGdata(t *testing.T, app string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: app,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 1.0 {
		t.Errorf("SoundVolume: got %v, want 1.0", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试降级模式
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	sm.SetSoundEnabled(false)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should not fail: %v", err)
	}
	if !sm.GetSettings().SoundEnabled {
		t.Error("Load() in degraded mode should restore defaults")
	}
}

// TestSettingsLoadSave 测试保存后重新加载
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_whackamole_settings")

	sm1 := NewSettingsManager(gdataManager)
	sm1.SetSoundVolume(0.6)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	settings := NewSettingsManager(gdataManager).GetSettings()

	if settings.SoundVolume != 0.6 {
		t.Errorf("Loaded SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestSettingsLoadPartialData 旧数据缺失的字段保持默认值
func TestSettingsLoadPartialData(t *testing.T) {
	gdataManager := openTestGdata(t, "test_whackamole_partial")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: 3\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	settings := NewSettingsManager(gdataManager).GetSettings()
	if settings.SoundVolume != 1.0 {
		t.Errorf("out-of-range volume should be clamped, got %v", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("missing soundEnabled should default to true")
	}
}

// TestSettingsLoadCorrupted 损坏的数据回退到默认值
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := openTestGdata(t, "test_whackamole_corrupted")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [oops")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := &SettingsManager{gdataManager: gdataManager, settings: DefaultSettings()}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report corrupted data")
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("corrupted data should fall back to defaults, got %+v", sm.GetSettings())
	}
}

// TestSetSoundVolumeClamp 测试音量范围校验
func TestSetSoundVolumeClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},
		{0.0, 0.0},
		{1.0, 1.0},
		{-0.5, 0.0},
		{1.5, 1.0},
	}

	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if got := sm.GetSettings().SoundVolume; got != tt.expected {
			t.Errorf("SetSoundVolume(%v): got %v, want %v", tt.input, got, tt.expected)
		}
	}
}
