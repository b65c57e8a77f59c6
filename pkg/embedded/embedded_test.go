package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func resetForTest() {
	dataFS = nil
	initialized = false
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetForTest()
	defer resetForTest()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	resetForTest()

	_, err := ReadFile("data/game.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestReadFile(t *testing.T) {
	resetForTest()
	defer resetForTest()

	Init(fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("round:\n  seconds: 60\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain path", "data/game.yaml", false},
		{"dot prefix", "./data/game.yaml", false},
		{"missing file", "data/missing.yaml", true},
		{"wrong prefix", "assets/game.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Errorf("ReadFile(%q) returned empty data", tt.path)
			}
		})
	}

	if !Exists("data/game.yaml") {
		t.Error("Exists() should report embedded file")
	}
	if Exists("data/nope.yaml") {
		t.Error("Exists() should be false for missing file")
	}
}
