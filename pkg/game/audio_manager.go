package game

import (
	"log"

	"github.com/decker502/whackamole/internal/audio"
	"github.com/decker502/whackamole/pkg/types"
)

// AudioManager 音效管理器
// 职责：
//   - 把游戏事件（命中、挥空、弹出、爆炸）转成合成音效
//   - 应用 SettingsManager 中的音效开关和音量
//
// 播放失败只记录日志，不影响游戏逻辑
type AudioManager struct {
	sink            audio.Sink       // 输出端，可为 nil（无声模式）
	settingsManager *SettingsManager // 可为 nil，此时总是以满音量播放
}

// NewAudioManager 创建音效管理器
//
// 参数：
//   - sink: 音效输出端（ebiten 或 beep speaker），nil 表示无声
//   - sm: 设置管理器，可为 nil
func NewAudioManager(sink audio.Sink, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		sink:            sink,
		settingsManager: sm,
	}
}

// PlayCue 播放音效
func (am *AudioManager) PlayCue(cue types.Cue) {
	if am.sink == nil || !am.SoundEnabled() {
		return
	}

	if err := am.sink.Play(cue, am.volume()); err != nil {
		log.Printf("[AudioManager] Warning: Failed to play cue %s: %v", cue, err)
	}
}

// SoundEnabled 音效是否开启
func (am *AudioManager) SoundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// ToggleMute 切换静音并保存设置，返回切换后是否开启音效
func (am *AudioManager) ToggleMute() bool {
	if am.settingsManager == nil {
		return true
	}

	enabled := !am.settingsManager.GetSettings().SoundEnabled
	am.settingsManager.SetSoundEnabled(enabled)
	if err := am.settingsManager.Save(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to save settings: %v", err)
	}

	log.Printf("[AudioManager] Sound enabled: %v", enabled)
	return enabled
}

// SetSoundVolume 设置音效音量，影响之后播放的音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
}

func (am *AudioManager) volume() float64 {
	if am.settingsManager == nil {
		return 1.0
	}
	return am.settingsManager.GetSettings().SoundVolume
}
