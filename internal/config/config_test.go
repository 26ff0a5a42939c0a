package config

import (
	"testing"
)

func TestLoadConfig_Credential(t *testing.T) {
	clearAll := func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("GOOGLE_API_KEY", "")
		t.Setenv("FORGE_API_KEY", "")
	}

	t.Run("GEMINI_API_KEYが最優先なのだ", func(t *testing.T) {
		clearAll(t)
		t.Setenv("GEMINI_API_KEY", "gemini-key")
		t.Setenv("GOOGLE_API_KEY", "google-key")
		t.Setenv("FORGE_API_KEY", "forge-key")

		cfg := LoadConfig()
		if cfg.APIKey != "gemini-key" {
			t.Errorf("expected gemini-key, got %q", cfg.APIKey)
		}
	})

	t.Run("GEMINI_API_KEYが空ならGOOGLE_API_KEYに落ちるのだ", func(t *testing.T) {
		clearAll(t)
		t.Setenv("GOOGLE_API_KEY", "google-key")
		t.Setenv("FORGE_API_KEY", "forge-key")

		cfg := LoadConfig()
		if cfg.APIKey != "google-key" {
			t.Errorf("expected google-key, got %q", cfg.APIKey)
		}
	})

	t.Run("最後の手段はFORGE_API_KEYなのだ", func(t *testing.T) {
		clearAll(t)
		t.Setenv("FORGE_API_KEY", "forge-key")

		cfg := LoadConfig()
		if cfg.APIKey != "forge-key" {
			t.Errorf("expected forge-key, got %q", cfg.APIKey)
		}
	})

	t.Run("どれも無ければ認証情報なしと判定されるのだ", func(t *testing.T) {
		clearAll(t)
		cfg := LoadConfig()
		if cfg.HasCredential() {
			t.Error("expected no credential")
		}
	})
}

func TestLoadConfig_Model(t *testing.T) {
	t.Run("未設定ならデフォルトモデルなのだ", func(t *testing.T) {
		t.Setenv("IMAGE_GEMINI_MODEL", "")
		cfg := LoadConfig()
		if cfg.ImageModel != DefaultImageModel {
			t.Errorf("expected %q, got %q", DefaultImageModel, cfg.ImageModel)
		}
	})

	t.Run("環境変数でモデルを上書きできるのだ", func(t *testing.T) {
		t.Setenv("IMAGE_GEMINI_MODEL", "gemini-3-pro-image-preview")
		cfg := LoadConfig()
		if cfg.ImageModel != "gemini-3-pro-image-preview" {
			t.Errorf("unexpected model: %q", cfg.ImageModel)
		}
	})
}
