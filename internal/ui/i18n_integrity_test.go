package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-calendar/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in each shipped locale file, and that no locale carries orphans.
func TestI18nIntegrity(t *testing.T) {
	definedKeys := map[string]bool{
		config.TKeyWinTitle:      true,
		config.TKeyMenuShow:      true,
		config.TKeyMenuToday:     true,
		config.TKeyTrayToday:     true,
		config.TKeyBtnToday:      true,
		config.TKeyHintMonth:     true,
		config.TKeyHintYear:      true,
		config.TKeyNotifServeErr: true,
		config.TKeyMenuSettings:  true,
		config.TKeyWinSettings:   true,
		config.TKeyLblSharing:    true,
		config.TKeyLblShare:      true,
		config.TKeyLblPort:       true,
		config.TKeyHelpPort:      true,
		config.TKeyErrPortReq:    true,
		config.TKeyErrPortNum:    true,
		config.TKeyErrPortRange:  true,
		config.TKeyBtnSave:       true,
		config.TKeyBtnCancel:     true,
		config.TKeyLblFooter:     true,
	}
	for _, k := range config.WeekdayKeys {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			name := "active." + lang + ".json"

			// Adjust path if running test from internal/ui or root
			path := filepath.Join("locales", name)
			content, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				path = filepath.Join("..", "..", "internal", "ui", "locales", name)
				content, err = os.ReadFile(path)
			}
			require.NoError(t, err, "Must load %s", name)

			var jsonMap map[string]interface{}
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, name)
			}

			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				assert.Truef(t, definedKeys[jsonKey], "Key '%s' in %s has no constant in config.go", jsonKey, name)
			}
		})
	}
}

func TestI18n_TrayTemplate(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("locales", "active.en.json"))
	require.NoError(t, err)

	var jsonMap map[string]string
	require.NoError(t, json.Unmarshal(content, &jsonMap))
	assert.Contains(t, jsonMap[config.TKeyTrayToday], "{{.Date}}")
}
