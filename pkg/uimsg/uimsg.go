package uimsg

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/Sole248k/Task-Management-Application/pkg/translator"
)

// Get returns the translated message for a key, falling back to the
// key itself when no translation is available.
func Get(key, lang string) string {
	return GetData(key, lang, nil)
}

// GetData returns the translated message with template data applied.
func GetData(key, lang string, data map[string]interface{}) string {
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", key), zap.Error(err))
		return key
	}
	return msg
}
