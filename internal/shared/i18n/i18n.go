// Package i18n отвечает за локализацию пользовательских сообщений API.
//
// Переводы лежат в translation/*.toml и встраиваются в бинарник.
// Язык выбирается по заголовку Accept-Language, по умолчанию — испанский.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var translationFS embed.FS

// Идентификаторы сообщений. Совпадают с ключами в translation/*.toml.
const (
	MsgBadJSON            = "BadJSON"
	MsgFieldsRequired     = "FieldsRequired"
	MsgUsernameTaken      = "UsernameTaken"
	MsgEmailTaken         = "EmailTaken"
	MsgRegisterFailed     = "RegisterFailed"
	MsgInvalidCredentials = "InvalidCredentials"
	MsgProfileFailed      = "ProfileFailed"
	MsgUserNotFound       = "UserNotFound"
	MsgUnauthorized       = "Unauthorized"
)

// Translator хранит бандл переводов.
type Translator struct {
	bundle *i18n.Bundle
}

// New создаёт Translator с языком по умолчанию defaultLang (например "es").
func New(defaultLang string) (*Translator, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("parse default language %q: %w", defaultLang, err)
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if err := parseTranslationFiles(translationFS, bundle); err != nil {
		return nil, err
	}
	return &Translator{bundle: bundle}, nil
}

// MustNew как New, но паникует. Для тестов и дефолтов.
func MustNew(defaultLang string) *Translator {
	t, err := New(defaultLang)
	if err != nil {
		panic(err)
	}
	return t
}

// Message возвращает сообщение id на языке из acceptLanguage.
//
// data подставляется в шаблон сообщения (например {"Cause": "..."}).
// Если сообщение не найдено, возвращается сам id.
func (t *Translator) Message(acceptLanguage, id string, data map[string]any) string {
	localizer := i18n.NewLocalizer(t.bundle, acceptLanguage)

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}

func parseTranslationFiles(fsys fs.FS, bundle *i18n.Bundle) error {
	return fs.WalkDir(fsys, "translation", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}

		_, err = bundle.ParseMessageFileBytes(data, path)
		return err
	})
}
