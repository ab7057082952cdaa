// Package speech holds the narrow adapters for the external
// speech-to-text and translation services. Both fail closed: any
// execution or parse problem surfaces as an EXTERNAL_ERROR, never a
// partial result.
package speech

import (
	"context"

	"github.com/reitmaier/banjara-api/internal/model"
)

// Transcriber converts a recorded audio file into text
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string, language model.Language) (string, error)
}

// Translator converts text between two languages
type Translator interface {
	Translate(ctx context.Context, text string, from, to model.Language) (string, error)
}

// localeToCode maps the deployment's locale values to the short codes
// the external tools expect
func localeToCode(language model.Language) string {
	switch language {
	case model.LanguageHindi:
		return "hi"
	case model.LanguageMarathi:
		return "mr"
	case model.LanguageEnglish:
		return "en"
	default:
		return ""
	}
}
