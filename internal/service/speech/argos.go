package speech

import (
	"context"
	"strings"

	"github.com/reitmaier/banjara-api/internal/errors"
	"github.com/reitmaier/banjara-api/internal/model"
	"github.com/reitmaier/banjara-api/internal/service/common"
)

// argosTranslator implements Translator using the Argos Translate CLI
type argosTranslator struct {
	cmdRunner common.CmdRunner
}

// NewArgosTranslator creates a Translator backed by the Argos Translate CLI
func NewArgosTranslator() Translator {
	return &argosTranslator{
		cmdRunner: common.NewCmdRunner(),
	}
}

// NewArgosTranslatorWithCmdRunner creates a Translator with a custom CmdRunner (for testing)
func NewArgosTranslatorWithCmdRunner(cmdRunner common.CmdRunner) Translator {
	return &argosTranslator{
		cmdRunner: cmdRunner,
	}
}

// Translate translates text using the Argos Translate CLI
func (t *argosTranslator) Translate(ctx context.Context, text string, from, to model.Language) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.New(errors.CodeInvalidArg, "text cannot be empty")
	}

	fromCode := localeToCode(from)
	toCode := localeToCode(to)
	if fromCode == "" || toCode == "" {
		return "", errors.LanguageInvalid()
	}

	args := []string{
		"--from-lang", fromCode,
		"--to-lang", toCode,
		text,
	}

	output, err := t.cmdRunner.Run(ctx, "argos-translate", args...)
	if err != nil {
		return "", errors.TranslationError(err)
	}

	translated := strings.TrimSpace(string(output))
	if translated == "" {
		return "", errors.TranslationError(nil)
	}
	return translated, nil
}
