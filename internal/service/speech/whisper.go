package speech

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/reitmaier/banjara-api/internal/errors"
	"github.com/reitmaier/banjara-api/internal/model"
	"github.com/reitmaier/banjara-api/internal/service/common"
)

// whisperTranscriber implements Transcriber using the Whisper CLI
type whisperTranscriber struct {
	cmdRunner common.CmdRunner
	model     string
}

// NewWhisperTranscriber creates a Transcriber backed by the Whisper CLI
func NewWhisperTranscriber() Transcriber {
	return &whisperTranscriber{
		cmdRunner: common.NewCmdRunner(),
		model:     "large",
	}
}

// NewWhisperTranscriberWithCmdRunner creates a Transcriber with a custom CmdRunner (for testing)
func NewWhisperTranscriberWithCmdRunner(cmdRunner common.CmdRunner, whisperModel string) Transcriber {
	return &whisperTranscriber{
		cmdRunner: cmdRunner,
		model:     whisperModel,
	}
}

// whisperOutput is the subset of Whisper's JSON output we consume
type whisperOutput struct {
	Text string `json:"text"`
}

// Transcribe transcribes an audio file using the Whisper CLI
func (t *whisperTranscriber) Transcribe(ctx context.Context, audioPath string, language model.Language) (string, error) {
	if audioPath == "" {
		return "", errors.New(errors.CodeInvalidArg, "audio path is required")
	}

	langCode := localeToCode(language)
	if langCode == "" {
		return "", errors.LanguageInvalid()
	}

	tempDir, err := os.MkdirTemp("", "banjara-whisper-*")
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	args := []string{
		audioPath,
		"--model", t.model,
		"--language", langCode,
		"--output_format", "json",
		"--output_dir", tempDir,
		"--temperature", "0",
	}

	_, err = t.cmdRunner.Run(ctx, "whisper", args...)
	if err != nil {
		return "", errors.TranscriptionError(err)
	}

	// Whisper names its output after the input file
	baseName := filepath.Base(audioPath)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))
	jsonPath := filepath.Join(tempDir, baseName+".json")

	jsonData, err := os.ReadFile(jsonPath)
	if err != nil {
		return "", errors.TranscriptionError(err)
	}

	var output whisperOutput
	if err := json.Unmarshal(jsonData, &output); err != nil {
		return "", errors.TranscriptionError(err)
	}

	return strings.TrimSpace(output.Text), nil
}
