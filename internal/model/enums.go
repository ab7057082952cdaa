package model

import (
	"encoding/json"
	"strings"

	"github.com/reitmaier/banjara-api/internal/errors"
)

// Rating is an annotator's judgement of a query result
type Rating int

const (
	RatingUnrated  Rating = 0
	RatingPositive Rating = 1
	RatingNegative Rating = -1
)

func (r Rating) String() string {
	switch r {
	case RatingPositive:
		return "Positive"
	case RatingNegative:
		return "Negative"
	default:
		return "Unrated"
	}
}

// RatingFromValue decodes a stored rating value, defaulting to Unrated
func RatingFromValue(value int) Rating {
	switch Rating(value) {
	case RatingPositive:
		return RatingPositive
	case RatingNegative:
		return RatingNegative
	default:
		return RatingUnrated
	}
}

// UnmarshalJSON accepts either the enum name ("Positive") or the stored
// numeric value (1), since both appear in speech-pipeline payloads.
func (r *Rating) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		switch strings.ToLower(name) {
		case "positive":
			*r = RatingPositive
		case "negative":
			*r = RatingNegative
		default:
			*r = RatingUnrated
		}
		return nil
	}
	var value int
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*r = RatingFromValue(value)
	return nil
}

func (r Rating) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// Include records whether a query should be part of the study corpus
type Include string

const (
	IncludeUnknown Include = "Unknown"
	IncludeExclude Include = "Exclude"
	IncludeInclude Include = "Include"
	IncludeDiscuss Include = "Discuss"
)

// IncludeFromString matches case-insensitively, defaulting to Unknown
func IncludeFromString(input string) Include {
	for _, include := range []Include{IncludeUnknown, IncludeExclude, IncludeInclude, IncludeDiscuss} {
		if strings.EqualFold(string(include), input) {
			return include
		}
	}
	return IncludeUnknown
}

// TranscriptionStatus is the lifecycle state of a translation audio's
// background transcription
type TranscriptionStatus string

const (
	TranscriptionPending   TranscriptionStatus = "Pending"
	TranscriptionFailed    TranscriptionStatus = "Failed"
	TranscriptionCompleted TranscriptionStatus = "Completed"
	TranscriptionUnknown   TranscriptionStatus = "Unknown"
)

// TranscriptionStatusFromString matches case-insensitively, defaulting
// to Unknown
func TranscriptionStatusFromString(input string) TranscriptionStatus {
	for _, status := range []TranscriptionStatus{TranscriptionPending, TranscriptionFailed, TranscriptionCompleted, TranscriptionUnknown} {
		if strings.EqualFold(string(status), input) {
			return status
		}
	}
	return TranscriptionUnknown
}

// Language is a spoken language recognised by the deployment. Values
// are the speech service's locale codes.
type Language string

const (
	LanguageMarathi Language = "mr-IN"
	LanguageHindi   Language = "hi-IN"
	LanguageEnglish Language = "en-UK"
	LanguageUnknown Language = "Unknown"
)

// LanguageFromValue matches a locale code case-insensitively
func LanguageFromValue(input string) (Language, error) {
	for _, lang := range []Language{LanguageMarathi, LanguageHindi, LanguageEnglish, LanguageUnknown} {
		if strings.EqualFold(string(lang), input) {
			return lang, nil
		}
	}
	return LanguageUnknown, errors.LanguageInvalid()
}
