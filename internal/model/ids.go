package model

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/reitmaier/banjara-api/internal/errors"
)

// Identifier wrapper types. The underlying representations are shared
// (int64 or UUID) but the types are distinct so a PhotoID can never be
// passed where an AudioID is expected.

// PhotoID identifies a photo row
type PhotoID int64

// AudioID identifies a community audio recording row
type AudioID int64

// TranslationAudioID identifies a translation audio row
type TranslationAudioID int64

// QueryID is the client-supplied UUID identity of a query
type QueryID uuid.UUID

// SampleID is a sparse, manually-assigned sequence number giving a
// secondary ordering over a subset of queries
type SampleID int

func (id PhotoID) String() string            { return strconv.FormatInt(int64(id), 10) }
func (id AudioID) String() string            { return strconv.FormatInt(int64(id), 10) }
func (id TranslationAudioID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id QueryID) String() string            { return uuid.UUID(id).String() }
func (id SampleID) String() string           { return strconv.Itoa(int(id)) }

// UUID returns the underlying uuid for database parameters
func (id QueryID) UUID() uuid.UUID { return uuid.UUID(id) }

// MarshalText renders the canonical UUID string form
func (id QueryID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

// UnmarshalText parses the canonical UUID string form
func (id *QueryID) UnmarshalText(text []byte) error {
	parsed, err := uuid.Parse(string(text))
	if err != nil {
		return errors.QueryIDInvalid()
	}
	*id = QueryID(parsed)
	return nil
}

// ParsePhotoID parses a decimal photo id
func ParsePhotoID(input string) (PhotoID, error) {
	serial, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, errors.PhotoIDInvalid()
	}
	return PhotoID(serial), nil
}

// ParseQueryID parses a query UUID
func ParseQueryID(input string) (QueryID, error) {
	id, err := uuid.Parse(input)
	if err != nil {
		return QueryID{}, errors.QueryIDInvalid()
	}
	return QueryID(id), nil
}

// ParseTranslationAudioID parses a decimal translation audio id
func ParseTranslationAudioID(input string) (TranslationAudioID, error) {
	serial, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, errors.TranslationAudioIDInvalid()
	}
	return TranslationAudioID(serial), nil
}

// ParseSampleID parses a positive sample sequence number
func ParseSampleID(input string) (SampleID, error) {
	value, err := strconv.Atoi(input)
	if err != nil || value <= 0 {
		return 0, errors.SampleIDInvalid()
	}
	return SampleID(value), nil
}

// Next returns the adjacent sample id above, which may not exist yet
func (id SampleID) Next() SampleID { return id + 1 }

// Prev returns the adjacent sample id below, or 0 when id is the floor
func (id SampleID) Prev() SampleID {
	if id <= 1 {
		return 0
	}
	return id - 1
}

// Valid reports whether the sample id is a positive sequence number
func (id SampleID) Valid() bool { return id > 0 }
