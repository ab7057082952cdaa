package model

import (
	"strings"
	"time"
)

// Photo represents a content-addressed photo asset
type Photo struct {
	ID        PhotoID   `json:"id" db:"id"`
	Hash      string    `json:"hash" db:"hash"`
	Path      string    `json:"path" db:"path"`
	Alias     string    `json:"alias" db:"alias"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	// AudioLengthSeconds is the summed length of attached recordings
	AudioLengthSeconds float64 `json:"audio_length" db:"audio_length"`
}

// Audio represents a community-sourced recording attached to a photo
type Audio struct {
	ID           AudioID `json:"id" db:"id"`
	PhotoID      PhotoID `json:"photo_id" db:"photo_id"`
	Hash         string  `json:"hash" db:"hash"`
	Path         string  `json:"path" db:"path"`
	LengthMillis int64   `json:"length" db:"length"`
}

// Query represents a user's spoken request, expected to match a photo
type Query struct {
	ID            QueryID   `json:"id" db:"id"`
	Path          string    `json:"path" db:"path"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
	CommentPaths  []string  `json:"comment_paths" db:"comment_path"`
	TextComment   *string   `json:"text_comment" db:"text_comment"`
	Include       Include   `json:"include" db:"include"`
	TranslationEN *string   `json:"translation_en" db:"translation_en"`
	TranslationHI *string   `json:"translation_hi" db:"translation_hi"`
	TranslationMR *string   `json:"translation_mr" db:"translation_mr"`
	SampleID      *SampleID `json:"sample_id" db:"sample_id"`
}

// JoinCommentPaths encodes the append-only comment path list into its
// comma-joined column form
func JoinCommentPaths(paths []string) string {
	return strings.Join(paths, ",")
}

// SplitCommentPaths decodes the comma-joined comment path column
func SplitCommentPaths(column string) []string {
	if column == "" {
		return nil
	}
	return strings.Split(column, ",")
}

// QueryResult is a ranked candidate match between a query and a photo.
// The (query, photo) pair is unique; ranking is assigned once at batch
// insert and never recomputed.
type QueryResult struct {
	QueryID    QueryID `json:"query_id" db:"query_id"`
	PhotoID    PhotoID `json:"photo_id" db:"photo_id"`
	Confidence float64 `json:"confidence" db:"confidence"`
	Rating     Rating  `json:"rating" db:"rating"`
	Ranking    int     `json:"ranking" db:"ranking"`
}

// TranslationAudio is a recording of a human re-speaking a query in a
// target language, with its transcription pipeline state
type TranslationAudio struct {
	ID                  TranslationAudioID  `json:"id" db:"id"`
	QueryID             QueryID             `json:"query_id" db:"query_id"`
	Language            Language            `json:"language" db:"language"`
	Path                string              `json:"path" db:"path"`
	CreatedAt           time.Time           `json:"created_at" db:"created_at"`
	Transcript          *string             `json:"transcript" db:"transcript"`
	TranscriptionStatus TranscriptionStatus `json:"transcription_status" db:"transcription_status"`
	GoogleTranslation   *string             `json:"translation_google_en" db:"translation_google_en"`
}

// HydratedResult is a query result joined with photo attributes for
// display; never persisted independently
type HydratedResult struct {
	QueryID    QueryID `json:"query_id" db:"query_id"`
	PhotoID    PhotoID `json:"photo_id" db:"photo_id"`
	Confidence float64 `json:"confidence" db:"confidence"`
	Rating     Rating  `json:"rating" db:"rating"`
	Ranking    int     `json:"ranking" db:"ranking"`
	PhotoPath  string  `json:"photo_path" db:"photo_path"`
	PhotoAlias string  `json:"photo_alias" db:"photo_alias"`
}

// HydratedQuery is the assembled read model for a query detail view
type HydratedQuery struct {
	Query            Query              `json:"query"`
	Results          []HydratedResult   `json:"results"`
	TranslationAudio []TranslationAudio `json:"translation_audio"`
	NextID           *QueryID           `json:"next_id"`
	PreviousID       *QueryID           `json:"previous_id"`
}

// QueryWithRank pairs a query with its result ranking against a photo
type QueryWithRank struct {
	Query   Query `json:"query"`
	Ranking int   `json:"ranking"`
}

// PhotoDetail is the assembled read model for a photo detail view
type PhotoDetail struct {
	Photo   Photo           `json:"photo"`
	Audio   []Audio         `json:"audio"`
	Queries []QueryWithRank `json:"queries"`
}

// SpeechResult is one candidate match from the external speech
// recognition pipeline
type SpeechResult struct {
	Photo      string  `json:"photo"`
	Confidence float64 `json:"confidence"`
	Rating     Rating  `json:"rating"`
}
