// Package format defines the custom-format model: declarative condition lists
// evaluated against parsed release attributes. Formats detect properties of a
// release; score values live in scoring profiles, never here.
package format

// ConditionType discriminates what a condition tests.
type ConditionType string

const (
	TypeResolution   ConditionType = "resolution"
	TypeSource       ConditionType = "source"
	TypeReleaseTitle ConditionType = "release_title"
	TypeReleaseGroup ConditionType = "release_group"
	TypeCodec        ConditionType = "codec"
	TypeAudio        ConditionType = "audio"
	TypeHDR          ConditionType = "hdr"
	TypeService      ConditionType = "streaming_service"
	TypeFlag         ConditionType = "flag"
	TypeIndexer      ConditionType = "indexer"
)

// Category groups formats for breakdown reporting and exclusivity resolution.
type Category string

const (
	CategoryResolution  Category = "resolution"
	CategorySource      Category = "source"
	CategoryCodec       Category = "codec"
	CategoryAudio       Category = "audio"
	CategoryHDR         Category = "hdr"
	CategoryStreaming   Category = "streaming"
	CategoryGroupTier   Category = "release_group_tier"
	CategoryMicro       Category = "micro"
	CategoryLowQuality  Category = "low_quality"
	CategoryBanned      Category = "banned"
	CategoryEnhancement Category = "enhancement"
	CategoryOther       Category = "other"
)

// Categories lists every valid format category.
var Categories = []Category{
	CategoryResolution, CategorySource, CategoryCodec, CategoryAudio,
	CategoryHDR, CategoryStreaming, CategoryGroupTier, CategoryMicro,
	CategoryLowQuality, CategoryBanned, CategoryEnhancement, CategoryOther,
}

// Flag names accepted by flag-typed conditions.
const (
	FlagRemux  = "remux"
	FlagRepack = "repack"
	FlagProper = "proper"
	Flag3D     = "3d"
)

// Condition is a single predicate over release attributes.
//
// Exactly one payload field is meaningful, selected by Type:
// Pattern for release_title/release_group/indexer, Value for the enum types
// (resolution, source, codec, audio, hdr, streaming_service) and Flag for
// flag conditions. For hdr conditions an empty Value means SDR.
//
// Required conditions must all hold (AND); the remaining conditions form an
// OR group of which at least one must hold when any exist. Negate inverts
// the raw predicate result.
type Condition struct {
	Name     string        `json:"name" toml:"name"`
	Type     ConditionType `json:"type" toml:"type"`
	Required bool          `json:"required,omitempty" toml:"required"`
	Negate   bool          `json:"negate,omitempty" toml:"negate"`

	Pattern string `json:"pattern,omitempty" toml:"pattern"`
	Value   string `json:"value,omitempty" toml:"value"`
	Flag    string `json:"flag,omitempty" toml:"flag"`
}

// CustomFormat is a named, declarative detection rule.
//
// IDs are globally unique and stable: they are the score-lookup key in
// profiles and must never be renamed once shipped. Built-in formats are
// static data defined at process start; user formats are additive records
// whose ids are validated against the built-in namespace by the CRUD layer.
type CustomFormat struct {
	ID          string      `json:"id" toml:"id"`
	Name        string      `json:"name" toml:"name"`
	Description string      `json:"description,omitempty" toml:"description"`
	Category    Category    `json:"category" toml:"category"`
	Tags        []string    `json:"tags,omitempty" toml:"tags"`
	Conditions  []Condition `json:"conditions" toml:"conditions"`
}
