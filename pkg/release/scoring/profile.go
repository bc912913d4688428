// Package scoring turns matched custom formats into deterministic release
// scores, rankings, and upgrade decisions. Formats detect, profiles score:
// score values live here, never in the format catalogue.
package scoring

import "strings"

// Protocol is the transport a release would arrive over.
type Protocol string

const (
	ProtocolTorrent   Protocol = "torrent"
	ProtocolUsenet    Protocol = "usenet"
	ProtocolStreaming Protocol = "streaming"
)

// BanScore marks a format score as an absolute ban. Any matched format whose
// resolved score is at or below this bans the release outright: bans must
// never be out-scored by positive contributions elsewhere.
const BanScore = -999999

// banEntry is the score assigned to banned formats in the built-in profiles.
const banEntry = -1000000

// Profile maps format ids to score contributions plus acceptance thresholds.
// Formats absent from FormatScores contribute exactly zero.
type Profile struct {
	ID          string `json:"id" toml:"id"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description,omitempty" toml:"description"`

	FormatScores map[string]int `json:"format_scores" toml:"format_scores"`

	MinScore          float64 `json:"min_score" toml:"min_score"`
	UpgradeUntilScore float64 `json:"upgrade_until_score" toml:"upgrade_until_score"`
	MinScoreIncrement float64 `json:"min_score_increment" toml:"min_score_increment"`

	MovieMinSizeGB   float64 `json:"movie_min_size_gb" toml:"movie_min_size_gb"`
	MovieMaxSizeGB   float64 `json:"movie_max_size_gb" toml:"movie_max_size_gb"`
	EpisodeMinSizeMB float64 `json:"episode_min_size_mb" toml:"episode_min_size_mb"`
	EpisodeMaxSizeMB float64 `json:"episode_max_size_mb" toml:"episode_max_size_mb"`

	// AllowedProtocols empty means no restriction.
	AllowedProtocols []Protocol `json:"allowed_protocols,omitempty" toml:"allowed_protocols"`

	UpgradesAllowed bool `json:"upgrades_allowed" toml:"upgrades_allowed"`
}

// Score returns the profile's score for a format id; unmapped ids score 0.
func (p Profile) Score(formatID string) int {
	return p.FormatScores[formatID]
}

// AllowsProtocol reports whether the profile accepts the given protocol.
// An empty allow-list accepts everything.
func (p Profile) AllowsProtocol(proto Protocol) bool {
	if len(p.AllowedProtocols) == 0 {
		return true
	}
	for _, allowed := range p.AllowedProtocols {
		if allowed == proto {
			return true
		}
	}
	return false
}

// Builtin returns the four shipped profiles. The returned slice is static
// data; callers must treat it as read-only.
func Builtin() []Profile {
	return builtinProfiles
}

// FindProfile returns the built-in profile with the given name or id,
// case-insensitively.
func FindProfile(name string) (Profile, bool) {
	for _, p := range builtinProfiles {
		if strings.EqualFold(p.Name, name) || strings.EqualFold(p.ID, name) {
			return p, true
		}
	}
	return Profile{}, false
}

// IsBuiltinProfileID reports whether id belongs to the reserved built-in
// profile namespace.
func IsBuiltinProfileID(id string) bool {
	for _, p := range builtinProfiles {
		if p.ID == id {
			return true
		}
	}
	return false
}

// bannedScores are shared by every built-in profile: these releases must
// never be selected no matter which profile is active.
func bannedScores() map[string]int {
	return map[string]int{
		"banned-cam":       banEntry,
		"banned-telesync":  banEntry,
		"banned-telecine":  banEntry,
		"banned-screener":  banEntry,
		"banned-workprint": banEntry,
	}
}

func merge(maps ...map[string]int) map[string]int {
	out := make(map[string]int)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

var builtinProfiles = []Profile{
	{
		ID:          "profile-quality",
		Name:        "Quality",
		Description: "Best possible quality regardless of size: remuxes, lossless audio, top-tier groups",
		FormatScores: merge(bannedScores(), map[string]int{
			"res-2160p": 100, "res-1080p": 60, "res-720p": 20, "res-480p": -100,

			"source-remux": 120, "source-bluray": 80, "source-webdl": 40,
			"source-webrip": 0, "source-hdtv": -30, "source-dvd": -60,

			"codec-av1": 0, "codec-x265": 20, "codec-x264": 10, "codec-xvid": -120,

			"audio-atmos": 40, "audio-truehd": 35, "audio-dtshd": 30,
			"audio-dts": 15, "audio-ddplus": 10, "audio-dd": 5,
			"audio-flac": 20, "audio-aac": 0, "audio-opus": 0,

			"hdr-dv-hdr10": 50, "hdr-dv": 40, "hdr-hdr10-plus": 35,
			"hdr-hdr10": 30, "hdr-hdr10-assumed": 20, "hdr-generic": 15,
			"hdr-hlg": 10, "hdr-pq": 10, "hdr-assumed": 5, "hdr-sdr": 0,

			"svc-netflix": 8, "svc-amazon": 10, "svc-disney": 8,
			"svc-appletv": 10, "svc-max": 8, "svc-hulu": 5,
			"svc-paramount": 5, "svc-peacock": 5, "svc-iplayer": 5, "svc-crunchyroll": 5,

			"rg-remux-tier1": 60, "rg-remux-tier2": 50, "rg-encode-tier1": 50,
			"rg-encode-tier2": 40, "rg-web-tier1": 30, "rg-web-tier2": 20, "rg-scene": 5,

			"micro-yts": -80, "micro-psa": -60, "micro-megusta": -70,
			"micro-galaxy": -70, "micro-qxr": -40,

			"lq-evo": -120, "lq-stuttershit": -150, "lq-axxo": -150,
			"lq-upscaled": -100, "lq-nuked": -150,

			"enh-repack": 8, "enh-proper": 10, "enh-imax": 15, "enh-directors": 10,
			"enh-extended": 5, "enh-criterion": 25, "enh-hybrid": 20, "enh-multi": 5,

			"other-3d": -50, "other-internal": 10,
		}),
		MinScore:          0,
		UpgradeUntilScore: 250,
		MinScoreIncrement: 10,
		MovieMinSizeGB:    4,
		MovieMaxSizeGB:    100,
		EpisodeMinSizeMB:  200,
		EpisodeMaxSizeMB:  10000,
		UpgradesAllowed:   true,
	},
	{
		ID:          "profile-balanced",
		Name:        "Balanced",
		Description: "Good quality at reasonable sizes: high-bitrate encodes and WEB-DLs",
		FormatScores: merge(bannedScores(), map[string]int{
			"res-2160p": 70, "res-1080p": 80, "res-720p": 40, "res-480p": -80,

			"source-remux": 30, "source-bluray": 50, "source-webdl": 45,
			"source-webrip": 15, "source-hdtv": -10, "source-dvd": -40,

			"codec-av1": 10, "codec-x265": 25, "codec-x264": 15, "codec-xvid": -100,

			"audio-atmos": 20, "audio-truehd": 15, "audio-dtshd": 15,
			"audio-dts": 10, "audio-ddplus": 10, "audio-dd": 5,
			"audio-flac": 10, "audio-aac": 2, "audio-opus": 2,

			"hdr-dv-hdr10": 30, "hdr-dv": 20, "hdr-hdr10-plus": 25,
			"hdr-hdr10": 20, "hdr-hdr10-assumed": 12, "hdr-generic": 10,
			"hdr-hlg": 5, "hdr-pq": 5, "hdr-assumed": 3, "hdr-sdr": 0,

			"svc-netflix": 6, "svc-amazon": 8, "svc-disney": 6,
			"svc-appletv": 8, "svc-max": 6, "svc-hulu": 5,
			"svc-paramount": 5, "svc-peacock": 5, "svc-iplayer": 5, "svc-crunchyroll": 5,

			"rg-remux-tier1": 25, "rg-remux-tier2": 20, "rg-encode-tier1": 30,
			"rg-encode-tier2": 25, "rg-web-tier1": 25, "rg-web-tier2": 15, "rg-scene": 10,

			"micro-yts": -30, "micro-psa": -10, "micro-megusta": -20,
			"micro-galaxy": -20, "micro-qxr": 0,

			"lq-evo": -80, "lq-stuttershit": -120, "lq-axxo": -120,
			"lq-upscaled": -80, "lq-nuked": -120,

			"enh-repack": 8, "enh-proper": 10, "enh-imax": 10, "enh-directors": 8,
			"enh-extended": 4, "enh-criterion": 10, "enh-hybrid": 10, "enh-multi": 5,

			"other-3d": -30, "other-internal": 5,
		}),
		MinScore:          0,
		UpgradeUntilScore: 200,
		MinScoreIncrement: 5,
		MovieMinSizeGB:    1,
		MovieMaxSizeGB:    60,
		EpisodeMinSizeMB:  100,
		EpisodeMaxSizeMB:  6000,
		UpgradesAllowed:   true,
	},
	{
		ID:          "profile-compact",
		Name:        "Compact",
		Description: "Smallest acceptable files: efficient codecs and trusted micro encoders",
		FormatScores: merge(bannedScores(), map[string]int{
			"res-2160p": 30, "res-1080p": 100, "res-720p": 50, "res-480p": -60,

			"source-remux": -40, "source-bluray": 20, "source-webdl": 40,
			"source-webrip": 25, "source-hdtv": 0, "source-dvd": -30,

			"codec-av1": 50, "codec-x265": 60, "codec-x264": 10, "codec-xvid": -80,

			"audio-atmos": -10, "audio-truehd": -15, "audio-dtshd": -10,
			"audio-dts": 0, "audio-ddplus": 15, "audio-dd": 8,
			"audio-flac": -10, "audio-aac": 12, "audio-opus": 15,

			"hdr-dv-hdr10": 10, "hdr-dv": 5, "hdr-hdr10-plus": 8,
			"hdr-hdr10": 8, "hdr-hdr10-assumed": 5, "hdr-generic": 5,
			"hdr-hlg": 2, "hdr-pq": 2, "hdr-assumed": 2, "hdr-sdr": 0,

			"svc-netflix": 5, "svc-amazon": 5, "svc-disney": 5,
			"svc-appletv": 5, "svc-max": 5, "svc-hulu": 5,
			"svc-paramount": 5, "svc-peacock": 5, "svc-iplayer": 5, "svc-crunchyroll": 5,

			"rg-remux-tier1": -20, "rg-remux-tier2": -20, "rg-encode-tier1": 10,
			"rg-encode-tier2": 5, "rg-web-tier1": 20, "rg-web-tier2": 10, "rg-scene": 10,

			"micro-yts": 40, "micro-psa": 50, "micro-megusta": 25,
			"micro-galaxy": 30, "micro-qxr": 45,

			"lq-evo": -60, "lq-stuttershit": -100, "lq-axxo": -100,
			"lq-upscaled": -60, "lq-nuked": -100,

			"enh-repack": 5, "enh-proper": 6, "enh-imax": 3, "enh-directors": 3,
			"enh-extended": 2, "enh-criterion": 3, "enh-hybrid": 3, "enh-multi": 3,

			"other-3d": -40, "other-internal": 5,
		}),
		MinScore:          0,
		UpgradeUntilScore: 180,
		MinScoreIncrement: 5,
		MovieMinSizeGB:    0.5,
		MovieMaxSizeGB:    10,
		EpisodeMinSizeMB:  50,
		EpisodeMaxSizeMB:  1500,
		UpgradesAllowed:   true,
	},
	{
		ID:          "profile-streamer",
		Name:        "Streamer",
		Description: "Streaming-service WEB-DLs, untouched from the source platform",
		FormatScores: merge(bannedScores(), map[string]int{
			"res-2160p": 90, "res-1080p": 70, "res-720p": 30, "res-480p": -80,

			"source-remux": -20, "source-bluray": 10, "source-webdl": 80,
			"source-webrip": 40, "source-hdtv": 0, "source-dvd": -50,

			"codec-av1": 15, "codec-x265": 20, "codec-x264": 10, "codec-xvid": -100,

			"audio-atmos": 25, "audio-truehd": 5, "audio-dtshd": 5,
			"audio-dts": 5, "audio-ddplus": 20, "audio-dd": 5,
			"audio-flac": 5, "audio-aac": 5, "audio-opus": 5,

			"hdr-dv-hdr10": 35, "hdr-dv": 25, "hdr-hdr10-plus": 30,
			"hdr-hdr10": 25, "hdr-hdr10-assumed": 10, "hdr-generic": 12,
			"hdr-hlg": 8, "hdr-pq": 8, "hdr-assumed": 8, "hdr-sdr": 0,

			"svc-netflix": 40, "svc-amazon": 40, "svc-disney": 35,
			"svc-appletv": 40, "svc-max": 35, "svc-hulu": 30,
			"svc-paramount": 25, "svc-peacock": 25, "svc-iplayer": 30, "svc-crunchyroll": 30,

			"rg-remux-tier1": 0, "rg-remux-tier2": 0, "rg-encode-tier1": 10,
			"rg-encode-tier2": 5, "rg-web-tier1": 40, "rg-web-tier2": 25, "rg-scene": 10,

			"micro-yts": -40, "micro-psa": -20, "micro-megusta": -30,
			"micro-galaxy": -30, "micro-qxr": -10,

			"lq-evo": -80, "lq-stuttershit": -120, "lq-axxo": -120,
			"lq-upscaled": -80, "lq-nuked": -120,

			"enh-repack": 8, "enh-proper": 10, "enh-imax": 5, "enh-directors": 5,
			"enh-extended": 3, "enh-criterion": 3, "enh-hybrid": 8, "enh-multi": 10,

			"other-3d": -40, "other-internal": 8,
		}),
		MinScore:          0,
		UpgradeUntilScore: 220,
		MinScoreIncrement: 5,
		MovieMinSizeGB:    1,
		MovieMaxSizeGB:    40,
		EpisodeMinSizeMB:  100,
		EpisodeMaxSizeMB:  4000,
		AllowedProtocols:  []Protocol{ProtocolUsenet, ProtocolStreaming},
		UpgradesAllowed:   true,
	},
}
