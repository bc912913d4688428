package format

// Built-in format ids referenced from code. Ids are stable lookup keys and
// must never be renamed once shipped.
const (
	FormatDVHDR10      = "hdr-dv-hdr10"
	FormatDV           = "hdr-dv"
	FormatHDR10Plus    = "hdr-hdr10-plus"
	FormatHDR10        = "hdr-hdr10"
	FormatHDR10Assumed = "hdr-hdr10-assumed"
	FormatHDRGeneric   = "hdr-generic"
	FormatHLG          = "hdr-hlg"
	FormatPQ           = "hdr-pq"
	FormatHDRAssumed   = "hdr-assumed"
	FormatSDR          = "hdr-sdr"
)

// Builtin returns the shipped format catalogue. The returned slice is static
// data defined at process start; callers must treat it as read-only.
func Builtin() []CustomFormat {
	return builtin
}

// FindByID returns the built-in format with the given id, or false.
func FindByID(id string) (CustomFormat, bool) {
	for _, f := range builtin {
		if f.ID == id {
			return f, true
		}
	}
	return CustomFormat{}, false
}

// IsBuiltinID reports whether id belongs to the reserved built-in namespace.
func IsBuiltinID(id string) bool {
	_, ok := FindByID(id)
	return ok
}

var builtin = []CustomFormat{
	// --- Resolution ---
	{
		ID: "res-2160p", Name: "2160p", Category: CategoryResolution,
		Tags: []string{"resolution", "uhd"},
		Conditions: []Condition{
			{Name: "2160p", Type: TypeResolution, Required: true, Value: "2160p"},
		},
	},
	{
		ID: "res-1080p", Name: "1080p", Category: CategoryResolution,
		Tags: []string{"resolution"},
		Conditions: []Condition{
			{Name: "1080p", Type: TypeResolution, Required: true, Value: "1080p"},
		},
	},
	{
		ID: "res-720p", Name: "720p", Category: CategoryResolution,
		Tags: []string{"resolution"},
		Conditions: []Condition{
			{Name: "720p", Type: TypeResolution, Required: true, Value: "720p"},
		},
	},
	{
		ID: "res-480p", Name: "480p", Category: CategoryResolution,
		Tags: []string{"resolution", "sd"},
		Conditions: []Condition{
			{Name: "480p", Type: TypeResolution, Required: true, Value: "480p"},
		},
	},

	// --- Source ---
	{
		ID: "source-remux", Name: "Remux", Category: CategorySource,
		Description: "Untouched disc audio/video stream",
		Tags:        []string{"source"},
		Conditions: []Condition{
			{Name: "Remux flag", Type: TypeFlag, Required: true, Flag: FlagRemux},
		},
	},
	{
		ID: "source-bluray", Name: "BluRay Encode", Category: CategorySource,
		Tags: []string{"source"},
		Conditions: []Condition{
			{Name: "BluRay", Type: TypeSource, Required: true, Value: "bluray"},
			{Name: "Not remux", Type: TypeFlag, Required: true, Negate: true, Flag: FlagRemux},
		},
	},
	{
		ID: "source-webdl", Name: "WEB-DL", Category: CategorySource,
		Tags: []string{"source", "web"},
		Conditions: []Condition{
			{Name: "WEB-DL", Type: TypeSource, Required: true, Value: "webdl"},
		},
	},
	{
		ID: "source-webrip", Name: "WEBRip", Category: CategorySource,
		Tags: []string{"source", "web"},
		Conditions: []Condition{
			{Name: "WEBRip", Type: TypeSource, Required: true, Value: "webrip"},
		},
	},
	{
		ID: "source-hdtv", Name: "HDTV", Category: CategorySource,
		Tags: []string{"source"},
		Conditions: []Condition{
			{Name: "HDTV", Type: TypeSource, Required: true, Value: "hdtv"},
		},
	},
	{
		ID: "source-dvd", Name: "DVD", Category: CategorySource,
		Tags: []string{"source", "sd"},
		Conditions: []Condition{
			{Name: "DVD", Type: TypeSource, Required: true, Value: "dvd"},
		},
	},

	// --- Banned sources ---
	{
		ID: "banned-cam", Name: "CAM", Category: CategoryBanned,
		Description: "Camcorder recording",
		Tags:        []string{"banned"},
		Conditions: []Condition{
			{Name: "CAM source", Type: TypeSource, Value: "cam"},
			{Name: "CAM tag", Type: TypeReleaseTitle, Pattern: `\b(CAM|CAMRip|HD-?CAM|HQ-?CAM)\b`},
		},
	},
	{
		ID: "banned-telesync", Name: "Telesync", Category: CategoryBanned,
		Tags: []string{"banned"},
		Conditions: []Condition{
			{Name: "TS source", Type: TypeSource, Value: "telesync"},
			{Name: "TS tag", Type: TypeReleaseTitle, Pattern: `\b(TELESYNC|HD-?TS|TSRip)\b`},
		},
	},
	{
		ID: "banned-telecine", Name: "Telecine", Category: CategoryBanned,
		Tags: []string{"banned"},
		Conditions: []Condition{
			{Name: "TC source", Type: TypeSource, Value: "telecine"},
			{Name: "TC tag", Type: TypeReleaseTitle, Pattern: `\b(TELECINE|HD-?TC)\b`},
		},
	},
	{
		ID: "banned-screener", Name: "Screener", Category: CategoryBanned,
		Tags: []string{"banned"},
		Conditions: []Condition{
			{Name: "Screener source", Type: TypeSource, Value: "screener"},
			{Name: "Screener tag", Type: TypeReleaseTitle, Pattern: `\b(SCREENER|DVDSCR|BDSCR)\b`},
		},
	},
	{
		ID: "banned-workprint", Name: "Workprint", Category: CategoryBanned,
		Tags: []string{"banned"},
		Conditions: []Condition{
			{Name: "Workprint tag", Type: TypeReleaseTitle, Required: true, Pattern: `\bWORKPRINT\b`},
		},
	},

	// --- Codec ---
	{
		ID: "codec-av1", Name: "AV1", Category: CategoryCodec,
		Tags: []string{"codec"},
		Conditions: []Condition{
			{Name: "AV1", Type: TypeCodec, Required: true, Value: "av1"},
		},
	},
	{
		ID: "codec-x265", Name: "x265/HEVC", Category: CategoryCodec,
		Tags: []string{"codec"},
		Conditions: []Condition{
			{Name: "x265", Type: TypeCodec, Required: true, Value: "x265"},
		},
	},
	{
		ID: "codec-x264", Name: "x264/AVC", Category: CategoryCodec,
		Tags: []string{"codec"},
		Conditions: []Condition{
			{Name: "x264", Type: TypeCodec, Required: true, Value: "x264"},
		},
	},
	{
		ID: "codec-xvid", Name: "XviD", Category: CategoryCodec,
		Tags: []string{"codec", "legacy"},
		Conditions: []Condition{
			{Name: "XviD", Type: TypeCodec, Required: true, Value: "xvid"},
		},
	},

	// --- Audio ---
	{
		ID: "audio-atmos", Name: "Dolby Atmos", Category: CategoryAudio,
		Tags: []string{"audio", "object-based"},
		Conditions: []Condition{
			{Name: "Atmos", Type: TypeAudio, Required: true, Value: "atmos"},
		},
	},
	{
		ID: "audio-truehd", Name: "TrueHD", Category: CategoryAudio,
		Tags: []string{"audio", "lossless"},
		Conditions: []Condition{
			{Name: "TrueHD", Type: TypeAudio, Required: true, Value: "truehd"},
		},
	},
	{
		ID: "audio-dtshd", Name: "DTS-HD MA", Category: CategoryAudio,
		Tags: []string{"audio", "lossless"},
		Conditions: []Condition{
			{Name: "DTS-HD", Type: TypeAudio, Required: true, Value: "dts-hd"},
		},
	},
	{
		ID: "audio-dts", Name: "DTS", Category: CategoryAudio,
		Tags: []string{"audio"},
		Conditions: []Condition{
			{Name: "DTS", Type: TypeAudio, Required: true, Value: "dts"},
		},
	},
	{
		ID: "audio-ddplus", Name: "DD+", Category: CategoryAudio,
		Tags: []string{"audio"},
		Conditions: []Condition{
			{Name: "DD+", Type: TypeAudio, Required: true, Value: "dd+"},
		},
	},
	{
		ID: "audio-dd", Name: "DD", Category: CategoryAudio,
		Tags: []string{"audio"},
		Conditions: []Condition{
			{Name: "DD", Type: TypeAudio, Required: true, Value: "dd"},
		},
	},
	{
		ID: "audio-flac", Name: "FLAC", Category: CategoryAudio,
		Tags: []string{"audio", "lossless"},
		Conditions: []Condition{
			{Name: "FLAC", Type: TypeAudio, Required: true, Value: "flac"},
		},
	},
	{
		ID: "audio-aac", Name: "AAC", Category: CategoryAudio,
		Tags: []string{"audio"},
		Conditions: []Condition{
			{Name: "AAC", Type: TypeAudio, Required: true, Value: "aac"},
		},
	},
	{
		ID: "audio-opus", Name: "Opus", Category: CategoryAudio,
		Tags: []string{"audio"},
		Conditions: []Condition{
			{Name: "Opus", Type: TypeAudio, Required: true, Value: "opus"},
		},
	},

	// --- HDR ---
	// Several of these overlap on purpose (a DV release also carries an HDR
	// tag); ResolveExclusive keeps only the highest-priority match.
	{
		ID: FormatDVHDR10, Name: "DV HDR10", Category: CategoryHDR,
		Description: "Dolby Vision with HDR10 fallback layer",
		Tags:        []string{"hdr"},
		Conditions: []Condition{
			{Name: "DV with fallback", Type: TypeHDR, Required: true, Value: "dv-hdr10"},
		},
	},
	{
		ID: FormatDV, Name: "DV", Category: CategoryHDR,
		Description: "Dolby Vision (with or without fallback)",
		Tags:        []string{"hdr"},
		Conditions: []Condition{
			{Name: "DV", Type: TypeHDR, Value: "dv"},
			{Name: "DV tag", Type: TypeReleaseTitle, Pattern: `\b(DV|DoVi|Dolby[ ._-]?Vision)\b`},
		},
	},
	{
		ID: FormatHDR10Plus, Name: "HDR10+", Category: CategoryHDR,
		Tags: []string{"hdr"},
		Conditions: []Condition{
			{Name: "HDR10+", Type: TypeHDR, Value: "hdr10+"},
			{Name: "HDR10+ tag", Type: TypeReleaseTitle, Pattern: `HDR10(\+|Plus)`},
		},
	},
	{
		ID: FormatHDR10, Name: "HDR10", Category: CategoryHDR,
		Tags: []string{"hdr"},
		Conditions: []Condition{
			{Name: "HDR10", Type: TypeHDR, Required: true, Value: "hdr10"},
		},
	},
	{
		ID: FormatHDR10Assumed, Name: "HDR10 (assumed)", Category: CategoryHDR,
		Description: "Untagged UHD BluRay, assumed HDR10",
		Tags:        []string{"hdr", "assumed"},
		Conditions: []Condition{
			{Name: "2160p", Type: TypeResolution, Required: true, Value: "2160p"},
			{Name: "BluRay", Type: TypeSource, Required: true, Value: "bluray"},
			{Name: "No HDR tag", Type: TypeHDR, Required: true, Value: "sdr"},
		},
	},
	{
		ID: FormatHDRGeneric, Name: "HDR", Category: CategoryHDR,
		Description: "Bare HDR tag without a specific version",
		Tags:        []string{"hdr"},
		Conditions: []Condition{
			{Name: "HDR tag", Type: TypeReleaseTitle, Required: true, Pattern: `\bHDR\b`},
		},
	},
	{
		ID: FormatHLG, Name: "HLG", Category: CategoryHDR,
		Tags: []string{"hdr"},
		Conditions: []Condition{
			{Name: "HLG", Type: TypeHDR, Required: true, Value: "hlg"},
		},
	},
	{
		ID: FormatPQ, Name: "PQ", Category: CategoryHDR,
		Tags: []string{"hdr"},
		Conditions: []Condition{
			{Name: "PQ", Type: TypeHDR, Required: true, Value: "pq"},
		},
	},
	{
		ID: FormatHDRAssumed, Name: "HDR (assumed)", Category: CategoryHDR,
		Description: "Untagged UHD WEB-DL, assumed HDR",
		Tags:        []string{"hdr", "assumed"},
		Conditions: []Condition{
			{Name: "2160p", Type: TypeResolution, Required: true, Value: "2160p"},
			{Name: "WEB-DL", Type: TypeSource, Required: true, Value: "webdl"},
			{Name: "No HDR tag", Type: TypeHDR, Required: true, Value: "sdr"},
		},
	},
	{
		ID: FormatSDR, Name: "SDR", Category: CategoryHDR,
		Tags: []string{"hdr"},
		Conditions: []Condition{
			{Name: "SDR", Type: TypeHDR, Required: true, Value: "sdr"},
		},
	},

	// --- Streaming services ---
	{
		ID: "svc-netflix", Name: "Netflix", Category: CategoryStreaming,
		Tags: []string{"streaming"},
		Conditions: []Condition{
			{Name: "NF", Type: TypeService, Required: true, Value: "NF"},
		},
	},
	{
		ID: "svc-amazon", Name: "Amazon", Category: CategoryStreaming,
		Tags: []string{"streaming"},
		Conditions: []Condition{
			{Name: "AMZN", Type: TypeService, Required: true, Value: "AMZN"},
		},
	},
	{
		ID: "svc-disney", Name: "Disney+", Category: CategoryStreaming,
		Tags: []string{"streaming"},
		Conditions: []Condition{
			{Name: "DSNP", Type: TypeService, Required: true, Value: "DSNP"},
		},
	},
	{
		ID: "svc-appletv", Name: "Apple TV+", Category: CategoryStreaming,
		Tags: []string{"streaming"},
		Conditions: []Condition{
			{Name: "ATVP", Type: TypeService, Required: true, Value: "ATVP"},
		},
	},
	{
		ID: "svc-max", Name: "Max", Category: CategoryStreaming,
		Tags: []string{"streaming"},
		Conditions: []Condition{
			{Name: "HMAX", Type: TypeService, Value: "HMAX"},
			{Name: "MAX", Type: TypeService, Value: "MAX"},
		},
	},
	{
		ID: "svc-hulu", Name: "Hulu", Category: CategoryStreaming,
		Tags: []string{"streaming"},
		Conditions: []Condition{
			{Name: "HULU", Type: TypeService, Required: true, Value: "HULU"},
		},
	},
	{
		ID: "svc-paramount", Name: "Paramount+", Category: CategoryStreaming,
		Tags: []string{"streaming"},
		Conditions: []Condition{
			{Name: "PMTP", Type: TypeService, Required: true, Value: "PMTP"},
		},
	},
	{
		ID: "svc-peacock", Name: "Peacock", Category: CategoryStreaming,
		Tags: []string{"streaming"},
		Conditions: []Condition{
			{Name: "PCOK", Type: TypeService, Required: true, Value: "PCOK"},
		},
	},
	{
		ID: "svc-iplayer", Name: "BBC iPlayer", Category: CategoryStreaming,
		Tags: []string{"streaming"},
		Conditions: []Condition{
			{Name: "iP", Type: TypeService, Required: true, Value: "iP"},
		},
	},
	{
		ID: "svc-crunchyroll", Name: "Crunchyroll", Category: CategoryStreaming,
		Tags: []string{"streaming", "anime"},
		Conditions: []Condition{
			{Name: "CR", Type: TypeService, Required: true, Value: "CR"},
		},
	},

	// --- Release group tiers ---
	{
		ID: "rg-remux-tier1", Name: "Remux Tier 1", Category: CategoryGroupTier,
		Tags: []string{"group", "remux"},
		Conditions: []Condition{
			{Name: "Remux", Type: TypeFlag, Required: true, Flag: FlagRemux},
			{Name: "Tier 1 groups", Type: TypeReleaseGroup, Required: true,
				Pattern: `^(FraMeSToR|BLURANiUM|PmP|3L|CiNEPHiLES)$`},
		},
	},
	{
		ID: "rg-remux-tier2", Name: "Remux Tier 2", Category: CategoryGroupTier,
		Tags: []string{"group", "remux"},
		Conditions: []Condition{
			{Name: "Remux", Type: TypeFlag, Required: true, Flag: FlagRemux},
			{Name: "Tier 2 groups", Type: TypeReleaseGroup, Required: true,
				Pattern: `^(playBD|HiFi|EPSiLON|KRaLiMaRKo)$`},
		},
	},
	{
		ID: "rg-encode-tier1", Name: "Encode Tier 1", Category: CategoryGroupTier,
		Tags: []string{"group", "encode"},
		Conditions: []Condition{
			{Name: "Not remux", Type: TypeFlag, Required: true, Negate: true, Flag: FlagRemux},
			{Name: "Tier 1 groups", Type: TypeReleaseGroup, Required: true,
				Pattern: `^(CtrlHD|EbP|TayTO|DON|VietHD|NCmt)$`},
		},
	},
	{
		ID: "rg-encode-tier2", Name: "Encode Tier 2", Category: CategoryGroupTier,
		Tags: []string{"group", "encode"},
		Conditions: []Condition{
			{Name: "Not remux", Type: TypeFlag, Required: true, Negate: true, Flag: FlagRemux},
			{Name: "Tier 2 groups", Type: TypeReleaseGroup, Required: true,
				Pattern: `^(Chotab|CRiSC|D-Z0N3|decibeL|HiDt|SA89)$`},
		},
	},
	{
		ID: "rg-web-tier1", Name: "WEB Tier 1", Category: CategoryGroupTier,
		Tags: []string{"group", "web"},
		Conditions: []Condition{
			{Name: "Tier 1 groups", Type: TypeReleaseGroup, Required: true,
				Pattern: `^(NTb|FLUX|CasStudio|monkee|KiNGS)$`},
		},
	},
	{
		ID: "rg-web-tier2", Name: "WEB Tier 2", Category: CategoryGroupTier,
		Tags: []string{"group", "web"},
		Conditions: []Condition{
			{Name: "Tier 2 groups", Type: TypeReleaseGroup, Required: true,
				Pattern: `^(NTG|ViSUM|CMRG|TOMMY|GNOME)$`},
		},
	},
	{
		ID: "rg-scene", Name: "Scene", Category: CategoryGroupTier,
		Tags: []string{"group", "scene"},
		Conditions: []Condition{
			{Name: "Scene groups", Type: TypeReleaseGroup, Required: true,
				Pattern: `^(DIMENSION|LOL|KILLERS|FUM|BATV|SVA|AVS)$`},
		},
	},

	// --- Micro encoders ---
	{
		ID: "micro-yts", Name: "YTS/YIFY", Category: CategoryMicro,
		Description: "Small-size encodes, heavy compression",
		Tags:        []string{"micro"},
		Conditions: []Condition{
			{Name: "YTS groups", Type: TypeReleaseGroup, Required: true,
				Pattern: `^(YTS([._-]?(MX|AM|AG|LT))?|YIFY)$`},
		},
	},
	{
		ID: "micro-psa", Name: "PSA", Category: CategoryMicro,
		Tags: []string{"micro", "x265"},
		Conditions: []Condition{
			{Name: "PSA", Type: TypeReleaseGroup, Required: true, Pattern: `^PSA$`},
		},
	},
	{
		ID: "micro-megusta", Name: "MeGusta", Category: CategoryMicro,
		Tags: []string{"micro", "x265"},
		Conditions: []Condition{
			{Name: "MeGusta", Type: TypeReleaseGroup, Required: true, Pattern: `^MeGusta$`},
		},
	},
	{
		ID: "micro-galaxy", Name: "GalaxyRG", Category: CategoryMicro,
		Tags: []string{"micro"},
		Conditions: []Condition{
			{Name: "Galaxy groups", Type: TypeReleaseGroup, Required: true,
				Pattern: `^(GalaxyRG|GalaxyTV)$`},
		},
	},
	{
		ID: "micro-qxr", Name: "QxR", Category: CategoryMicro,
		Tags: []string{"micro", "x265"},
		Conditions: []Condition{
			{Name: "QxR", Type: TypeReleaseGroup, Required: true, Pattern: `^QxR$`},
		},
	},

	// --- Low quality ---
	{
		ID: "lq-evo", Name: "EVO", Category: CategoryLowQuality,
		Tags: []string{"low-quality"},
		Conditions: []Condition{
			{Name: "EVO", Type: TypeReleaseGroup, Required: true, Pattern: `^EVO$`},
		},
	},
	{
		ID: "lq-stuttershit", Name: "STUTTERSHIT", Category: CategoryLowQuality,
		Tags: []string{"low-quality"},
		Conditions: []Condition{
			{Name: "STUTTERSHIT", Type: TypeReleaseGroup, Required: true, Pattern: `^STUTTERSHIT$`},
		},
	},
	{
		ID: "lq-axxo", Name: "aXXo", Category: CategoryLowQuality,
		Tags: []string{"low-quality", "legacy"},
		Conditions: []Condition{
			{Name: "aXXo", Type: TypeReleaseGroup, Required: true, Pattern: `^aXXo$`},
		},
	},
	{
		ID: "lq-upscaled", Name: "Upscaled", Category: CategoryLowQuality,
		Tags: []string{"low-quality"},
		Conditions: []Condition{
			{Name: "Upscale tag", Type: TypeReleaseTitle, Required: true,
				Pattern: `\b(UPSCALED?|AI[ ._-]?UPSCALE)\b`},
		},
	},
	{
		ID: "lq-nuked", Name: "Nuked", Category: CategoryLowQuality,
		Tags: []string{"low-quality"},
		Conditions: []Condition{
			{Name: "Nuked tag", Type: TypeReleaseTitle, Required: true, Pattern: `\bNUKED\b`},
		},
	},

	// --- Enhancements ---
	{
		ID: "enh-repack", Name: "Repack", Category: CategoryEnhancement,
		Tags: []string{"enhancement"},
		Conditions: []Condition{
			{Name: "Repack flag", Type: TypeFlag, Required: true, Flag: FlagRepack},
		},
	},
	{
		ID: "enh-proper", Name: "Proper", Category: CategoryEnhancement,
		Tags: []string{"enhancement"},
		Conditions: []Condition{
			{Name: "Proper flag", Type: TypeFlag, Required: true, Flag: FlagProper},
		},
	},
	{
		ID: "enh-imax", Name: "IMAX", Category: CategoryEnhancement,
		Tags: []string{"enhancement", "edition"},
		Conditions: []Condition{
			{Name: "IMAX tag", Type: TypeReleaseTitle, Required: true,
				Pattern: `\bIMAX([ ._-]?Enhanced)?\b`},
		},
	},
	{
		ID: "enh-directors", Name: "Director's Cut", Category: CategoryEnhancement,
		Tags: []string{"enhancement", "edition"},
		Conditions: []Condition{
			{Name: "Director's Cut tag", Type: TypeReleaseTitle, Required: true,
				Pattern: `Director'?s[ ._-]?Cut`},
		},
	},
	{
		ID: "enh-extended", Name: "Extended", Category: CategoryEnhancement,
		Tags: []string{"enhancement", "edition"},
		Conditions: []Condition{
			{Name: "Extended tag", Type: TypeReleaseTitle, Required: true, Pattern: `\bEXTENDED\b`},
		},
	},
	{
		ID: "enh-criterion", Name: "Criterion", Category: CategoryEnhancement,
		Tags: []string{"enhancement", "edition"},
		Conditions: []Condition{
			{Name: "Criterion tag", Type: TypeReleaseTitle, Required: true, Pattern: `\bCriterion\b`},
		},
	},
	{
		ID: "enh-hybrid", Name: "Hybrid", Category: CategoryEnhancement,
		Tags: []string{"enhancement"},
		Conditions: []Condition{
			{Name: "Hybrid tag", Type: TypeReleaseTitle, Required: true, Pattern: `\bHYBRID\b`},
		},
	},
	{
		ID: "enh-multi", Name: "Multi-Language", Category: CategoryEnhancement,
		Tags: []string{"enhancement", "language"},
		Conditions: []Condition{
			{Name: "MULTi tag", Type: TypeReleaseTitle, Required: true, Pattern: `\bMULTi\b`},
		},
	},

	// --- Other ---
	{
		ID: "other-3d", Name: "3D", Category: CategoryOther,
		Tags: []string{"other"},
		Conditions: []Condition{
			{Name: "3D flag", Type: TypeFlag, Required: true, Flag: Flag3D},
		},
	},
	{
		ID: "other-internal", Name: "Internal", Category: CategoryOther,
		Tags: []string{"other"},
		Conditions: []Condition{
			{Name: "iNTERNAL tag", Type: TypeReleaseTitle, Required: true, Pattern: `\biNTERNAL\b`},
		},
	},
}
