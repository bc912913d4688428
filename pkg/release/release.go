// Package release parses release names into the normalized attribute record
// the scoring engine evaluates custom formats against.
package release

// Resolution represents the video resolution of a release.
type Resolution int

const (
	ResolutionUnknown Resolution = iota
	Resolution480p
	Resolution720p
	Resolution1080p
	Resolution2160p
)

// unknownStr is the string representation for unknown values.
const unknownStr = "unknown"

func (r Resolution) String() string {
	switch r {
	case Resolution480p:
		return "480p"
	case Resolution720p:
		return "720p"
	case Resolution1080p:
		return "1080p"
	case Resolution2160p:
		return "2160p"
	default:
		return unknownStr
	}
}

// Source represents the media source type of a release.
type Source int

const (
	SourceUnknown Source = iota
	SourceRemux
	SourceBluRay
	SourceWEBDL
	SourceWEBRip
	SourceHDTV
	SourceDVD
	SourceCAM
	SourceTelesync
	SourceTelecine
	SourceScreener
)

func (s Source) String() string {
	switch s {
	case SourceRemux:
		return "remux"
	case SourceBluRay:
		return "bluray"
	case SourceWEBDL:
		return "webdl"
	case SourceWEBRip:
		return "webrip"
	case SourceHDTV:
		return "hdtv"
	case SourceDVD:
		return "dvd"
	case SourceCAM:
		return "cam"
	case SourceTelesync:
		return "telesync"
	case SourceTelecine:
		return "telecine"
	case SourceScreener:
		return "screener"
	default:
		return unknownStr
	}
}

// Codec represents the video codec used in a release.
type Codec int

const (
	CodecUnknown Codec = iota
	CodecX264
	CodecX265
	CodecAV1
	CodecXviD
)

func (c Codec) String() string {
	switch c {
	case CodecX264:
		return "x264"
	case CodecX265:
		return "x265"
	case CodecAV1:
		return "av1"
	case CodecXviD:
		return "xvid"
	default:
		return unknownStr
	}
}

// HDRFormat represents HDR/Dolby Vision formats. HDRNone means SDR.
type HDRFormat int

const (
	HDRNone HDRFormat = iota
	HDRGeneric
	HDR10
	HDR10Plus
	DolbyVision
	DolbyVisionHDR10 // DV with an HDR10 compatibility layer
	HLG
	PQ
)

func (h HDRFormat) String() string {
	switch h {
	case HDRGeneric:
		return "hdr"
	case HDR10:
		return "hdr10"
	case HDR10Plus:
		return "hdr10+"
	case DolbyVision:
		return "dv"
	case DolbyVisionHDR10:
		return "dv-hdr10"
	case HLG:
		return "hlg"
	case PQ:
		return "pq"
	default:
		return "sdr"
	}
}

// AudioCodec represents the primary audio format of a release.
type AudioCodec int

const (
	AudioUnknown AudioCodec = iota
	AudioAAC
	AudioAC3  // Dolby Digital
	AudioEAC3 // DD+, DDP
	AudioDTS
	AudioDTSHD // DTS-HD MA, DTS:X
	AudioTrueHD
	AudioAtmos // TrueHD Atmos or DD+ Atmos
	AudioFLAC
	AudioOpus
)

func (a AudioCodec) String() string {
	switch a {
	case AudioAAC:
		return "aac"
	case AudioAC3:
		return "dd"
	case AudioEAC3:
		return "dd+"
	case AudioDTS:
		return "dts"
	case AudioDTSHD:
		return "dts-hd"
	case AudioTrueHD:
		return "truehd"
	case AudioAtmos:
		return "atmos"
	case AudioFLAC:
		return "flac"
	case AudioOpus:
		return "opus"
	default:
		return unknownStr
	}
}

// Info is the normalized attribute record for one release.
// Every enum field has an explicit unknown sentinel; HDR uses HDRNone for SDR.
// Group, Service and Indexer may be empty when not present.
type Info struct {
	Title      string
	CleanTitle string
	Year       int
	Season     int
	Episode    int

	Resolution Resolution
	Source     Source
	Codec      Codec
	HDR        HDRFormat
	Audio      AudioCodec

	Group   string // release group
	Service string // streaming service tag: NF, AMZN, DSNP, etc.
	Indexer string // caller-supplied indexer name, never parsed from the title

	IsRemux  bool
	IsRepack bool
	IsProper bool
	Is3D     bool

	// Season pack detection
	IsCompleteSeason bool

	Languages []string // lowercase language tags, sorted; empty when untagged
}
