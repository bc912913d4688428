package release

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	yearRe     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	episodeRe  = regexp.MustCompile(`(?i)\bS(\d{1,2})[ ._]?E(\d{1,3})\b`)
	seasonRe   = regexp.MustCompile(`(?i)\b(?:S(\d{1,2})|Season[ ._]?(\d{1,2}))\b`)
	hdr10pRe   = regexp.MustCompile(`(?i)\bHDR10(\+|P(lus)?\b)`)
	hdr10Re    = regexp.MustCompile(`(?i)\bHDR10\b`)
	hdrRe      = regexp.MustCompile(`(?i)\bHDR\b`)
	dvRe       = regexp.MustCompile(`(?i)\b(DV|DoVi|Dolby[ ._]?Vision)\b`)
	hlgRe      = regexp.MustCompile(`(?i)\bHLG\b`)
	pqRe       = regexp.MustCompile(`(?i)\bPQ\b`)
	groupRe    = regexp.MustCompile(`-([A-Za-z0-9][A-Za-z0-9._]{1,24})$`)
	threeDRe   = regexp.MustCompile(`(?i)\b3D\b`)
	completeRe = regexp.MustCompile(`(?i)\bCOMPLETE\b`)
)

// serviceTags maps uppercase streaming service tags to themselves.
// Matched case-sensitively: lowercase words in titles must not trip these.
var serviceTags = map[string]bool{
	"NF": true, "AMZN": true, "DSNP": true, "ATVP": true, "HMAX": true,
	"MAX": true, "HULU": true, "PMTP": true, "PCOK": true, "CR": true,
	"STAN": true, "iP": true,
}

// languageTags maps title tokens to normalized language tags.
var languageTags = map[string]string{
	"multi": "multi", "dual": "multi",
	"french": "french", "vostfr": "french", "truefrench": "french",
	"german": "german", "italian": "italian", "spanish": "spanish",
	"nordic": "nordic", "korean": "korean", "japanese": "japanese",
	"hindi": "hindi", "russian": "russian",
}

// groupStoplist contains trailing tokens that look like groups but are
// quality tags split by a hyphen (WEB-DL, DTS-HD, etc.).
var groupStoplist = map[string]bool{
	"DL": true, "RIP": true, "WEB": true, "HD": true, "MA": true,
	"X": true, "RAY": true, "BLURAY": true, "REMUX": true, "HDR10": true,
}

// Parse extracts release attributes from a release name.
// It never fails: attributes that cannot be determined are left at their
// unknown sentinel so a result is always produced.
func Parse(name string) *Info {
	info := &Info{Title: name}

	// Normalize separators for token matching
	norm := strings.NewReplacer(".", " ", "_", " ").Replace(name)

	info.Resolution = parseResolution(norm)
	info.Codec = parseCodec(norm)
	info.HDR = parseHDR(norm)
	info.Audio = parseAudio(norm)
	info.Service = parseService(norm)
	info.Group = parseGroup(name)
	info.Languages = parseLanguages(norm)

	info.IsRemux = containsAny(norm, "remux")
	info.IsRepack = containsAny(norm, "repack", "rerip")
	info.IsProper = containsAny(norm, "proper")
	info.Is3D = threeDRe.MatchString(norm)
	info.Source = parseSource(norm, info.IsRemux)

	if m := yearRe.FindAllString(norm, -1); len(m) > 0 {
		// Last match: leading years belong to the title ("2001 A Space Odyssey")
		info.Year, _ = strconv.Atoi(m[len(m)-1])
	}

	titleEnd := len(norm)
	if m := episodeRe.FindStringSubmatchIndex(norm); m != nil {
		info.Season = atoiSubmatch(norm, m, 1)
		info.Episode = atoiSubmatch(norm, m, 2)
		titleEnd = m[0]
	} else if m := seasonRe.FindStringSubmatchIndex(norm); m != nil {
		if s := atoiSubmatch(norm, m, 1); s > 0 {
			info.Season = s
		} else {
			info.Season = atoiSubmatch(norm, m, 2)
		}
		info.IsCompleteSeason = true
		titleEnd = m[0]
	} else if completeRe.MatchString(norm) {
		info.IsCompleteSeason = true
	}

	if info.Year > 0 {
		if idx := strings.Index(norm, strconv.Itoa(info.Year)); idx >= 0 && idx < titleEnd {
			titleEnd = idx
		}
	}
	info.CleanTitle = CleanTitle(norm[:titleEnd])

	return info
}

func atoiSubmatch(s string, idx []int, n int) int {
	if 2*n+1 >= len(idx) || idx[2*n] < 0 {
		return 0
	}
	v, _ := strconv.Atoi(s[idx[2*n]:idx[2*n+1]])
	return v
}

func parseResolution(name string) Resolution {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, "2160p", "4k", "uhd"):
		return Resolution2160p
	case strings.Contains(lower, "1080p"):
		return Resolution1080p
	case strings.Contains(lower, "720p"):
		return Resolution720p
	case containsAny(lower, "480p", "576p", "dvdrip"):
		return Resolution480p
	default:
		return ResolutionUnknown
	}
}

func parseSource(name string, remux bool) Source {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, "bluray", "blu-ray", "bdrip", "brrip", "bd25", "bd50"):
		return SourceBluRay
	case containsAny(lower, "web-dl", "webdl", "web dl"):
		return SourceWEBDL
	case containsAny(lower, "webrip", "web-rip", "web rip"):
		return SourceWEBRip
	case containsAny(lower, "hdtv", "pdtv", "dsr"):
		return SourceHDTV
	case containsAny(lower, "dvdrip", "dvd"):
		return SourceDVD
	case containsAny(lower, "camrip", "hdcam", "hqcam") || hasToken(lower, "cam"):
		return SourceCAM
	case containsAny(lower, "telesync", "hdts") || hasToken(lower, "ts"):
		return SourceTelesync
	case containsAny(lower, "telecine", "hdtc") || hasToken(lower, "tc"):
		return SourceTelecine
	case containsAny(lower, "screener", "dvdscr", "bdscr") || hasToken(lower, "scr"):
		return SourceScreener
	case remux:
		// Bare "Remux" with no container tag
		return SourceRemux
	default:
		return SourceUnknown
	}
}

func parseCodec(name string) Codec {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, "x265", "h265", "h 265", "hevc"):
		return CodecX265
	case containsAny(lower, "av1"):
		return CodecAV1
	case containsAny(lower, "x264", "h264", "h 264", "avc"):
		return CodecX264
	case containsAny(lower, "xvid", "divx"):
		return CodecXviD
	default:
		return CodecUnknown
	}
}

func parseHDR(name string) HDRFormat {
	dv := dvRe.MatchString(name)
	switch {
	case dv && (hdr10pRe.MatchString(name) || hdr10Re.MatchString(name) || hdrRe.MatchString(name)):
		return DolbyVisionHDR10
	case dv:
		return DolbyVision
	case hdr10pRe.MatchString(name):
		return HDR10Plus
	case hdr10Re.MatchString(name):
		return HDR10
	case hdrRe.MatchString(name):
		return HDRGeneric
	case hlgRe.MatchString(name):
		return HLG
	case pqRe.MatchString(name):
		return PQ
	default:
		return HDRNone
	}
}

func parseAudio(name string) AudioCodec {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "atmos"):
		return AudioAtmos
	case containsAny(lower, "truehd", "true-hd"):
		return AudioTrueHD
	case containsAny(lower, "dts-hd", "dts hd", "dtshd", "dts-x", "dts x", "dtsx"):
		return AudioDTSHD
	case strings.Contains(lower, "dts"):
		return AudioDTS
	case containsAny(lower, "ddp", "dd+", "eac3", "e-ac-3", "e-ac3"):
		return AudioEAC3
	case containsAny(lower, "ac3", "ac-3") || hasToken(lower, "dd5") || hasToken(lower, "dd2") || hasToken(lower, "dd"):
		return AudioAC3
	case strings.Contains(lower, "flac"):
		return AudioFLAC
	case strings.Contains(lower, "opus"):
		return AudioOpus
	case strings.Contains(lower, "aac"):
		return AudioAAC
	default:
		return AudioUnknown
	}
}

func parseService(name string) string {
	for _, tok := range strings.Fields(name) {
		if serviceTags[tok] {
			return tok
		}
	}
	return ""
}

func parseGroup(name string) string {
	m := groupRe.FindStringSubmatch(name)
	if m == nil {
		return ""
	}
	group := m[1]
	// Strip a file extension if the name includes one
	for _, ext := range []string{".mkv", ".mp4", ".avi", ".nzb", ".torrent"} {
		group = strings.TrimSuffix(group, ext)
	}
	if groupStoplist[strings.ToUpper(group)] {
		return ""
	}
	return group
}

func parseLanguages(name string) []string {
	seen := map[string]bool{}
	for _, tok := range strings.Fields(strings.ToLower(name)) {
		if lang, ok := languageTags[tok]; ok {
			seen[lang] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	langs := make([]string, 0, len(seen))
	for l := range seen {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// hasToken reports whether s contains sub as a whole space-delimited token.
// Used for short tags (cam, ts, dd) that appear inside longer words.
func hasToken(s, sub string) bool {
	for _, tok := range strings.Fields(s) {
		if strings.TrimSuffix(tok, ",") == sub {
			return true
		}
	}
	return false
}
