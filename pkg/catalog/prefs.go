package catalog

// Language is an interface language tag. The set mirrors the languages
// the site content is translated into.
type Language string

const (
	LangEnglish Language = "en"
	LangFarsi   Language = "fa"
	LangFrench  Language = "fr"
	LangGerman  Language = "de"
	LangRussian Language = "ru"
	LangTurkish Language = "tr"
	LangArabic  Language = "ar"
	LangChinese Language = "zh"
)

// Languages lists every supported interface language.
var Languages = []Language{
	LangEnglish, LangFarsi, LangFrench, LangGerman,
	LangRussian, LangTurkish, LangArabic, LangChinese,
}

// DefaultLanguage is the language active at startup.
const DefaultLanguage = LangEnglish

// Theme selects one of the fixed presentation themes.
type Theme string

const (
	ThemeNoir    Theme = "noir"
	ThemeIvory   Theme = "ivory"
	ThemeCrimson Theme = "crimson"
)

// DefaultTheme is the theme active at startup.
const DefaultTheme = ThemeNoir

// Themes maps each theme to its style variables. Setting a theme pushes
// the full map onto the presentation layer's style surface.
var Themes = map[Theme]map[string]string{
	ThemeNoir: {
		"--color-bg":      "#0a0a0a",
		"--color-surface": "#161616",
		"--color-text":    "#eaeaea",
		"--color-muted":   "#8a8a8a",
		"--color-accent":  "#c9a227",
	},
	ThemeIvory: {
		"--color-bg":      "#faf7f0",
		"--color-surface": "#ffffff",
		"--color-text":    "#1c1c1c",
		"--color-muted":   "#6f6a60",
		"--color-accent":  "#8c6a3f",
	},
	ThemeCrimson: {
		"--color-bg":      "#14060a",
		"--color-surface": "#22090f",
		"--color-text":    "#f3e3e7",
		"--color-muted":   "#9c7a83",
		"--color-accent":  "#d7263d",
	},
}
