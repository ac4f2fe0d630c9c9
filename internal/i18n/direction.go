package i18n

const (
	DirRTL = "rtl"
	DirLTR = "ltr"
)

// rightToLeft lists the site languages written right to left.
var rightToLeft = map[string]struct{}{
	"ar": {},
	"fa": {},
	"he": {},
	"ur": {},
}

// IsLangRightToLeft reports whether the base language of code is written right to left.
func IsLangRightToLeft(code string) bool {
	_, ok := rightToLeft[BaseLanguage(code)]
	return ok
}

// Direction maps a language code to "rtl" or "ltr".
func Direction(code string) string {
	if IsLangRightToLeft(code) {
		return DirRTL
	}
	return DirLTR
}
