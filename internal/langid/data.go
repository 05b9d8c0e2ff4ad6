package langid

// isArabicScript reports whether r falls in the Arabic block or the Arabic
// presentation forms A and B.
func isArabicScript(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0xFB50 && r <= 0xFDFF) ||
		(r >= 0xFE70 && r <= 0xFEFF)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// qashqaiMarkers are vowel letters written in Qashqai but not in Persian:
// ۆ U+06C6, ۉ U+06C9, ۊ U+06CA, ۋ U+06CB.
const qashqaiMarkers = "ۆۉۊۋ"

// turkishLetters mark Latin text as Turkish. ASCII capital I is part of the
// fixed set; capital dotted İ is added alongside it.
const turkishLetters = "ğşıöüçĞŞIÖÜÇİ"

// qashqaiFunctionWords holds common Qashqai pronouns, demonstratives and
// interrogatives. Words spelled identically in Persian (من، او، نه) are left
// out.
var qashqaiFunctionWords = map[string]struct{}{
	"سن":     {}, // you
	"بیز":    {}, // we
	"سیز":    {}, // you (plural)
	"اولار":  {}, // they
	"منیم":   {}, // my
	"سنین":   {}, // your
	"بو":     {}, // this
	"شو":     {}, // that
	"بونلار": {}, // these
	"کیم":    {}, // who
	"نئجه":   {}, // how
	"هارا":   {}, // where
	"هاچان":  {}, // when
	"نییه":   {}, // why
}
