package sanitizer

// phoneSeparators are the punctuation characters people put into phone numbers.
var phoneSeparators = []rune{' ', '-', '(', ')'}

// StripPhoneSeparators removes spaces, hyphens and parentheses.
// Other characters, including a leading '+', are kept so the result can still be
// rejected by a strict pattern.
func StripPhoneSeparators(phone string) string {
	return RemoveChars(phone, phoneSeparators...)
}

// NormalizePostalCode trims surrounding whitespace and drops inner spaces,
// so "560 001" reads as "560001". Tabs and other runes inside the code are kept.
func NormalizePostalCode(code string) string {
	return RemoveChars(Trim(code), ' ')
}

// NormalizeCode trims and upper-cases identifiers such as registration numbers.
var NormalizeCode = Compose(Trim, ToUpper)
