package token

import "fmt"

// Keyword identifies a reserved word.
type Keyword int

// Reserved words. Contextual words such as "async", "show" or "of" are not
// listed; they are built with FromText or as identifiers.
const (
	NoKeyword Keyword = iota
	KwAbstract
	KwAs
	KwAssert
	KwBreak
	KwCase
	KwCatch
	KwClass
	KwConst
	KwContinue
	KwDefault
	KwDeferred
	KwDo
	KwDynamic
	KwElse
	KwEnum
	KwExport
	KwExtends
	KwExternal
	KwFactory
	KwFalse
	KwFinal
	KwFinally
	KwFor
	KwGet
	KwIf
	KwImplements
	KwImport
	KwIn
	KwIs
	KwLibrary
	KwNew
	KwNull
	KwOperator
	KwPart
	KwRethrow
	KwReturn
	KwSet
	KwStatic
	KwSuper
	KwSwitch
	KwThis
	KwThrow
	KwTrue
	KwTry
	KwTypedef
	KwVar
	KwVoid
	KwWhile
	KwWith

	keywordCount
)

var keywordLexemes = [keywordCount]string{
	NoKeyword:    "",
	KwAbstract:   "abstract",
	KwAs:         "as",
	KwAssert:     "assert",
	KwBreak:      "break",
	KwCase:       "case",
	KwCatch:      "catch",
	KwClass:      "class",
	KwConst:      "const",
	KwContinue:   "continue",
	KwDefault:    "default",
	KwDeferred:   "deferred",
	KwDo:         "do",
	KwDynamic:    "dynamic",
	KwElse:       "else",
	KwEnum:       "enum",
	KwExport:     "export",
	KwExtends:    "extends",
	KwExternal:   "external",
	KwFactory:    "factory",
	KwFalse:      "false",
	KwFinal:      "final",
	KwFinally:    "finally",
	KwFor:        "for",
	KwGet:        "get",
	KwIf:         "if",
	KwImplements: "implements",
	KwImport:     "import",
	KwIn:         "in",
	KwIs:         "is",
	KwLibrary:    "library",
	KwNew:        "new",
	KwNull:       "null",
	KwOperator:   "operator",
	KwPart:       "part",
	KwRethrow:    "rethrow",
	KwReturn:     "return",
	KwSet:        "set",
	KwStatic:     "static",
	KwSuper:      "super",
	KwSwitch:     "switch",
	KwThis:       "this",
	KwThrow:      "throw",
	KwTrue:       "true",
	KwTry:        "try",
	KwTypedef:    "typedef",
	KwVar:        "var",
	KwVoid:       "void",
	KwWhile:      "while",
	KwWith:       "with",
}

var keywordsByLexeme = func() map[string]Keyword {
	m := make(map[string]Keyword, keywordCount)
	for k := KwAbstract; k < keywordCount; k++ {
		m[keywordLexemes[k]] = k
	}
	return m
}()

// Lexeme returns the spelling of the keyword.
func (k Keyword) Lexeme() string {
	if k >= 0 && k < keywordCount {
		return keywordLexemes[k]
	}
	return ""
}

// String returns the spelling of the keyword.
func (k Keyword) String() string {
	if k > NoKeyword && k < keywordCount {
		return keywordLexemes[k]
	}
	return fmt.Sprintf("Keyword(%d)", int(k))
}

// LookupKeyword returns the keyword spelled by s.
func LookupKeyword(s string) (Keyword, bool) {
	k, ok := keywordsByLexeme[s]
	return k, ok
}
