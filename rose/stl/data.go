// Package stl reads and writes string table files: ordered, keyed rows of
// per-language text addressed through a two-level offset table (language
// slots pointing at row-offset arrays pointing at row payloads).
package stl

type (
	// Kind selects the field schema rows of a table carry.
	Kind string

	// Language indexes the per-language entries of a row.
	Language int

	// Key names a row. Names are not unique across a table; lookups return
	// the first match.
	Key struct {
		Name string `json:"name"`
		ID   int32  `json:"id"`
	}

	// Row holds one entry per language for each field. The table's kind
	// decides which fields reach the file; the others stay empty strings
	// and are never written.
	Row struct {
		Text         []string `json:"text"`
		Description  []string `json:"description"`
		StartMessage []string `json:"start_message"`
		EndMessage   []string `json:"end_message"`
	}

	// Table is an ordered list of keyed rows. Keys and rows correlate by
	// position: keys[i] names rows[i].
	Table struct {
		kind          Kind
		languageCount int
		keys          []Key
		rows          []Row
	}
)

const (
	KindNormal = Kind("normal")
	KindItem   = Kind("item")
	KindQuest  = Kind("quest")
)

const (
	LanguageKorean Language = iota
	LanguageEnglish
	LanguageJapanese
	LanguageChinese
	languageEnumCount
)

// LanguageCount is the number of declared languages. New tables start with
// this many entries per field; decoded tables are sized by whatever count
// their file declares instead.
const LanguageCount = int(languageEnumCount)

// HasDescription reports whether rows of the kind carry a description field.
func (r Kind) HasDescription() bool {
	return r == KindItem || r == KindQuest
}

// HasMessages reports whether rows of the kind carry quest start and end
// message fields.
func (r Kind) HasMessages() bool {
	return r == KindQuest
}
