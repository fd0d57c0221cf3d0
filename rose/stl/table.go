package stl

import (
	"github.com/rminderhoud/Revise/ds"
	"github.com/samber/lo"
)

// New creates an empty table sized for the declared languages.
func New(kind Kind) *Table {
	return NewWithLanguageCount(kind, LanguageCount)
}

// NewWithLanguageCount creates an empty table whose rows hold languageCount
// entries per field. Decode replaces the count with whatever its file
// declares.
func NewWithLanguageCount(kind Kind, languageCount int) *Table {
	return &Table{
		kind:          kind,
		languageCount: languageCount,
		keys:          make([]Key, 0),
		rows:          make([]Row, 0),
	}
}

func newRow(languageCount int) Row {
	return Row{
		Text:         ds.Repeat(languageCount, ""),
		Description:  ds.Repeat(languageCount, ""),
		StartMessage: ds.Repeat(languageCount, ""),
		EndMessage:   ds.Repeat(languageCount, ""),
	}
}

func (r *Table) Kind() Kind {
	return r.kind
}

func (r *Table) LanguageCount() int {
	return r.languageCount
}

func (r *Table) RowCount() int {
	return len(r.rows)
}

// Keys returns a copy of the key list in row order.
func (r *Table) Keys() []Key {
	return ds.ShallowCopy(r.keys)
}

// Rows returns a copy of the row list. The rows still share field storage
// with the table.
func (r *Table) Rows() []Row {
	return ds.ShallowCopy(r.rows)
}

// AddRow appends a keyed row with every field of every language set to the
// empty string. Duplicate names are allowed.
func (r *Table) AddRow(name string, id int32) {
	r.keys = append(r.keys, Key{Name: name, ID: id})
	r.rows = append(r.rows, newRow(r.languageCount))
}

// RemoveRow deletes the row at index along with its key.
func (r *Table) RemoveRow(index int) error {
	if index < 0 || index >= len(r.rows) {
		return ErrIndexOutOfRange{Index: index, Count: len(r.rows)}
	}
	r.keys = append(r.keys[:index], r.keys[index+1:]...)
	r.rows = append(r.rows[:index], r.rows[index+1:]...)
	return nil
}

// RemoveRowByName deletes the first row keyed name.
func (r *Table) RemoveRowByName(name string) error {
	index, err := r.rowIndexByName(name)
	if err != nil {
		return err
	}
	return r.RemoveRow(index)
}

// Clear drops every key and row. The kind and language count stay.
func (r *Table) Clear() {
	r.keys = make([]Key, 0)
	r.rows = make([]Row, 0)
}

func (r *Table) Key(index int) (Key, error) {
	if index < 0 || index >= len(r.keys) {
		return Key{}, ErrIndexOutOfRange{Index: index, Count: len(r.keys)}
	}
	return r.keys[index], nil
}

func (r *Table) Row(index int) (*Row, error) {
	if index < 0 || index >= len(r.rows) {
		return nil, ErrIndexOutOfRange{Index: index, Count: len(r.rows)}
	}
	return &r.rows[index], nil
}

// RowByName returns the first row keyed name.
func (r *Table) RowByName(name string) (*Row, error) {
	index, err := r.rowIndexByName(name)
	if err != nil {
		return nil, err
	}
	return &r.rows[index], nil
}

func (r *Table) rowIndexByName(name string) (int, error) {
	_, index, found := lo.FindIndexOf(
		r.keys,
		func(key Key) bool {
			return key.Name == name
		},
	)
	if !found {
		return 0, ErrKeyNotFound{Name: name}
	}
	return index, nil
}

func (r *Table) checkLanguage(language Language) error {
	if language < 0 || int(language) >= r.languageCount {
		return ErrIndexOutOfRange{Index: int(language), Count: r.languageCount}
	}
	return nil
}

func (r *Table) Text(index int, language Language) (string, error) {
	row, err := r.Row(index)
	if err != nil {
		return "", err
	}
	if err := r.checkLanguage(language); err != nil {
		return "", err
	}
	return row.Text[language], nil
}

func (r *Table) SetText(index int, language Language, value string) error {
	row, err := r.Row(index)
	if err != nil {
		return err
	}
	if err := r.checkLanguage(language); err != nil {
		return err
	}
	row.Text[language] = value
	return nil
}

func (r *Table) Description(index int, language Language) (string, error) {
	row, err := r.Row(index)
	if err != nil {
		return "", err
	}
	if err := r.checkLanguage(language); err != nil {
		return "", err
	}
	return row.Description[language], nil
}

func (r *Table) SetDescription(index int, language Language, value string) error {
	row, err := r.Row(index)
	if err != nil {
		return err
	}
	if err := r.checkLanguage(language); err != nil {
		return err
	}
	row.Description[language] = value
	return nil
}

func (r *Table) StartMessage(index int, language Language) (string, error) {
	row, err := r.Row(index)
	if err != nil {
		return "", err
	}
	if err := r.checkLanguage(language); err != nil {
		return "", err
	}
	return row.StartMessage[language], nil
}

func (r *Table) SetStartMessage(index int, language Language, value string) error {
	row, err := r.Row(index)
	if err != nil {
		return err
	}
	if err := r.checkLanguage(language); err != nil {
		return err
	}
	row.StartMessage[language] = value
	return nil
}

func (r *Table) EndMessage(index int, language Language) (string, error) {
	row, err := r.Row(index)
	if err != nil {
		return "", err
	}
	if err := r.checkLanguage(language); err != nil {
		return "", err
	}
	return row.EndMessage[language], nil
}

func (r *Table) SetEndMessage(index int, language Language, value string) error {
	row, err := r.Row(index)
	if err != nil {
		return err
	}
	if err := r.checkLanguage(language); err != nil {
		return err
	}
	row.EndMessage[language] = value
	return nil
}
