package stl

import (
	"github.com/pkg/errors"
	"github.com/rminderhoud/Revise/rose/rbytes"
	"github.com/samber/lo"
)

// Decode reads a table file from reader.
func Decode(reader *rbytes.Reader) (*Table, error) {
	table := New(KindNormal)
	if err := table.Decode(reader); err != nil {
		return nil, err
	}
	return table, nil
}

// Decode replaces the table's content with the file read from reader. The
// kind identifier is resolved before anything is cleared, so an unknown
// identifier leaves the table untouched; any later failure leaves it
// partially populated and the caller must treat it as invalid.
func (r *Table) Decode(reader *rbytes.Reader) error {
	identifier, err := reader.ReadString()
	if err != nil {
		return errors.Wrap(err, "Decode error: read kind identifier")
	}
	kind, err := KindFromIdentifier(identifier)
	if err != nil {
		return err
	}
	r.kind = kind
	r.Clear()

	rowCount, err := reader.ReadInt()
	if err != nil {
		return errors.Wrap(err, "Decode error: read row count")
	}
	// a key takes at least five bytes, so a count past that bound can never
	// be satisfied by the remaining stream; checking up front keeps a bogus
	// count from turning into a giant allocation
	if rowCount < 0 {
		return errors.Errorf("Decode error: negative row count %d", rowCount)
	}
	if int64(rowCount)*5 > int64(reader.Len()) {
		return rbytes.ErrTruncated{Expected: int(rowCount) * 5, Position: reader.Position()}
	}
	r.keys = make([]Key, 0, rowCount)
	for i := 0; i < int(rowCount); i++ {
		name, err := reader.ReadString()
		if err != nil {
			return errors.Wrapf(err, "Decode error: read key %d name", i)
		}
		id, err := reader.ReadInt()
		if err != nil {
			return errors.Wrapf(err, "Decode error: read key %d id", i)
		}
		r.keys = append(r.keys, Key{Name: name, ID: id})
	}

	// the file's own language count sizes the rows, not the declared enum;
	// files written against a different language set stay readable
	languageCount, err := reader.ReadInt()
	if err != nil {
		return errors.Wrap(err, "Decode error: read language count")
	}
	if languageCount < 0 {
		return errors.Errorf("Decode error: negative language count %d", languageCount)
	}
	if int64(languageCount)*4 > int64(reader.Len()) {
		return rbytes.ErrTruncated{Expected: int(languageCount) * 4, Position: reader.Position()}
	}
	r.languageCount = int(languageCount)

	// placeholder rows come first so the per-language walk below can write
	// into any row it lands on
	r.rows = lo.Times(
		int(rowCount),
		func(_ int) Row {
			return newRow(int(languageCount))
		},
	)

	for j := 0; j < int(languageCount); j++ {
		languageOffset, err := reader.ReadInt()
		if err != nil {
			return errors.Wrapf(err, "Decode error: read language %d offset", j)
		}
		nextLanguageSlot := reader.Position()
		if err := reader.SeekTo(int64(languageOffset)); err != nil {
			return errors.Wrapf(err, "Decode error: seek to language %d row offsets", j)
		}
		for i := 0; i < int(rowCount); i++ {
			rowOffset, err := reader.ReadInt()
			if err != nil {
				return errors.Wrapf(err, "Decode error: read row %d offset", i)
			}
			nextRowSlot := reader.Position()
			if err := reader.SeekTo(int64(rowOffset)); err != nil {
				return errors.Wrapf(err, "Decode error: seek to row %d", i)
			}
			if err := r.decodeRow(reader, i, Language(j)); err != nil {
				return err
			}
			// restore unconditionally, last row included: the outer loops
			// depend on the cursor sitting at the next untouched slot
			if err := reader.SeekTo(nextRowSlot); err != nil {
				return errors.Wrapf(err, "Decode error: restore after row %d", i)
			}
		}
		if err := reader.SeekTo(nextLanguageSlot); err != nil {
			return errors.Wrapf(err, "Decode error: restore after language %d", j)
		}
	}

	return nil
}

func (r *Table) decodeRow(reader *rbytes.Reader, index int, language Language) error {
	row := &r.rows[index]
	err := error(nil)

	if row.Text[language], err = reader.ReadString(); err != nil {
		return errors.Wrapf(err, "decodeRow error: read row %d text", index)
	}
	if r.kind.HasDescription() {
		if row.Description[language], err = reader.ReadString(); err != nil {
			return errors.Wrapf(err, "decodeRow error: read row %d description", index)
		}
	}
	if r.kind.HasMessages() {
		if row.StartMessage[language], err = reader.ReadString(); err != nil {
			return errors.Wrapf(err, "decodeRow error: read row %d start message", index)
		}
		if row.EndMessage[language], err = reader.ReadString(); err != nil {
			return errors.Wrapf(err, "decodeRow error: read row %d end message", index)
		}
	}

	return nil
}
