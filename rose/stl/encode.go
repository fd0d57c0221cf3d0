package stl

import (
	"github.com/pkg/errors"
	"github.com/rminderhoud/Revise/rose/rbytes"
)

// Encode writes the table to writer in the two-level offset layout: key
// section, language offset slots, then per language a run of row offset
// slots followed by the row payloads the slots point at. Slots are reserved
// as placeholders and backfilled once the payload positions are known.
func (r *Table) Encode(writer *rbytes.Writer) error {
	identifier, err := IdentifierFromKind(r.kind)
	if err != nil {
		return err
	}
	writer.WriteString(identifier)

	writer.WriteInt(int32(len(r.rows)))
	for _, key := range r.keys {
		writer.WriteString(key.Name)
		writer.WriteInt(key.ID)
	}

	// always the table's current in-memory count, whatever count the table
	// was originally decoded from
	writer.WriteInt(int32(r.languageCount))

	languageSlots := rbytes.ReserveOffsets(writer, r.languageCount)
	languagePositions := make([]int64, 0, r.languageCount)
	for j := 0; j < r.languageCount; j++ {
		rowSlots := rbytes.ReserveOffsets(writer, len(r.rows))
		languagePositions = append(languagePositions, rowSlots.Base())

		rowPositions := make([]int64, 0, len(r.rows))
		for i := range r.rows {
			rowPositions = append(rowPositions, writer.Position())
			r.encodeRow(writer, i, Language(j))
		}
		if err := rowSlots.Resolve(writer, rowPositions); err != nil {
			return errors.Wrapf(err, "Encode error: resolve language %d row offsets", j)
		}
	}
	if err := languageSlots.Resolve(writer, languagePositions); err != nil {
		return errors.Wrap(err, "Encode error: resolve language offsets")
	}

	return nil
}

func (r *Table) encodeRow(writer *rbytes.Writer, index int, language Language) {
	row := &r.rows[index]
	writer.WriteString(row.Text[language])
	if r.kind.HasDescription() {
		writer.WriteString(row.Description[language])
	}
	if r.kind.HasMessages() {
		writer.WriteString(row.StartMessage[language])
		writer.WriteString(row.EndMessage[language])
	}
}
