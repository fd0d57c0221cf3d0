package stl

import (
	"github.com/samber/lo"
)

// On-disk type identifiers. A file starts with one of these so a reader can
// pick the row schema before any row is touched.
const (
	IdentifierNormal = "NRST01"
	IdentifierItem   = "ITST01"
	IdentifierQuest  = "QEST01"
)

var (
	identifierByKind = map[Kind]string{
		KindNormal: IdentifierNormal,
		KindItem:   IdentifierItem,
		KindQuest:  IdentifierQuest,
	}
	kindByIdentifier = lo.Invert(identifierByKind)
)

// KindFromIdentifier resolves an on-disk type identifier to its kind. There
// is no fallback: an unrecognized identifier is ErrUnknownKind.
func KindFromIdentifier(identifier string) (Kind, error) {
	kind, ok := kindByIdentifier[identifier]
	if !ok {
		return "", ErrUnknownKind{Identifier: identifier}
	}
	return kind, nil
}

// IdentifierFromKind is the write-side inverse of KindFromIdentifier.
func IdentifierFromKind(kind Kind) (string, error) {
	identifier, ok := identifierByKind[kind]
	if !ok {
		return "", ErrUnknownKind{Identifier: string(kind)}
	}
	return identifier, nil
}
