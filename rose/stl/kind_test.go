package stl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFromIdentifier(t *testing.T) {
	expectedKinds := map[string]Kind{
		IdentifierNormal: KindNormal,
		IdentifierItem:   KindItem,
		IdentifierQuest:  KindQuest,
	}
	for identifier, expected := range expectedKinds {
		kind, err := KindFromIdentifier(identifier)
		require.NoError(t, err)
		assert.Equal(t, expected, kind)
	}
}

func TestKindFromIdentifier_Unknown(t *testing.T) {
	_, err := KindFromIdentifier("xyz")

	unknown := ErrUnknownKind{}
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "xyz", unknown.Identifier)
}

func TestIdentifierFromKind(t *testing.T) {
	identifier, err := IdentifierFromKind(KindQuest)
	require.NoError(t, err)
	assert.Equal(t, IdentifierQuest, identifier)

	_, err = IdentifierFromKind(Kind("bogus"))
	unknown := ErrUnknownKind{}
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "bogus", unknown.Identifier)
}

func TestKind_FieldSchema(t *testing.T) {
	assert.False(t, KindNormal.HasDescription())
	assert.False(t, KindNormal.HasMessages())
	assert.True(t, KindItem.HasDescription())
	assert.False(t, KindItem.HasMessages())
	assert.True(t, KindQuest.HasDescription())
	assert.True(t, KindQuest.HasMessages())
}
