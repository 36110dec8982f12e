package console

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEditor_SingleSlot(t *testing.T) {
	var editor Editor[int, string]

	require.False(t, editor.Editing())
	require.Nil(t, editor.Draft())
	_, ok := editor.Target()
	require.False(t, ok)

	editor.Begin(3, "draft three")
	require.True(t, editor.Editing())
	target, ok := editor.Target()
	require.True(t, ok)
	require.Equal(t, 3, target)
	require.Equal(t, "draft three", *editor.Draft())

	// Beginning another edit replaces the slot wholesale.
	editor.Begin(7, "draft seven")
	target, _ = editor.Target()
	require.Equal(t, 7, target)
	require.Equal(t, "draft seven", *editor.Draft())

	editor.Finish()
	require.False(t, editor.Editing())
	require.Nil(t, editor.Draft())
}

func TestEditor_DraftMutatesInPlace(t *testing.T) {
	var editor Editor[int, string]
	editor.Begin(0, "initial")
	*editor.Draft() = "typed more"
	require.Equal(t, "typed more", *editor.Draft())
}
