package host

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReply_CopyThenPreviewKeepsCopyDirective(t *testing.T) {
	r := NewReply(false)

	require.False(t, r.CanPaste())
	require.NoError(t, r.Copy("result"))
	r.ShowText("result", true)
	r.ShowStatus(true)

	require.Equal(t, DirectiveCopy, r.Directive)
	require.Equal(t, "result", r.Text)
	require.True(t, r.Preview)
	require.True(t, r.OK)
}

func TestReply_ShowAloneIsShowDirective(t *testing.T) {
	r := NewReply(true)

	r.ShowText("Conversation cleared.", false)
	r.ShowStatus(true)

	require.Equal(t, DirectiveShow, r.Directive)
	require.Equal(t, "Conversation cleared.", r.Text)
	require.False(t, r.Preview)
}

func TestReply_DefaultIsNone(t *testing.T) {
	r := NewReply(false)
	require.Equal(t, DirectiveNone, r.Directive)
	require.False(t, r.OK)
}
