package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestModerator(t *testing.T) Moderator {
	t.Helper()
	m, err := NewModerator([]string{"stupid", "idiot"}, '*')
	require.NoError(t, err)
	return m
}

func Test_Censor_Replaces_Forbidden_Words(t *testing.T) {
	req := require.New(t)
	m := newTestModerator(t)

	out, censored := m.Censor("don't be stupid please")
	req.True(censored)
	req.Equal("don't be ****** please", out)
}

func Test_Censor_Handles_Leet_Speak(t *testing.T) {
	req := require.New(t)
	m := newTestModerator(t)

	out, censored := m.Censor("such an 1d10t move")
	req.True(censored)
	req.NotContains(out, "1d10t")
}

func Test_Censor_Leaves_Clean_Text_Alone(t *testing.T) {
	req := require.New(t)
	m := newTestModerator(t)

	out, censored := m.Censor("perfectly fine sentence")
	req.False(censored)
	req.Equal("perfectly fine sentence", out)
}

func Test_LoadCensoredWords_Embedded_Lists(t *testing.T) {
	req := require.New(t)

	data, err := LoadCensoredWords()
	req.NoError(err)
	req.NotEmpty(data.Words)
	req.Contains(data.Languages, "en")
	req.Contains(data.Languages, "fr")
}

func Test_DetectLang(t *testing.T) {
	req := require.New(t)
	req.Equal("en", DetectLang("the quick brown fox jumps over the lazy dog"))
}
