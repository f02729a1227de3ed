package share

import (
	"net/url"
	"strings"
	"testing"

	"github.com/Guerrilla-Interactive/tenis-grupos/app/roster"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(link string) error {
	if f.err != nil {
		return f.err
	}
	f.opened = append(f.opened, link)
	return nil
}

func groupOne(t *testing.T) roster.Group {
	t.Helper()
	r, err := roster.Load(strings.NewReader("nombre,telefono,grupo\nAna,34611111111,1\nLuis,34622222222,2\nEva,34633333333,1\n"))
	require.NoError(t, err)
	return r.Groups[0]
}

func TestPhoneList(t *testing.T) {
	assert.Equal(t, "34611111111, 34633333333", PhoneList(groupOne(t)))
	assert.Equal(t, "", PhoneList(roster.Group{}))
}

func TestInviteMessage(t *testing.T) {
	want := "Hola! Los invito al grupo de tenis \"Grupo Tenis 1\". Por favor, únanse usando este enlace.\n\n" +
		"Participantes:\n- Ana: 34611111111\n- Eva: 34633333333"
	assert.Equal(t, want, InviteMessage(groupOne(t)))
}

func TestWhatsAppLinkRoundTrip(t *testing.T) {
	g := groupOne(t)
	link := WhatsAppLink(g)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/send?text="))
	assert.Contains(t, link, "%0A")
	assert.NotContains(t, link, "\n")
	assert.NotContains(t, link, "+")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, InviteMessage(g), u.Query().Get("text"))
}

func TestWhatsAppLinkEscapesReservedCharacters(t *testing.T) {
	g := roster.Group{Label: "A&B", Rows: []roster.Row{
		{roster.ColumnName: "José + María", roster.ColumnPhone: "+34 600?1=2"},
	}}
	u, err := url.Parse(WhatsAppLink(g))
	require.NoError(t, err)
	assert.Equal(t, []string{"text"}, keys(u.Query()))
	assert.Equal(t, InviteMessage(g), u.Query().Get("text"))
}

func keys(v url.Values) []string {
	out := make([]string, 0, len(v))
	for k := range v {
		out = append(out, k)
	}
	return out
}

func TestPerform(t *testing.T) {
	g := groupOne(t)

	cb := &fakeClipboard{}
	op := &fakeOpener{}
	text, err := Perform(ActionCopy, g, cb, op)
	require.NoError(t, err)
	assert.Equal(t, "34611111111, 34633333333", text)
	assert.Equal(t, text, cb.text)
	assert.Empty(t, op.opened)

	link, err := Perform(ActionLink, g, cb, op)
	require.NoError(t, err)
	assert.Equal(t, []string{link}, op.opened)
}

func TestPerformReportsFailures(t *testing.T) {
	g := groupOne(t)
	boom := errors.New("boom")

	_, err := Perform(ActionCopy, g, &fakeClipboard{err: boom}, &fakeOpener{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	_, err = Perform(ActionLink, g, &fakeClipboard{}, &fakeOpener{err: boom})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestParseAction(t *testing.T) {
	cases := map[string]Action{"copy": ActionCopy, "LINK": ActionLink, " whatsapp ": ActionLink, "clipboard": ActionCopy}
	for in, want := range cases {
		got, err := ParseAction(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseAction("fax")
	assert.Error(t, err)
}
