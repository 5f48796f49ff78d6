package logdict

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dictionary/dict"
)

func newLogged() (*Logged[string, int], *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return New[string, int](dict.NewHashDict[string, int](), log), hook
}

func TestSetLogsKey(t *testing.T) {
	assert := assert.New(t)
	d, hook := newLogged()

	d.Set("a", 1)
	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(logrus.DebugLevel, entry.Level)
	assert.Equal("dictionary set", entry.Message)
	assert.Equal("a", entry.Data["key"])
}

func TestMissLogsError(t *testing.T) {
	assert := assert.New(t)
	d, hook := newLogged()

	_, err := d.Get("nope")
	var nf dict.NotFoundError[string]
	require.ErrorAs(t, err, &nf, "miss error passes through unchanged")
	assert.Equal("nope", nf.Key())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal("dictionary miss", entry.Message)
	assert.Equal("nope", entry.Data["key"])
	assert.Equal(err, entry.Data[logrus.ErrorKey])
}

func TestHitDoesNotLog(t *testing.T) {
	assert := assert.New(t)
	d, hook := newLogged()

	d.Set("a", 1)
	hook.Reset()

	v, err := d.Get("a")
	assert.NoError(err)
	assert.Equal(1, v)
	assert.True(d.IsSet("a"))
	assert.False(d.IsSet("b"))
	assert.Empty(hook.AllEntries())
}

func TestDefaultLogger(t *testing.T) {
	d := New[int, int](dict.NewHashDict[int, int](), nil)
	d.Set(1, 2)
	v, err := d.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
}
