package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesLevel(t *testing.T) {
	log, closer, err := New("warning", "json", "")
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestNewRejectsInvalidLevel(t *testing.T) {
	_, _, err := New("loud", "text", "")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestParseLevelAcceptsSerilogNames(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"Verbose", logrus.TraceLevel},
		{"Debug", logrus.DebugLevel},
		{"Information", logrus.InfoLevel},
		{"Warning", logrus.WarnLevel},
		{"Error", logrus.ErrorLevel},
		{"Fatal", logrus.FatalLevel},
		{"info", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lvl, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lvl)
		})
	}
}

func TestNewRejectsInvalidFormat(t *testing.T) {
	_, _, err := New("info", "xml", "")
	assert.ErrorContains(t, err, "invalid log format")
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cinevault.log")
	log, closer, err := New("info", "text", path)
	require.NoError(t, err)

	log.WithField("movie_id", 7).Info("Movie created")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Movie created")
	assert.Contains(t, string(raw), "movie_id=7")
}
