package artifact

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestNewStore_CreatesDirectoriesIdempotently(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	_, err := NewStore(base, zap.NewNop())
	require.NoError(t, err)

	// Second construction over existing directories must succeed.
	s, err := NewStore(base, zap.NewNop())
	require.NoError(t, err)

	for _, dir := range []string{s.AudioDir(), s.ImageDir(), s.CodeDir()} {
		info, statErr := os.Stat(dir)
		require.NoError(t, statErr)
		assert.True(t, info.IsDir())
	}
}

func TestSaveCode_WritesFileWithMetadata(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	code := "import numpy as np\n\nprint(np.zeros(3))\n"

	info, err := s.SaveCode(code, "Linear Regression")
	require.NoError(t, err)

	assert.Equal(t, "linear_regression.py", info.Filename)
	assert.Equal(t, 3, info.LineCount)
	assert.True(t, info.SyntaxValid)

	data, readErr := os.ReadFile(filepath.Join(s.CodeDir(), info.Filename))
	require.NoError(t, readErr)
	assert.Equal(t, code, string(data))
}

func TestSaveCode_FlagsBrokenSyntax(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	info, err := s.SaveCode("def f(:\n    return ((1\n", "broken")
	require.NoError(t, err)
	assert.False(t, info.SyntaxValid)
}

func TestSaveCode_CollidingSubjectsGetUniqueNames(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	first, err := s.SaveCode("a = 1\n", "K-Means")
	require.NoError(t, err)
	second, err := s.SaveCode("b = 2\n", "K-Means")
	require.NoError(t, err)

	assert.Equal(t, "k_means.py", first.Filename)
	assert.NotEqual(t, first.Filename, second.Filename)

	entries, readErr := os.ReadDir(s.CodeDir())
	require.NoError(t, readErr)
	assert.Len(t, entries, 2)
}

func TestSaveAudio_WritesBytes(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	info, err := s.SaveAudio([]byte("mp3data"), "Gradient Descent")
	require.NoError(t, err)

	assert.Equal(t, "gradient_descent.mp3", info.Filename)
	assert.Equal(t, int64(7), info.SizeBytes)
}

func TestSaveImage_ExtensionFollowsMime(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	png, err := s.SaveImage([]byte("png"), "image/png", "Overfitting", 0)
	require.NoError(t, err)
	assert.Equal(t, "overfitting_1.png", png)

	jpg, err := s.SaveImage([]byte("jpg"), "image/jpeg", "Overfitting", 1)
	require.NoError(t, err)
	assert.Equal(t, "overfitting_2.jpg", jpg)
}

func TestCleanupAudio_RemovesOnlyStaleFiles(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	stale := filepath.Join(s.AudioDir(), "old_lesson.mp3")
	fresh := filepath.Join(s.AudioDir(), "new_lesson.mp3")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(fresh, []byte("new"), 0o644))

	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, past, past))

	removed, failed := s.CleanupAudio(time.Hour)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, failed)

	_, staleErr := os.Stat(stale)
	assert.True(t, os.IsNotExist(staleErr), "stale file should be gone")

	data, readErr := os.ReadFile(fresh)
	require.NoError(t, readErr)
	assert.Equal(t, "new", string(data), "fresh file must be untouched")
}

func TestCleanupAudio_MissingDirIsBestEffort(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.NoError(t, os.RemoveAll(s.AudioDir()))

	removed, failed := s.CleanupAudio(time.Hour)
	assert.Zero(t, removed)
	assert.Zero(t, failed)
}

func TestSlug(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Linear Regression":        "linear_regression",
		"  K-Means++ Clustering  ": "k_means_clustering",
		"CNNs":                     "cnns",
		"⚡⚡⚡":                      "artifact",
		"":                         "artifact",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slug(in), "Slug(%q)", in)
	}
}
