//go:build unit

package snapshot_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"homestay-api/internal/infra/repository/converter"
	"homestay-api/internal/infra/snapshot"
	"homestay-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func TestFileWriteAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "rooms_backup.json")
	file := snapshot.NewFile(path)

	docs := []converter.RoomDocument{
		builder.NewRoomBuilder().WithID("0101").BuildDocument(now),
		builder.NewRoomBuilder().WithID("0102").With(func(b *builder.RoomBuilder) {
			b.Name = "Phòng Gia Đình"
		}).BuildDocument(now),
	}

	require.NoError(t, file.Write(docs))

	got, err := file.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)

	rooms := converter.DocumentsToRooms(got)
	want := converter.DocumentsToRooms(docs)
	if diff := cmp.Diff(want, rooms); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}

	t.Run("non-ASCII text is written unescaped", func(t *testing.T) {
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "Phòng Gia Đình")
	})

	t.Run("no temp files are left behind", func(t *testing.T) {
		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestFileLoadMissing(t *testing.T) {
	t.Run("absent file", func(t *testing.T) {
		file := snapshot.NewFile(filepath.Join(t.TempDir(), "missing.json"))
		_, err := file.Load()
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("empty file counts as absent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.json")
		require.NoError(t, os.WriteFile(path, []byte("\n"), 0o644))

		_, err := snapshot.NewFile(path).Load()
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("corrupt file is a decode error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := snapshot.NewFile(path).Load()
		require.Error(t, err)
		assert.False(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestWriteIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.json")
	file := snapshot.NewFile(path)
	docs := []converter.RoomDocument{builder.NewRoomBuilder().WithID("0101").BuildDocument(now)}

	require.NoError(t, file.Write(docs))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, file.Write(docs))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	encoded, err := snapshot.Encode(docs)
	require.NoError(t, err)
	assert.Equal(t, encoded, second)
}

func TestWriteNilIsEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.json")
	require.NoError(t, snapshot.NewFile(path).Write(nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}
