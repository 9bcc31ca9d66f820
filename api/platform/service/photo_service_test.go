package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
)

func newLocalPhotoService(t *testing.T) (*LocalPhotoService, string) {
	t.Helper()

	root := filepath.Join(t.TempDir(), "uploads")
	logger := lib.Logger{Zap: zap.NewNop().Sugar(), DesugarZap: zap.NewNop()}

	return NewLocalPhotoService(root, "/uploads", logger), root
}

func TestLocalPhotoUploadAndDelete(t *testing.T) {
	svc, root := newLocalPhotoService(t)

	info, err := svc.Upload("biscuit.jpg", strings.NewReader("jpeg bytes"), 10, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "biscuit.jpg", info.Name)
	assert.True(t, strings.HasPrefix(info.URL, "/uploads/"))
	assert.EqualValues(t, 10, info.Size)

	stored := filepath.Join(root, strings.TrimPrefix(info.URL, "/uploads/"))
	_, err = os.Stat(stored)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(info.URL))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalPhotoDeleteMissingFileIsNoop(t *testing.T) {
	svc, _ := newLocalPhotoService(t)

	assert.NoError(t, svc.Delete("/uploads/20260823/no-such-file.jpg"))
}

func TestLocalPhotoDeleteRejectsTraversal(t *testing.T) {
	svc, root := newLocalPhotoService(t)

	// a file right outside the storage directory
	outside := filepath.Join(filepath.Dir(root), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0644))

	err := svc.Delete("/uploads/../secret.txt")
	assert.ErrorIs(t, err, errors.MediaPathNotAllowed)

	_, statErr := os.Stat(outside)
	assert.NoError(t, statErr)
}

func TestLocalPhotoDeleteRejectsSiblingDirectory(t *testing.T) {
	svc, root := newLocalPhotoService(t)

	// uploads-x shares the uploads prefix but is a different directory
	sibling := root + "-x"
	require.NoError(t, os.MkdirAll(sibling, 0755))
	siblingFile := filepath.Join(sibling, "photo.jpg")
	require.NoError(t, os.WriteFile(siblingFile, []byte("keep"), 0644))

	err := svc.Delete("/uploads/../uploads-x/photo.jpg")
	assert.ErrorIs(t, err, errors.MediaPathNotAllowed)

	_, statErr := os.Stat(siblingFile)
	assert.NoError(t, statErr)
}
