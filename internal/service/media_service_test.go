package service

import (
	"context"
	"testing"

	"github.com/skillbridge-bd/institute-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fiveMB = 5 * 1024 * 1024

func TestMediaService_Upload_RejectsBeforeProviderCall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		upload *Upload
		want   error
	}{
		{name: "pdf", upload: fileUpload("cv.pdf", "application/pdf", 10), want: ErrUnsupportedFileType},
		{name: "missing content type", upload: fileUpload("blob", "", 10), want: ErrUnsupportedFileType},
		{name: "one byte over the limit", upload: imageUpload("big.png", fiveMB+1), want: ErrFileTooLarge},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			up := &fakeUploader{}
			_, err := newTestMedia(up).Upload(context.Background(), tt.upload, FolderEnrollments)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, up.callCount())
		})
	}
}

func TestMediaService_Upload_ExactLimitAccepted(t *testing.T) {
	t.Parallel()

	up := &fakeUploader{}
	url, err := newTestMedia(up).Upload(context.Background(), imageUpload("ok.png", fiveMB), FolderCertificates)
	require.NoError(t, err)
	assert.Contains(t, url, "/certificates/")
	require.Equal(t, 1, up.callCount())
	assert.Equal(t, fiveMB, up.calls[0].size)
	assert.Equal(t, "image/png", up.calls[0].contentType)
}

func TestMediaService_Upload_UnderstatedSize(t *testing.T) {
	t.Parallel()

	u := imageUpload("liar.png", fiveMB+10)
	u.Size = 100

	up := &fakeUploader{}
	_, err := newTestMedia(up).Upload(context.Background(), u, FolderEnrollments)
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Zero(t, up.callCount())
}

func TestMediaService_Upload_ProviderFailure(t *testing.T) {
	t.Parallel()

	up := &fakeUploader{failOn: 1}
	_, err := newTestMedia(up).Upload(context.Background(), imageUpload("a.png", 10), FolderEnrollments)
	assert.ErrorIs(t, err, storage.ErrUploadFailed)
	assert.Equal(t, 1, up.callCount(), "no retry")
}

func TestMediaService_ValidateAll_SkipsNil(t *testing.T) {
	t.Parallel()

	svc := newTestMedia(&fakeUploader{})
	assert.NoError(t, svc.ValidateAll(nil, imageUpload("a.png", 1), nil))
	assert.ErrorIs(t, svc.ValidateAll(imageUpload("a.png", 1), fileUpload("b.txt", "text/plain", 1)), ErrUnsupportedFileType)
}
