package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"github.com/skillbridge-bd/institute-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentService_Create(t *testing.T) {
	t.Parallel()

	up := &fakeUploader{}
	store := &memEnrollments{}
	svc := NewEnrollmentService(store, newTestMedia(up), zerolog.Nop())

	e, err := svc.Create(context.Background(), NewEnrollment{
		Name:     "Karim",
		Phone:    "01700000000",
		Photo:    imageUpload("photo.jpg", 100),
		NIDPhoto: imageUpload("nid.jpg", 200),
	})
	require.NoError(t, err)

	assert.Equal(t, model.EnrollmentPending, e.Status)
	assert.Nil(t, e.Email)
	assert.NotEmpty(t, e.Photo)
	assert.NotEmpty(t, e.NIDPhoto)
	require.Equal(t, 2, up.callCount())
	assert.Equal(t, FolderEnrollments, up.calls[0].folder)
	assert.Equal(t, 100, up.calls[0].size, "photo goes first")
	assert.Equal(t, 200, up.calls[1].size)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEnrollmentService_Create_NothingStoredOnFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		nid       *Upload
		failOn    int
		want      error
		wantCalls int
	}{
		{name: "invalid second file", nid: fileUpload("nid.pdf", "application/pdf", 10), want: ErrUnsupportedFileType, wantCalls: 0},
		{name: "second upload fails", nid: imageUpload("nid.jpg", 10), failOn: 2, want: storage.ErrUploadFailed, wantCalls: 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			up := &fakeUploader{failOn: tt.failOn}
			store := &memEnrollments{}
			svc := NewEnrollmentService(store, newTestMedia(up), zerolog.Nop())

			_, err := svc.Create(context.Background(), NewEnrollment{
				Name: "Karim", Phone: "017", Email: "k@example.com",
				Photo: imageUpload("photo.jpg", 10), NIDPhoto: tt.nid,
			})
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.wantCalls, up.callCount())

			list, _ := store.List(context.Background())
			assert.Empty(t, list)
		})
	}
}
