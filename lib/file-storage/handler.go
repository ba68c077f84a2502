package filestorage

import (
	"bytes"
	"context"
	"io"
	"job-portal-backend/config"
	"job-portal-backend/db"
	filesdbstorage "job-portal-backend/lib/file-storage/storage"
	userstore "job-portal-backend/lib/user/store"
	dbmodels "job-portal-backend/models/db"
	s3client "job-portal-backend/s3"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Provider interface {
	// UploadResume stores the blob and its metadata row; the returned id is
	// both the row id and the object key. Replacing a user's resume does not
	// delete the previous blob.
	UploadResume(ctx context.Context, userID, fileName, contentType string, data []byte) (fileID string, err error)
	GetResume(ctx context.Context, fileID string) (rec *dbmodels.ResumeFile, data []byte, err error)
	// GetUserResume resolves the user's current resume pointer; (nil, nil, nil)
	// when the user has no resume on file.
	GetUserResume(ctx context.Context, userID string) (rec *dbmodels.ResumeFile, data []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3:         s3client.Client,
		filesStore: filesdbstorage.NewInstance(db.DB),
		userStore:  userstore.NewInstance(db.DB),
	}
}

type impl struct {
	s3         *minio.Client
	filesStore filesdbstorage.Provider
	userStore  userstore.Provider
}

func (i impl) UploadResume(ctx context.Context, userID, fileName, contentType string, data []byte) (fileID string, err error) {
	rec := dbmodels.ResumeFile{
		UserID:      userID,
		Name:        fileName,
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	rec.ID = uuid.NewString()
	fileID, err = i.filesStore.SaveFile(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to save resume metadata")
	}
	_, err = i.s3.PutObject(ctx, config.Conf.S3.BucketName, fileID,
		bytes.NewReader(data), rec.Size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to store resume blob")
	}
	return fileID, nil
}

func (i impl) GetResume(ctx context.Context, fileID string) (rec *dbmodels.ResumeFile, data []byte, err error) {
	rec, err = i.filesStore.GetByID(fileID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load resume metadata")
	}
	if rec == nil {
		return nil, nil, nil
	}
	obj, err := i.s3.GetObject(ctx, config.Conf.S3.BucketName, fileID, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load resume blob")
	}
	defer obj.Close()
	data, err = io.ReadAll(obj)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read resume blob")
	}
	return rec, data, nil
}

func (i impl) GetUserResume(ctx context.Context, userID string) (rec *dbmodels.ResumeFile, data []byte, err error) {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load user")
	}
	if user == nil || user.ResumeFileID == "" {
		return nil, nil, nil
	}
	return i.GetResume(ctx, user.ResumeFileID)
}
