package interfaces

import "context"

//go:generate mockgen -source=media_store_interface.go -destination=mocks/mock_media_store.go -package=mock_interfaces

// IMediaStore abstracts blob storage for photos and videos (e.g. S3).
//
// It accepts bytes and returns an opaque reference that is stored on the job.
type IMediaStore interface {
	Put(ctx context.Context, jobID, filename, contentType string, data []byte) (mediaRef string, err error)
}
