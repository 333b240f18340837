package storage

import (
	"io"
	"net/http"
	"studio/config"
)

type StorageAPI interface {
	GetFullPath(path string) string
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
	Exists(path string) bool
}

// Instance is the storage backing the uploads area. Disk by default,
// S3 if S3_BUCKET is configured.
var Instance StorageAPI

// ThumbName maps a stored image name to its thumbnail path.
func ThumbName(filename string) string {
	return "thumbs/" + filename
}

func Init() {
	if config.S3_BUCKET != "" {
		Instance = NewS3Storage(config.S3_BUCKET, config.S3_REGION, config.S3_AUTH)
		return
	}
	Instance = NewDiskStorage(config.UPLOAD_DIR)
}
