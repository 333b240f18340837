package handlers

import (
	"bytes"
	"errors"
	"log"
	"mime/multipart"

	"studio/config"
	"studio/storage"
	"studio/utils"
)

var errBadFilename = errors.New("unusable file name")

// saveUpload stores an uploaded image under a sanitized, collision-proof
// name, generates its thumbnail and returns the stored name. The file is
// written before the owning row is committed.
func saveUpload(header *multipart.FileHeader) (string, error) {
	name := utils.SanitizeFilename(header.Filename)
	if name == "" {
		return "", errBadFilename
	}
	stored := utils.Rand8BytesToBase62() + "_" + name

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	_, err = storage.Instance.Save(stored, src)
	src.Close()
	if err != nil {
		return "", err
	}

	// A failed thumbnail is not fatal, the original still gets served
	if src, err = header.Open(); err == nil {
		thumbBuf := bytes.Buffer{}
		if _, err = utils.CreateThumb(uint(config.THUMB_SIZE), src, &thumbBuf); err == nil {
			_, err = storage.Instance.Save(storage.ThumbName(stored), &thumbBuf)
		}
		if err != nil {
			log.Printf("Thumbnail for %s: %v", stored, err)
		}
		src.Close()
	}
	return stored, nil
}

// removeUpload deletes a stored image and its thumbnail, tolerating files
// that are already gone.
func removeUpload(filename string) {
	if filename == "" {
		return
	}
	for _, name := range []string{filename, storage.ThumbName(filename)} {
		if storage.Instance.Exists(name) {
			_ = storage.Instance.Delete(name)
		}
	}
}
