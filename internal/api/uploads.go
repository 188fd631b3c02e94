package api

import (
	"io"
	"mime/multipart"
	"strings"
)

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func fileNameFromURL(rawURL string) string {
	if index := strings.LastIndex(rawURL, "/"); index >= 0 {
		return rawURL[index+1:]
	}
	return rawURL
}
