package util

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// xlsx 文件在 DetectContentType 下表现为 zip 或 octet-stream
var AllowedSpreadsheetTypes = []string{
	"application/zip",
	"application/octet-stream",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// ValidateMimeType 深度校验文件 MIME 类型
// allowedTypes: 允许的 MIME 前缀或完整类型
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}
