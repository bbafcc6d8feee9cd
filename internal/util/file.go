package util

import (
	"fmt"
	"net/http"
	"strings"
)

// CheckContent 嗅探前 512 字节，确认图片和 HTML 与声明的类型一致；其他类型不校验
func CheckContent(data []byte, contentType string) error {
	sniffed := http.DetectContentType(data)

	switch {
	case IsImage(contentType):
		if sniffed != contentType {
			return fmt.Errorf("content type mismatch: declared %s, detected %s", contentType, sniffed)
		}
	case strings.HasPrefix(contentType, "text/html"):
		if !strings.HasPrefix(sniffed, "text/html") {
			return fmt.Errorf("content type mismatch: declared %s, detected %s", contentType, sniffed)
		}
	}
	return nil
}

// IsImage 检测是否为图片
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}
