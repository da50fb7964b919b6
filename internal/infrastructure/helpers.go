package infrastructure

import "github.com/enertrics/storefront-backend/pkg/e"

// GetExtensionFromMIME возвращает расширение файла по MIME-типу резюме.
// Поддерживает pdf, doc, docx. Возвращает ошибку e.ErrUnsupportedMediaType для неподдерживаемых типов.
func GetExtensionFromMIME(mime string) (string, error) {
	switch mime {
	case "application/pdf":
		return "pdf", nil
	case "application/msword":
		return "doc", nil
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return "docx", nil
	default:
		return "bin", e.ErrUnsupportedMediaType
	}
}
