package domain

// Resume описывает файл резюме, который хранится в S3
type Resume struct {
	ID        string // uuid
	Bucket    string
	ObjectKey string
	Bytes     []byte
	// Передайте значение -1 в Size, если размер потока неизвестен
	// (внимание: при передаче значения -1 будет выделен большой объем памяти).
	Size     *int64
	MimeType *string // Example: "application/pdf"
}

func NewResume(id string, bucket string, objectKey string, data []byte, size *int64, mimeType *string) *Resume {
	return &Resume{
		ID:        id,
		Bucket:    bucket,
		ObjectKey: objectKey,
		Bytes:     data,
		Size:      size,
		MimeType:  mimeType,
	}
}
