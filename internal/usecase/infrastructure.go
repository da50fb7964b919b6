package usecase

import "context"

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

type ResumesInfra interface {
	UploadResume(ctx context.Context, req *UploadResumeReq) (*UploadResumeRes, error)
	CleanupResume(key string)
}
