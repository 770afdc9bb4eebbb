package serviceimpl

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"taskhub/domain/models"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

type attachmentService struct {
	attachmentRepo repositories.AttachmentRepository
	taskRepo       repositories.TaskRepository
	storage        ports.StoragePort
}

func NewAttachmentService(
	attachmentRepo repositories.AttachmentRepository,
	taskRepo repositories.TaskRepository,
	storage ports.StoragePort,
) services.AttachmentService {
	return &attachmentService{
		attachmentRepo: attachmentRepo,
		taskRepo:       taskRepo,
		storage:        storage,
	}
}

func (s *attachmentService) Upload(ctx context.Context, taskID uuid.UUID, fileName, contentType string, size int64, reader io.Reader) (*models.TaskAttachment, error) {
	exists, err := s.taskRepo.ExistsByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.ErrTaskNotFound
	}

	key := objectKey(taskID, fileName)

	if err := s.storage.Upload(ctx, key, reader, size, contentType); err != nil {
		return nil, err
	}

	attachment := &models.TaskAttachment{
		ID:          uuid.New(),
		TaskID:      taskID,
		FileName:    fileName,
		ObjectKey:   key,
		ContentType: contentType,
		Size:        size,
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		// Avoid orphaned blobs when the record cannot be written.
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			logger.Warn("Failed to clean up orphaned attachment blob", "key", key, "error", delErr)
		}
		return nil, err
	}

	return attachment, nil
}

func (s *attachmentService) ListForTask(ctx context.Context, taskID uuid.UUID) ([]*models.TaskAttachment, error) {
	return s.attachmentRepo.GetByTaskID(ctx, taskID)
}

func (s *attachmentService) Delete(ctx context.Context, attachmentID uuid.UUID) error {
	attachment, err := s.attachmentRepo.GetByID(ctx, attachmentID)
	if err != nil {
		return err
	}

	if err := s.attachmentRepo.Delete(ctx, attachmentID); err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, attachment.ObjectKey); err != nil {
		logger.Warn("Failed to delete attachment blob", "key", attachment.ObjectKey, "error", err)
	}

	return nil
}

func (s *attachmentService) URL(attachment *models.TaskAttachment) string {
	return s.storage.URL(attachment.ObjectKey)
}

// objectKey builds a collision-resistant storage key that keeps the original
// name readable.
func objectKey(taskID uuid.UUID, fileName string) string {
	ext := filepath.Ext(fileName)
	base := strings.TrimSuffix(fileName, ext)
	return fmt.Sprintf("tasks/%s/%s-%s%s", taskID, slug.Make(base), utils.GenerateRandomString(8), strings.ToLower(ext))
}
