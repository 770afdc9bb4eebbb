package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

type AttachmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) repositories.AttachmentRepository {
	return &AttachmentRepositoryImpl{db: db}
}

func (r *AttachmentRepositoryImpl) Create(ctx context.Context, attachment *models.TaskAttachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

func (r *AttachmentRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.TaskAttachment, error) {
	var attachment models.TaskAttachment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&attachment).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (r *AttachmentRepositoryImpl) GetByTaskID(ctx context.Context, taskID uuid.UUID) ([]*models.TaskAttachment, error) {
	var attachments []*models.TaskAttachment
	err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Order("created_at DESC").Find(&attachments).Error
	return attachments, err
}

func (r *AttachmentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.TaskAttachment{}).Error
}
