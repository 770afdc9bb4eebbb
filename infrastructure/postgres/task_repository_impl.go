package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) GetByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Preload("User").Where("status = ?", status).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) GetByPriority(ctx context.Context, priority string) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Preload("User").Where("priority = ?", priority).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) SearchByTitle(ctx context.Context, title string) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Preload("User").Where("title ILIKE ?", "%"+title+"%").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) GetByDeadline(ctx context.Context, date time.Time) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Preload("User").Where("deadline = ?", date.Format("2006-01-02")).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) GetByUserAndStatus(ctx context.Context, userID uuid.UUID, status models.TaskStatus) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("user_id = ? AND status = ?", userID, status).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) GetByUserAndStatusAndCompletedBetween(ctx context.Context, userID uuid.UUID, status models.TaskStatus, start, end time.Time) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND completed_at >= ? AND completed_at < ?", userID, status, start, end).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) CountByUserIDAndStatus(ctx context.Context, userID uuid.UUID, status models.TaskStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("user_id = ? AND status = ?", userID, status).Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*models.Task, int64, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Preload("User").
		Order("deadline DESC").Offset(offset).Limit(limit).Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Task{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	return tasks, count, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	// Save writes all fields, including nil CompletedAt when a task leaves
	// COMPLETED.
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{}).Error
}

func (r *TaskRepositoryImpl) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
