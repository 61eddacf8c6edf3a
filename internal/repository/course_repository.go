package repository

import (
	"context"

	"github.com/minhhquann88/DoAn-sub001/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	FindByID(ctx context.Context, id uint) (*model.Course, error)
	Enroll(ctx context.Context, courseID, userID uint) error
	IsEnrolled(ctx context.Context, courseID, userID uint) (bool, error)
	EnrolledCount(ctx context.Context, courseID uint) (int64, error)
	OwnedCourseIDs(ctx context.Context, instructorID uint) ([]uint, error)
	EnrolledCourseIDs(ctx context.Context, userID uint) ([]uint, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) Enroll(ctx context.Context, courseID, userID uint) error {
	return r.db.WithContext(ctx).Create(&model.Enrollment{CourseID: courseID, UserID: userID}).Error
}

func (r *courseRepository) IsEnrolled(ctx context.Context, courseID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *courseRepository) EnrolledCount(ctx context.Context, courseID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}

func (r *courseRepository) OwnedCourseIDs(ctx context.Context, instructorID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.Course{}).
		Where("instructor_id = ?", instructorID).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *courseRepository) EnrolledCourseIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("user_id = ?", userID).
		Order("course_id").
		Pluck("course_id", &ids).Error
	return ids, err
}
