package usecase

import (
	"context"

	"tagtube/domain/dto"
	"tagtube/domain/model"
	"tagtube/domain/repository"
	"tagtube/infrastructure/logger"
	"tagtube/infrastructure/utils"
)

type IUserUsecase interface {
	// GetByTag returns repository.ErrUserNotFound for unknown tags.
	GetByTag(ctx context.Context, tag string) (model.User, error)
	// Save registers the tag or updates its location.
	Save(ctx context.Context, tag string, req dto.UserDataRequest) bool
}

type userUsecase struct {
	users repository.IUser
	audit repository.IAuditPublisher
}

func NewUserUsecase(users repository.IUser, audit repository.IAuditPublisher) IUserUsecase {
	return &userUsecase{users: users, audit: audit}
}

func (u *userUsecase) GetByTag(ctx context.Context, tag string) (model.User, error) {
	return u.users.GetByTag(ctx, tag)
}

func (u *userUsecase) Save(ctx context.Context, tag string, req dto.UserDataRequest) bool {
	city, region, country := req.Location()
	user := &model.User{
		Tag:     tag,
		City:    city,
		Region:  region,
		Country: country,
	}
	if err := u.users.Save(ctx, user); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"error": err, "tag": tag}).Error("Error while saving user")
		return false
	}

	publishAudit(ctx, u.audit, model.AuditEvent{
		Type:       model.AuditUserSaved,
		UserID:     user.ID,
		Tag:        user.Tag,
		OccurredAt: utils.GetCurrentTime(),
	})
	return true
}
