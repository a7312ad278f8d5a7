package usecase

import (
	"tasksahead/model"
	"tasksahead/repository"
)

type UserService struct {
	users *repository.UsersRepo
}

func NewUserService(users *repository.UsersRepo) *UserService {
	return &UserService{users: users}
}

func (svc *UserService) GetUser(userID string) (*model.User, error) {
	user := svc.users.GetUser(userID)
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// UpdateSettings changes display preferences only. Streak fields are out of
// reach of this path by construction.
func (svc *UserService) UpdateSettings(userID string, updates *model.SettingsUpdate) (*model.User, error) {
	user := svc.users.UpdateSettings(userID, updates)
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
