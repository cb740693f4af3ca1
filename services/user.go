package services

import "github.com/BelkinSergey/shareit-server/models"

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

type CreateUserInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func (s *UserService) Create(in CreateUserInput) (*models.User, error) {
	taken, err := s.users.EmailTaken(in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Conflict("email is already in use")
	}

	user := &models.User{Name: in.Name, Email: in.Email}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("user not found")
	}
	return user, nil
}

func (s *UserService) All() ([]models.User, error) {
	return s.users.All()
}

func (s *UserService) Update(id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		taken, err := s.users.EmailTaken(*in.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, Conflict("email is already in use")
		}
		user.Email = *in.Email
	}
	if in.Name != nil && *in.Name != "" {
		user.Name = *in.Name
	}

	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.users.Delete(id)
}
