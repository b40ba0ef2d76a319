package service

import (
	"errors"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/asiburrahmanprince/ecommerce/pkg/logger"
	"github.com/asiburrahmanprince/ecommerce/pkg/util"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// UpdateUserInput carries the optional fields of a user update. Empty
// strings and nil pointers leave the stored value unchanged.
type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
	IsActive *bool
}

type UserService interface {
	List() ([]model.User, error)
	GetByID(id uint) (*model.User, error)
	Create(name, email, password string, role model.UserRole) (*model.User, error)
	Update(id uint, input UpdateUserInput) (*model.User, error)
	Delete(id uint) error
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository) UserService {
	return &userService{db: db, userRepo: userRepo}
}

func (s *userService) List() ([]model.User, error) {
	logger.Debug("Listing users")

	users, err := s.userRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list users", err)
		return nil, err
	}
	return users, nil
}

func (s *userService) GetByID(id uint) (*model.User, error) {
	logger.Debug("Fetching user by ID", map[string]interface{}{
		"user_id": id,
	})

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("User not found", map[string]interface{}{
				"user_id": id,
			})
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to fetch user", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}
	return user, nil
}

// Create mirrors the registration flow without issuing tokens: the user row
// and, for shopkeeper and customer roles, the profile row are written
// in one transaction.
func (s *userService) Create(name, email, password string, role model.UserRole) (*model.User, error) {
	logger.Info("Creating user", map[string]interface{}{
		"email": email,
		"name":  name,
		"role":  role,
	})

	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	if err := s.checkEmailAvailable(email, 0); err != nil {
		return nil, err
	}
	if err := s.checkNameAvailable(name, 0); err != nil {
		return nil, err
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin user creation transaction", tx.Error, map[string]interface{}{
			"email": email,
		})
		return nil, tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Transaction rolled back due to panic during user creation", nil, map[string]interface{}{
				"email": email,
				"panic": r,
			})
		}
	}()

	if err := tx.Create(user).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}

	switch role {
	case model.RoleShopkeeper:
		shopkeeper := &model.Shopkeeper{UserID: user.ID}
		if err := tx.Create(shopkeeper).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to create shopkeeper profile", err, map[string]interface{}{
				"user_id": user.ID,
			})
			return nil, err
		}
		user.Shopkeeper = shopkeeper
	case model.RoleCustomer:
		customer := &model.Customer{UserID: user.ID}
		if err := tx.Create(customer).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to create customer profile", err, map[string]interface{}{
				"user_id": user.ID,
			})
			return nil, err
		}
		user.Customer = customer
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to commit user creation transaction", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}

	logger.Info("User created successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
		"role":    role,
	})

	return user, nil
}

func (s *userService) Update(id uint, input UpdateUserInput) (*model.User, error) {
	logger.Info("Updating user", map[string]interface{}{
		"user_id": id,
	})

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("User not found for update", map[string]interface{}{
				"user_id": id,
			})
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to fetch user for update", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}

	if input.Email != "" && input.Email != user.Email {
		if err := s.checkEmailAvailable(input.Email, id); err != nil {
			return nil, err
		}
		user.Email = input.Email
	}
	if input.Name != "" && input.Name != user.Name {
		if err := s.checkNameAvailable(input.Name, id); err != nil {
			return nil, err
		}
		user.Name = input.Name
	}
	if input.Password != "" {
		hashedPassword, err := util.HashPassword(input.Password)
		if err != nil {
			logger.Error("Failed to hash password for update", err, map[string]interface{}{
				"user_id": id,
			})
			return nil, err
		}
		user.PasswordHash = hashedPassword
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(user); err != nil {
		logger.Error("Failed to update user", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}

	logger.Info("User updated successfully", map[string]interface{}{
		"user_id": user.ID,
	})

	return user, nil
}

// Delete removes a user together with its shopkeeper or customer
// specialization and everything hanging off that specialization.
func (s *userService) Delete(id uint) error {
	logger.Info("Deleting user", map[string]interface{}{
		"user_id": id,
	})

	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("User not found for delete", map[string]interface{}{
				"user_id": id,
			})
			return ErrUserNotFound
		}
		logger.Error("Failed to find user for delete", err, map[string]interface{}{
			"user_id": id,
		})
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin user deletion transaction", tx.Error, map[string]interface{}{
			"user_id": id,
		})
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Transaction rolled back due to panic during user deletion", nil, map[string]interface{}{
				"user_id": id,
				"panic":   r,
			})
		}
	}()

	if err := deleteUserCascade(tx, id); err != nil {
		tx.Rollback()
		logger.Error("Failed to delete user", err, map[string]interface{}{
			"user_id": id,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to commit user deletion transaction", err, map[string]interface{}{
			"user_id": id,
		})
		return err
	}

	logger.Info("User and related data deleted successfully", map[string]interface{}{
		"user_id": id,
	})
	return nil
}

func (s *userService) checkEmailAvailable(email string, excludeID uint) error {
	existing, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing email", err, map[string]interface{}{
			"email": email,
		})
		return err
	}
	if existing != nil && existing.ID != excludeID {
		logger.Warn("Email already exists", map[string]interface{}{
			"email": email,
		})
		return ErrEmailAlreadyExists
	}
	return nil
}

func (s *userService) checkNameAvailable(name string, excludeID uint) error {
	existing, err := s.userRepo.FindByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing name", err, map[string]interface{}{
			"name": name,
		})
		return err
	}
	if existing != nil && existing.ID != excludeID {
		logger.Warn("Name already exists", map[string]interface{}{
			"name": name,
		})
		return ErrNameAlreadyExists
	}
	return nil
}
