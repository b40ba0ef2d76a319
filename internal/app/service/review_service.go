package service

import (
	"errors"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/asiburrahmanprince/ecommerce/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
)

// CreateReviewInput links a customer's rating and comment to a product.
type CreateReviewInput struct {
	ProductID  uint
	CustomerID uint
	Rating     int
	Comment    string
}

// UpdateReviewInput carries the optional fields of a review update.
type UpdateReviewInput struct {
	Rating  *int
	Comment string
}

type ReviewService interface {
	List() ([]model.Review, error)
	GetByID(id uint) (*model.Review, error)
	Create(input CreateReviewInput) (*model.Review, error)
	Update(id uint, input UpdateReviewInput) (*model.Review, error)
	Delete(id uint) error
}

type reviewService struct {
	reviewRepo   repository.ReviewRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:   reviewRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

func (s *reviewService) List() ([]model.Review, error) {
	logger.Debug("Listing reviews")

	reviews, err := s.reviewRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list reviews", err)
		return nil, err
	}
	return reviews, nil
}

func (s *reviewService) GetByID(id uint) (*model.Review, error) {
	logger.Debug("Fetching review by ID", map[string]interface{}{
		"review_id": id,
	})

	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Review not found", map[string]interface{}{
				"review_id": id,
			})
			return nil, ErrReviewNotFound
		}
		logger.Error("Failed to fetch review", err, map[string]interface{}{
			"review_id": id,
		})
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Create(input CreateReviewInput) (*model.Review, error) {
	logger.Info("Creating review", map[string]interface{}{
		"product_id":  input.ProductID,
		"customer_id": input.CustomerID,
		"rating":      input.Rating,
	})

	if input.Rating < 1 || input.Rating > 5 {
		logger.Warn("Review creation failed: rating out of range", map[string]interface{}{
			"rating": input.Rating,
		})
		return nil, ErrInvalidRating
	}

	if _, err := s.productRepo.FindByID(input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Review creation failed: product not found", map[string]interface{}{
				"product_id": input.ProductID,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product for review", err, map[string]interface{}{
			"product_id": input.ProductID,
		})
		return nil, err
	}

	if _, err := s.customerRepo.FindByID(input.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Review creation failed: customer not found", map[string]interface{}{
				"customer_id": input.CustomerID,
			})
			return nil, ErrCustomerNotFound
		}
		logger.Error("Failed to fetch customer for review", err, map[string]interface{}{
			"customer_id": input.CustomerID,
		})
		return nil, err
	}

	review := &model.Review{
		ProductID:  input.ProductID,
		CustomerID: input.CustomerID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	logger.Info("Review created successfully", map[string]interface{}{
		"review_id":  review.ID,
		"product_id": review.ProductID,
	})

	return review, nil
}

func (s *reviewService) Update(id uint, input UpdateReviewInput) (*model.Review, error) {
	logger.Info("Updating review", map[string]interface{}{
		"review_id": id,
	})

	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Review not found for update", map[string]interface{}{
				"review_id": id,
			})
			return nil, ErrReviewNotFound
		}
		logger.Error("Failed to fetch review for update", err, map[string]interface{}{
			"review_id": id,
		})
		return nil, err
	}

	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			logger.Warn("Review update failed: rating out of range", map[string]interface{}{
				"review_id": id,
				"rating":    *input.Rating,
			})
			return nil, ErrInvalidRating
		}
		review.Rating = *input.Rating
	}
	if input.Comment != "" {
		review.Comment = input.Comment
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	logger.Info("Review updated successfully", map[string]interface{}{
		"review_id": review.ID,
	})

	return review, nil
}

func (s *reviewService) Delete(id uint) error {
	logger.Info("Deleting review", map[string]interface{}{
		"review_id": id,
	})

	if _, err := s.reviewRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Review not found for delete", map[string]interface{}{
				"review_id": id,
			})
			return ErrReviewNotFound
		}
		logger.Error("Failed to find review for delete", err, map[string]interface{}{
			"review_id": id,
		})
		return err
	}

	if err := s.reviewRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Review deleted successfully", map[string]interface{}{
		"review_id": id,
	})
	return nil
}
