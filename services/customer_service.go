package services

import (
	"orderapi/entity"
	"orderapi/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CustomerService struct {
	DB   *gorm.DB
	Repo *repository.CustomerRepository
}

func NewCustomerService(db *gorm.DB, repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{DB: db, Repo: repo}
}

// ----- DTOs from Controller -----
type CustomerIn struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

func (s *CustomerService) Create(in *CustomerIn) (uint, error) {
	c := entity.Customer{Name: in.Name, Phone: in.Phone}
	if err := s.Repo.Insert(&c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrPhoneTaken
		}
		return 0, err
	}
	return c.ID, nil
}

func (s *CustomerService) Get(id uint) (*entity.Customer, error) {
	c, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) Update(id uint, in *CustomerIn) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)

		ok, err := repo.Exists(id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCustomerNotFound
		}

		err = repo.Update(id, map[string]interface{}{"name": in.Name, "phone": in.Phone})
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrPhoneTaken
		}
		return err
	})
}

// Delete refuses to remove a customer that orders still point at.
func (s *CustomerService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)

		ok, err := repo.Exists(id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCustomerNotFound
		}

		busy, err := repo.HasOrders(id)
		if err != nil {
			return err
		}
		if busy {
			return ErrCustomerInUse
		}

		if _, err := repo.Delete(id); err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return ErrCustomerInUse
			}
			return err
		}
		return nil
	})
}
