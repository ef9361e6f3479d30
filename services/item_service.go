package services

import (
	"orderapi/entity"
	"orderapi/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ItemService struct {
	DB   *gorm.DB
	Repo *repository.ItemRepository
}

func NewItemService(db *gorm.DB, repo *repository.ItemRepository) *ItemService {
	return &ItemService{DB: db, Repo: repo}
}

type ItemIn struct {
	Name  string           `json:"name" binding:"required"`
	Price *decimal.Decimal `json:"price" binding:"required"`
}

func (s *ItemService) Create(in *ItemIn) (uint, error) {
	if in.Price.IsNegative() {
		return 0, ErrInvalidPrice
	}

	it := entity.Item{Name: in.Name, Price: *in.Price}
	if err := s.Repo.Insert(&it); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrItemNameTaken
		}
		return 0, err
	}
	return it.ID, nil
}

func (s *ItemService) Get(id uint) (*entity.Item, error) {
	it, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return it, nil
}

// Update changes name and price. Orders referencing the item pick up the new
// price on their next read.
func (s *ItemService) Update(id uint, in *ItemIn) error {
	if in.Price.IsNegative() {
		return ErrInvalidPrice
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)

		ok, err := repo.Exists(id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrItemNotFound
		}

		err = repo.Update(id, map[string]interface{}{"name": in.Name, "price": *in.Price})
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrItemNameTaken
		}
		return err
	})
}

func (s *ItemService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)

		ok, err := repo.Exists(id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrItemNotFound
		}

		used, err := repo.IsReferenced(id)
		if err != nil {
			return err
		}
		if used {
			return ErrItemInUse
		}

		if _, err := repo.Delete(id); err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return ErrItemInUse
			}
			return err
		}
		return nil
	})
}
