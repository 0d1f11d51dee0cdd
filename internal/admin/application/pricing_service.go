package application

import (
	"context"
	"errors"
	"strings"
	"time"

	admindomain "github.com/solvia-mx/solvia-services/api/internal/admin/domain"
)

type pricingService struct {
	repo PriceItemRepository
}

func NewPricingService(repo PriceItemRepository) PricingService {
	return &pricingService{repo: repo}
}

func (s *pricingService) List(ctx context.Context, filter PriceItemFilter, paging Paging) ([]admindomain.PriceItem, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *pricingService) Detail(ctx context.Context, id string) (*admindomain.PriceItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *pricingService) Create(ctx context.Context, cmd UpsertPriceItemCommand) (*admindomain.PriceItem, error) {
	item, err := buildPriceItemFromCommand("", cmd)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *pricingService) Update(ctx context.Context, id string, cmd UpsertPriceItemCommand) (*admindomain.PriceItem, error) {
	item, err := buildPriceItemFromCommand(id, cmd)
	if err != nil {
		return nil, err
	}
	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func buildPriceItemFromCommand(id string, cmd UpsertPriceItemCommand) (*admindomain.PriceItem, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, errors.New("price item name is required")
	}
	key := strings.TrimSpace(cmd.Key)
	if key == "" {
		return nil, errors.New("price item key is required")
	}
	price, err := admindomain.NewMoney(cmd.UnitPrice)
	if err != nil {
		return nil, err
	}
	currency := strings.TrimSpace(cmd.Currency)
	if currency == "" {
		currency = "MXN"
	}

	return &admindomain.PriceItem{
		ID:          id,
		Key:         key,
		Name:        name,
		Description: strings.TrimSpace(cmd.Description),
		Category:    strings.TrimSpace(cmd.Category),
		UnitPrice:   price,
		Currency:    currency,
		Active:      cmd.Active,
	}, nil
}
