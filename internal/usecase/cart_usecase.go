package usecase

import (
	"context"
	"sync"

	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/logger"
)

// CartStore — единственный источник правды о содержимом корзин.
// Состояние в памяти первично: каждая мутация сначала применяется к копии
// в памяти и только затем сохраняется в хранилище. Ошибка сохранения не
// портит состояние в памяти и не видна вызывающему — в худшем случае корзина
// окажется пустой после перезапуска. Конкурентная запись одной корзины из
// двух клиентов не сливается: побеждает последняя запись.
type CartStore struct {
	storage CartStorage
	logger  logger.Logger

	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewCartStore(storage CartStorage, logger logger.Logger) *CartStore {
	return &CartStore{
		storage: storage,
		logger:  logger,
		carts:   make(map[string]*domain.Cart),
	}
}

// GetCart возвращает снимок корзины, поднимая ее из хранилища при первом обращении.
func (s *CartStore) GetCart(ctx context.Context, cartID string) *CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return NewCartSnapshot(s.getOrLoad(ctx, cartID))
}

// AddItem добавляет строку в корзину и сохраняет обновленный список строк.
func (s *CartStore) AddItem(ctx context.Context, cartID string, req *AddItemReq) *CartSnapshot {
	var variant *domain.LineVariant
	if req.Variant != nil {
		variant = &domain.LineVariant{
			ID:         req.Variant.ID,
			Name:       req.Variant.Name,
			PriceCents: req.Variant.PriceCents,
		}
	}

	return s.mutate(ctx, cartID, func(cart *domain.Cart) {
		cart.AddItem(domain.LineItem{
			ProductID:  req.ProductID,
			Title:      req.Title,
			PriceCents: req.PriceCents,
			Quantity:   req.Quantity,
			Image:      req.Image,
			Variant:    variant,
		})
	})
}

// RemoveItem удаляет строку корзины. Неизвестный идентификатор — no-op.
func (s *CartStore) RemoveItem(ctx context.Context, cartID string, lineID string) *CartSnapshot {
	return s.mutate(ctx, cartID, func(cart *domain.Cart) {
		cart.RemoveItem(lineID)
	})
}

// UpdateQuantity заменяет количество в строке; количество <= 0 удаляет строку.
func (s *CartStore) UpdateQuantity(ctx context.Context, cartID string, lineID string, quantity int) *CartSnapshot {
	return s.mutate(ctx, cartID, func(cart *domain.Cart) {
		cart.UpdateQuantity(lineID, quantity)
	})
}

// ClearCart опустошает корзину и сохраняет пустой список.
func (s *CartStore) ClearCart(ctx context.Context, cartID string) *CartSnapshot {
	return s.mutate(ctx, cartID, func(cart *domain.Cart) {
		cart.Clear()
	})
}

// OpenCart показывает панель корзины. Флаг не сохраняется в хранилище.
func (s *CartStore) OpenCart(ctx context.Context, cartID string) *CartSnapshot {
	return s.setOpen(ctx, cartID, func(cart *domain.Cart) { cart.Open() })
}

// CloseCart скрывает панель корзины.
func (s *CartStore) CloseCart(ctx context.Context, cartID string) *CartSnapshot {
	return s.setOpen(ctx, cartID, func(cart *domain.Cart) { cart.Close() })
}

// ToggleCart переключает видимость панели корзины.
func (s *CartStore) ToggleCart(ctx context.Context, cartID string) *CartSnapshot {
	return s.setOpen(ctx, cartID, func(cart *domain.Cart) { cart.Toggle() })
}

// mutate применяет переход состояния и затем сохраняет список строк.
func (s *CartStore) mutate(ctx context.Context, cartID string, fn func(cart *domain.Cart)) *CartSnapshot {
	s.mu.Lock()
	cart := s.getOrLoad(ctx, cartID)
	fn(cart)
	snapshot := NewCartSnapshot(cart)
	s.mu.Unlock()

	s.persist(ctx, cartID, snapshot.Items)

	return snapshot
}

// setOpen мутирует только UI-флаг, без обращения к хранилищу.
func (s *CartStore) setOpen(ctx context.Context, cartID string, fn func(cart *domain.Cart)) *CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.getOrLoad(ctx, cartID)
	fn(cart)

	return NewCartSnapshot(cart)
}

// getOrLoad возвращает корзину из памяти, при первом обращении поднимая ее
// из хранилища. Любая ошибка загрузки деградирует до пустой корзины.
// Вызывается только под s.mu.
func (s *CartStore) getOrLoad(ctx context.Context, cartID string) *domain.Cart {
	if cart, ok := s.carts[cartID]; ok {
		return cart
	}

	cart := domain.NewCart()
	items, err := s.storage.Load(ctx, cartID)
	if err != nil {
		s.logger.Warnf("Cart load failed, falling back to empty cart. cart_id: %s, error: %v",
			cartID, e.Wrap("CartStore.getOrLoad", err))
	} else if items != nil {
		cart.Items = items
	}

	s.carts[cartID] = cart
	return cart
}

// persist сохраняет список строк без повторных попыток: следующая мутация
// сама перезапишет состояние целиком.
func (s *CartStore) persist(ctx context.Context, cartID string, items []domain.LineItem) {
	if err := s.storage.Save(ctx, cartID, items); err != nil {
		s.logger.Warnf("Cart persist failed, continuing in memory. cart_id: %s, error: %v",
			cartID, e.Wrap("CartStore.persist", err))
	}
}
