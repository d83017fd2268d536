package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports/mocks"
	"github.com/Gunvolt24/seafood-shop/internal/usecase"
	"github.com/Gunvolt24/seafood-shop/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func draftOrder() *domain.Order {
	return &domain.Order{
		CustomerName: " Иван ",
		Phone:        "8 (916) 123-45-67",
		Address:      "Москва",
		Payment:      domain.PaymentCash,
		Items: []domain.OrderLine{
			{ProductID: "p1", Name: "client name", Price: decimal.NewFromInt(1), Quantity: 2},
		},
	}
}

func catalogWith(products ...domain.Product) *domain.CatalogResult {
	return &domain.CatalogResult{Catalog: &domain.Catalog{Products: products, Total: len(products)}}
}

func TestSubmit_RepricesValidatesAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockCatalogReadService(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)

	reader.EXPECT().GetCatalog(gomock.Any()).
		Return(catalogWith(domain.Product{ID: "p1", Name: "Сёмга", Price: decimal.NewFromInt(890)}), nil)
	publisher.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).Return(nil)

	svc := usecase.NewOrderService(reader, validate.NewOrderValidator(), publisher, noopLogger{}, usecase.DefaultDeliveryFee)

	o, err := svc.Submit(context.Background(), draftOrder())
	require.NoError(t, err)
	require.NotEmpty(t, o.ID)
	require.Equal(t, "+79161234567", o.Phone)
	require.Equal(t, "Иван", o.CustomerName)
	require.Equal(t, "Сёмга", o.Items[0].Name)
	require.True(t, o.Subtotal.Equal(decimal.NewFromInt(1780)), o.Subtotal.String())
	require.True(t, o.Total.Equal(decimal.NewFromInt(2080)), o.Total.String())
	require.WithinDuration(t, time.Now(), o.SubmittedAt, time.Minute)
}

func TestSubmit_UnknownProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockCatalogReadService(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)

	reader.EXPECT().GetCatalog(gomock.Any()).Return(catalogWith(), nil)
	publisher.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewOrderService(reader, validate.NewOrderValidator(), publisher, noopLogger{}, usecase.DefaultDeliveryFee)

	_, err := svc.Submit(context.Background(), draftOrder())
	require.ErrorIs(t, err, validate.ErrInvalidOrder)
}

func TestSubmit_ChangeMustExceedTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockEventPublisher(ctrl)
	publisher.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewOrderService(nil, validate.NewOrderValidator(), publisher, noopLogger{}, usecase.DefaultDeliveryFee)

	o := draftOrder()
	o.NeedChange = true
	change := decimal.NewFromInt(302) // итого 302
	o.ChangeAmount = &change

	_, err := svc.Submit(context.Background(), o)
	require.ErrorIs(t, err, validate.ErrInvalidOrder)
	require.ErrorContains(t, err, "сдачи")
}

func TestSubmit_EmptyOrderRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockEventPublisher(ctrl)

	svc := usecase.NewOrderService(nil, validate.NewOrderValidator(), publisher, noopLogger{}, usecase.DefaultDeliveryFee)

	o := draftOrder()
	o.Items = nil
	_, err := svc.Submit(context.Background(), o)
	require.ErrorIs(t, err, validate.ErrInvalidOrder)
}

func TestSubmit_PublishFailureStillAccepts(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockEventPublisher(ctrl)
	publisher.EXPECT().PublishOrder(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	svc := usecase.NewOrderService(nil, validate.NewOrderValidator(), publisher, noopLogger{}, usecase.DefaultDeliveryFee)

	o := draftOrder()
	o.Payment = domain.PaymentCard
	got, err := svc.Submit(context.Background(), o)
	require.NoError(t, err)
	require.True(t, got.Total.Equal(decimal.NewFromInt(302)))
}

func TestSubmit_CatalogError(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockCatalogReadService(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)
	reader.EXPECT().GetCatalog(gomock.Any()).Return(nil, usecase.ErrStoreQuery)

	svc := usecase.NewOrderService(reader, validate.NewOrderValidator(), publisher, noopLogger{}, usecase.DefaultDeliveryFee)

	_, err := svc.Submit(context.Background(), draftOrder())
	require.ErrorIs(t, err, usecase.ErrStoreQuery)
}
