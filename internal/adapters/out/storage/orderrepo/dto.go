// Package orderrepo maps the order aggregate onto the orders and order_items tables.
package orderrepo

import (
	"time"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"
)

// OrderDTO is one row of the ledger. Seq is the insertion order and breaks ties
// between orders placed within the same instant.
type OrderDTO struct {
	Seq                 uint64         `gorm:"primaryKey;autoIncrement"`
	ID                  string         `gorm:"type:varchar(36);uniqueIndex;not null"`
	CustomerName        string         `gorm:"type:varchar(255);not null"`
	RestaurantName      string         `gorm:"type:varchar(255);not null"`
	PaymentMethod       string         `gorm:"type:varchar(16);not null"`
	Neighborhood        string         `gorm:"type:varchar(255);not null"`
	DeliveryFee         int            `gorm:"not null"`
	Total               int            `gorm:"not null"`
	Status              string         `gorm:"type:varchar(32);not null;index"`
	PrepTime            string         `gorm:"type:varchar(16)"`
	DriverID            string         `gorm:"type:varchar(64);index"`
	PlacedAt            time.Time      `gorm:"not null"`
	ConfirmationCode    string         `gorm:"type:char(4);not null"`
	IsDeletedByCustomer bool           `gorm:"not null;default:false"`
	Items               []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a cart line frozen at purchase time.
type OrderItemDTO struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	OrderID    string `gorm:"type:varchar(36);not null;index"`
	Position   int    `gorm:"not null"`
	MenuItemID string `gorm:"type:varchar(64);not null"`
	Name       string `gorm:"type:varchar(255);not null"`
	UnitPrice  int    `gorm:"not null"`
	Quantity   int    `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// mutableColumns are the only columns Update touches.
func mutableColumns() []string {
	return []string{"status", "prep_time", "driver_id", "is_deleted_by_customer"}
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for idx, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    o.ID().String(),
			Position:   idx,
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			UnitPrice:  item.UnitPrice(),
			Quantity:   item.Quantity(),
		})
	}

	return OrderDTO{
		ID:                  o.ID().String(),
		CustomerName:        o.CustomerName(),
		RestaurantName:      o.RestaurantName(),
		PaymentMethod:       o.PaymentMethod().String(),
		Neighborhood:        o.Neighborhood(),
		DeliveryFee:         o.DeliveryFee(),
		Total:               o.Total(),
		Status:              o.Status().String(),
		PrepTime:            o.PrepTime().String(),
		DriverID:            o.DriverID(),
		PlacedAt:            o.PlacedAt().UTC(),
		ConfirmationCode:    o.ConfirmationCode().String(),
		IsDeletedByCustomer: o.IsDeletedByCustomer(),
		Items:               items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	method, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	code, err := order.NewConfirmationCode(dto.ConfirmationCode)
	if err != nil {
		return nil, err
	}

	var prepTime order.PrepTime
	if dto.PrepTime != "" {
		if prepTime, err = order.NewPrepTime(dto.PrepTime); err != nil {
			return nil, err
		}
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.MenuItemID, itemDTO.Name, itemDTO.UnitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreParams{
		ID: id,
		Details: order.Details{
			CustomerName:   dto.CustomerName,
			RestaurantName: dto.RestaurantName,
			PaymentMethod:  method,
			Neighborhood:   dto.Neighborhood,
		},
		Items:               items,
		DeliveryFee:         dto.DeliveryFee,
		Total:               dto.Total,
		Status:              status,
		PrepTime:            prepTime,
		DriverID:            dto.DriverID,
		PlacedAt:            dto.PlacedAt.UTC(),
		ConfirmationCode:    code,
		IsDeletedByCustomer: dto.IsDeletedByCustomer,
	})
}
