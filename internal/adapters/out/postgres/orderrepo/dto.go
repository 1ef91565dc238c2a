// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order domain
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and the audit log are stored as JSON documents inside the order
// row: they are only ever read and written through the aggregate, never
// queried relationally on their own.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;index"`
	DealerID      uuid.UUID       `gorm:"type:uuid;index"`
	Items         []ItemDTO       `gorm:"serializer:json"`
	Total         int64
	PaymentMethod int
	Status        int `gorm:"index"`
	CreatedAt     time.Time
	Audit         []AuditEntryDTO `gorm:"serializer:json"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line item within the JSON items document.
type ItemDTO struct {
	Variant   string `json:"variant"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// AuditEntryDTO represents one audit log entry within the JSON audit document.
// The actor is flattened into role and name columns of the document.
type AuditEntryDTO struct {
	Action    string    `json:"action"`
	ActorRole string    `json:"actor_role"`
	ActorName string    `json:"actor_name"`
	At        time.Time `json:"at"`
	Note      string    `json:"note,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		DealerID:      aggregate.DealerID().Bytes(),
		Items:         itemsFromDomain(aggregate.Items()),
		Total:         aggregate.Total(),
		PaymentMethod: int(aggregate.PaymentMethod()),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		Audit:         auditFromDomain(aggregate.Audit()),
	}
}

// toDomain converts a database DTO back into an order domain aggregate,
// reconstructing the complete aggregate through RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	dealerID, err := kernel.UUIDFromBytes(dto.DealerID[:])
	if err != nil {
		return nil, err
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	audit, err := auditToDomain(dto.Audit)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		dealerID,
		items,
		kernel.PaymentMethod(dto.PaymentMethod),
		order.Status(dto.Status),
		dto.CreatedAt,
		audit,
	)
}

func itemsFromDomain(items []order.Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ItemDTO{
			Variant:   item.Variant(),
			Color:     item.Color(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}
	return dtos
}

func itemsToDomain(dtos []ItemDTO) ([]order.Item, error) {
	items := make([]order.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := order.NewItem(dto.Variant, dto.Color, dto.Quantity, dto.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func auditFromDomain(audit []kernel.AuditEntry) []AuditEntryDTO {
	dtos := make([]AuditEntryDTO, 0, len(audit))
	for _, entry := range audit {
		dtos = append(dtos, AuditEntryDTO{
			Action:    entry.Action(),
			ActorRole: entry.Actor().Role().String(),
			ActorName: entry.Actor().Name(),
			At:        entry.At(),
			Note:      entry.Note(),
		})
	}
	return dtos
}

func auditToDomain(dtos []AuditEntryDTO) ([]kernel.AuditEntry, error) {
	audit := make([]kernel.AuditEntry, 0, len(dtos))
	for _, dto := range dtos {
		role, err := kernel.RoleFromString(dto.ActorRole)
		if err != nil {
			return nil, err
		}

		actor, err := kernel.NewActor(role, dto.ActorName)
		if err != nil {
			return nil, err
		}

		entry, err := kernel.NewAuditEntry(dto.Action, actor, dto.At, dto.Note)
		if err != nil {
			return nil, err
		}
		audit = append(audit, entry)
	}
	return audit, nil
}
