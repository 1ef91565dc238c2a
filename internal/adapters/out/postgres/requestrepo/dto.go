// Package requestrepo provides data transfer objects and mapping functions
// for vehicle request persistence.
package requestrepo

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/vehiclerequest"

	"github.com/google/uuid"
)

// VehicleRequestDTO represents the database structure for persisting vehicle
// requests. Requested items and the audit log are stored as JSON documents
// inside the request row, mirroring how orders persist theirs.
type VehicleRequestDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	DealerID  uuid.UUID `gorm:"type:uuid;index"`
	Items     []ItemDTO `gorm:"serializer:json"`
	Status    int       `gorm:"index"`
	CreatedAt time.Time
	Audit     []AuditEntryDTO `gorm:"serializer:json"`
}

// TableName specifies the database table name for vehicle requests.
func (VehicleRequestDTO) TableName() string {
	return "vehicle_requests"
}

// ItemDTO represents one requested position within the JSON items document.
type ItemDTO struct {
	Variant  string `json:"variant"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason,omitempty"`
}

// AuditEntryDTO represents one audit log entry within the JSON audit document.
type AuditEntryDTO struct {
	Action    string    `json:"action"`
	ActorRole string    `json:"actor_role"`
	ActorName string    `json:"actor_name"`
	At        time.Time `json:"at"`
	Note      string    `json:"note,omitempty"`
}

// fromDomain converts a vehicle request aggregate to its database representation.
func fromDomain(aggregate *vehiclerequest.VehicleRequest) VehicleRequestDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			Variant:  item.Variant(),
			Color:    item.Color(),
			Quantity: item.Quantity(),
			Reason:   item.Reason(),
		})
	}

	audit := aggregate.Audit()
	auditDTOs := make([]AuditEntryDTO, 0, len(audit))
	for _, entry := range audit {
		auditDTOs = append(auditDTOs, AuditEntryDTO{
			Action:    entry.Action(),
			ActorRole: entry.Actor().Role().String(),
			ActorName: entry.Actor().Name(),
			At:        entry.At(),
			Note:      entry.Note(),
		})
	}

	return VehicleRequestDTO{
		ID:        aggregate.ID().Bytes(),
		DealerID:  aggregate.DealerID().Bytes(),
		Items:     itemDTOs,
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
		Audit:     auditDTOs,
	}
}

// toDomain converts a database DTO back into a vehicle request aggregate.
func toDomain(dto VehicleRequestDTO) (*vehiclerequest.VehicleRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	dealerID, err := kernel.UUIDFromBytes(dto.DealerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]vehiclerequest.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := vehiclerequest.NewItem(itemDTO.Variant, itemDTO.Color, itemDTO.Quantity, itemDTO.Reason)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	audit := make([]kernel.AuditEntry, 0, len(dto.Audit))
	for _, entryDTO := range dto.Audit {
		role, roleErr := kernel.RoleFromString(entryDTO.ActorRole)
		if roleErr != nil {
			return nil, roleErr
		}

		actor, actorErr := kernel.NewActor(role, entryDTO.ActorName)
		if actorErr != nil {
			return nil, actorErr
		}

		entry, entryErr := kernel.NewAuditEntry(entryDTO.Action, actor, entryDTO.At, entryDTO.Note)
		if entryErr != nil {
			return nil, entryErr
		}
		audit = append(audit, entry)
	}

	return vehiclerequest.RestoreVehicleRequest(
		id,
		dealerID,
		items,
		vehiclerequest.Status(dto.Status),
		dto.CreatedAt,
		audit,
	)
}
