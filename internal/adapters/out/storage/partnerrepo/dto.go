// Package partnerrepo persists the partner catalogue and menus.
package partnerrepo

import (
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/partner"
)

type PartnerDTO struct {
	Seq          uint64        `gorm:"primaryKey;autoIncrement"`
	ID           string        `gorm:"type:varchar(36);uniqueIndex;not null"`
	Name         string        `gorm:"type:varchar(255);not null"`
	Category     string        `gorm:"type:varchar(255)"`
	Rating       float64       `gorm:"not null;default:0"`
	DeliveryTime string        `gorm:"type:varchar(64)"`
	Landmark     string        `gorm:"type:varchar(255)"`
	Image        string        `gorm:"type:text"`
	Kind         string        `gorm:"type:varchar(16);not null"`
	Menu         []MenuItemDTO `gorm:"foreignKey:PartnerID;references:ID;constraint:OnDelete:CASCADE"`
}

func (PartnerDTO) TableName() string {
	return "partners"
}

type MenuItemDTO struct {
	Seq         uint64 `gorm:"primaryKey;autoIncrement"`
	PartnerID   string `gorm:"type:varchar(36);not null;index"`
	Position    int    `gorm:"not null"`
	ItemID      string `gorm:"type:varchar(64);not null"`
	Name        string `gorm:"type:varchar(255);not null"`
	Price       int    `gorm:"not null"`
	Description string `gorm:"type:text"`
	Image       string `gorm:"type:text"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(p *partner.Partner) PartnerDTO {
	profile := p.Profile()
	menu := make([]MenuItemDTO, 0, len(p.Menu()))
	for idx, item := range p.Menu() {
		menu = append(menu, MenuItemDTO{
			PartnerID:   p.ID().String(),
			Position:    idx,
			ItemID:      item.ID(),
			Name:        item.Name(),
			Price:       item.Price(),
			Description: item.Description(),
			Image:       item.Image(),
		})
	}

	return PartnerDTO{
		ID:           p.ID().String(),
		Name:         profile.Name,
		Category:     profile.Category,
		Rating:       profile.Rating,
		DeliveryTime: profile.DeliveryTime,
		Landmark:     profile.Landmark,
		Image:        profile.Image,
		Kind:         profile.Kind.String(),
		Menu:         menu,
	}
}

func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	kind, err := partner.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	menu := make([]partner.MenuItem, 0, len(dto.Menu))
	for _, itemDTO := range dto.Menu {
		item, itemErr := partner.NewMenuItem(itemDTO.ItemID, itemDTO.Name, itemDTO.Price, itemDTO.Description, itemDTO.Image)
		if itemErr != nil {
			return nil, itemErr
		}
		menu = append(menu, item)
	}

	return partner.NewPartner(id, partner.Profile{
		Name:         dto.Name,
		Category:     dto.Category,
		Rating:       dto.Rating,
		DeliveryTime: dto.DeliveryTime,
		Landmark:     dto.Landmark,
		Image:        dto.Image,
		Kind:         kind,
	}, menu)
}
