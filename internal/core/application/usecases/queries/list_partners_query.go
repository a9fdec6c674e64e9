package queries

import (
	"context"
	"errors"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/partner"
	"mozdelivery/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListPartnersQueryIsNotConstructed = errors.New(
	"ListPartnersQuery must be created via NewListPartnersQuery constructor",
)

// ListPartnersQuery lists the catalogue in registration order. A non-zero kind keeps
// only partners of that kind.
type ListPartnersQuery struct {
	kind partner.Kind

	guard guard.ConstructorGuard
}

func NewListPartnersQuery(kind partner.Kind) (ListPartnersQuery, error) {
	if kind != partner.UnknownKind {
		if err := kind.Validate(); err != nil {
			return ListPartnersQuery{}, err
		}
	}
	return ListPartnersQuery{kind: kind, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPartnersQuery) Validate() error {
	return q.guard.Validate(ErrListPartnersQueryIsNotConstructed)
}

type MenuItemResponse struct {
	ID          string
	Name        string
	Price       int
	Description string
	Image       string
}

type PartnerResponse struct {
	ID           kernel.UUID
	Name         string
	Category     string
	Rating       float64
	DeliveryTime string
	Landmark     string
	Image        string
	Kind         partner.Kind
	Menu         []MenuItemResponse
}

type ListPartnersQueryHandler struct {
	db *gorm.DB
}

func NewListPartnersQueryHandler(db *gorm.DB) ListPartnersQueryHandler {
	return ListPartnersQueryHandler{db: db}
}

func (h ListPartnersQueryHandler) Handle(ctx context.Context, query ListPartnersQuery) ([]PartnerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			category,
			rating,
			delivery_time,
			landmark,
			image,
			kind
		FROM partners`
	var args []any
	if query.kind != partner.UnknownKind {
		sql += "\n\t\tWHERE kind = ?"
		args = append(args, query.kind.String())
	}
	sql += "\n\t\tORDER BY seq"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := make([]PartnerResponse, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			p    PartnerResponse
			id   string
			kind string
		)
		if err = rows.Scan(&id, &p.Name, &p.Category, &p.Rating, &p.DeliveryTime, &p.Landmark, &p.Image, &kind); err != nil {
			return nil, err
		}
		if p.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		if p.Kind, err = partner.KindFromString(kind); err != nil {
			return nil, err
		}
		p.Menu = []MenuItemResponse{}
		index[id] = len(partners)
		partners = append(partners, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(partners) == 0 {
		return partners, nil
	}

	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	menuRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			partner_id,
			item_id,
			name,
			price,
			description,
			image
		FROM menu_items
		WHERE partner_id IN ?
		ORDER BY partner_id, position
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer menuRows.Close()

	for menuRows.Next() {
		var (
			partnerID string
			item      MenuItemResponse
		)
		if err = menuRows.Scan(&partnerID, &item.ID, &item.Name, &item.Price, &item.Description, &item.Image); err != nil {
			return nil, err
		}
		if idx, ok := index[partnerID]; ok {
			partners[idx].Menu = append(partners[idx].Menu, item)
		}
	}
	if err = menuRows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}
