package utils

import (
	"time"

	"github.com/arjun-dev/shopsphere/models"
	"gorm.io/gorm"
)

// PromotionItemView is a promotion line joined to its product snapshot.
// Product is nil when the referenced product no longer resolves; the item's
// own ProductName and OverridePrice still drive the display, and
// OverridePrice is always authoritative over the product's price.
type PromotionItemView struct {
	ID            uint            `json:"id"`
	ProductID     *uint           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	OverridePrice float64         `json:"override_price"`
	Product       *models.Product `json:"product"`
}

// PromotionView is the composed promotion graph returned to the storefront.
// IsActive is the row's stored flag, not whether the row was selected: the
// fallback promotion may report false.
type PromotionView struct {
	ID        uint                `json:"id"`
	Name      string              `json:"name"`
	StartDate time.Time           `json:"start_date"`
	EndDate   time.Time           `json:"end_date"`
	Template  string              `json:"template"`
	Config    string              `json:"config"`
	IsActive  bool                `json:"is_active"`
	Items     []PromotionItemView `json:"items"`
}

// ResolveCurrentPromotion selects the promotion to display right now and
// resolves its items against the catalog. No promotion rows at all yields
// (nil, nil). Runs fresh per request; nothing is cached.
func ResolveCurrentPromotion(db *gorm.DB, now time.Time) (*PromotionView, error) {
	var promotions []models.Promotion
	if err := db.Find(&promotions).Error; err != nil {
		return nil, err
	}

	selected := selectPromotion(promotions, now)
	if selected == nil {
		return nil, nil
	}

	var items []models.PromotionItem
	if err := db.Where("promotion_id = ?", selected.ID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	productIDs := make([]uint, 0, len(items))
	for _, item := range items {
		if item.ProductID != nil {
			productIDs = append(productIDs, *item.ProductID)
		}
	}
	var products []models.Product
	if len(productIDs) > 0 {
		if err := db.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			return nil, err
		}
	}

	view := &PromotionView{
		ID:        selected.ID,
		Name:      selected.Name,
		StartDate: selected.StartDate,
		EndDate:   selected.EndDate,
		Template:  selected.Template,
		Config:    selected.Config,
		IsActive:  selected.IsActive,
		Items:     attachProducts(items, products),
	}
	return view, nil
}

// selectPromotion picks the single promotion to show. Among promotions active
// on the given day the most recently started wins, with the higher id
// breaking exact-date ties (assumed newer). With no qualifier the most
// recently created promotion overall is kept for display continuity, its
// stored IsActive flag untouched.
func selectPromotion(promotions []models.Promotion, now time.Time) *models.Promotion {
	var best *models.Promotion
	for i := range promotions {
		p := &promotions[i]
		if !promotionActiveOn(p, now) {
			continue
		}
		if best == nil || laterStart(p, best) {
			best = p
		}
	}
	if best != nil {
		return best
	}

	// Fallback: highest id wins regardless of activity window.
	for i := range promotions {
		p := &promotions[i]
		if best == nil || p.ID > best.ID {
			best = p
		}
	}
	return best
}

// promotionActiveOn applies the date-only, both-ends-inclusive window check.
func promotionActiveOn(p *models.Promotion, now time.Time) bool {
	if !p.IsActive {
		return false
	}
	today := dateOnly(now)
	return !dateOnly(p.StartDate).After(today) && !dateOnly(p.EndDate).Before(today)
}

func laterStart(a, b *models.Promotion) bool {
	aStart, bStart := dateOnly(a.StartDate), dateOnly(b.StartDate)
	if !aStart.Equal(bStart) {
		return aStart.After(bStart)
	}
	return a.ID > b.ID
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// attachProducts joins fetched product rows onto promotion items in memory,
// preserving item order.
func attachProducts(items []models.PromotionItem, products []models.Product) []PromotionItemView {
	byID := make(map[uint]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	views := make([]PromotionItemView, 0, len(items))
	for _, item := range items {
		view := PromotionItemView{
			ID:            item.ID,
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			OverridePrice: item.OverridePrice,
		}
		if item.ProductID != nil {
			view.Product = byID[*item.ProductID]
		}
		views = append(views, view)
	}
	return views
}
