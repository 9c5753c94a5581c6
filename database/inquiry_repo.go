package database

import (
	"strings"

	"gorm.io/gorm"

	"github.com/kaushalendrasingh/portfolio-backend/models"
)

type InquiryRepo struct {
	db *gorm.DB
}

func NewInquiryRepo(db *gorm.DB) *InquiryRepo {
	return &InquiryRepo{db}
}

// Add inserts a new inquiry. Inquiries are immutable once created.
func (r *InquiryRepo) Add(inquiry *models.Inquiry) error {
	return r.db.Create(inquiry).Error
}

// Search returns one page of inquiries ordered by creation time descending,
// along with the total match count irrespective of paging. A non-empty search
// term matches name, email, company, or message case-insensitively.
func (r *InquiryRepo) Search(search string, page, pageSize int) ([]models.Inquiry, int64, error) {
	query := func() *gorm.DB {
		q := r.db.Model(&models.Inquiry{})
		if search != "" {
			// lower(...) LIKE keeps the predicate portable across
			// postgres and sqlite.
			like := "%" + strings.ToLower(search) + "%"
			q = q.Where(
				"lower(name) LIKE ? OR lower(email) LIKE ? OR lower(company) LIKE ? OR lower(message) LIKE ?",
				like, like, like, like,
			)
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]models.Inquiry, 0, pageSize)
	err := query().
		Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
