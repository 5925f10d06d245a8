package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appDomain "whitecoat-backend/internal/domain/application"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts the application together with its proposals (gorm cascades
// the association in one statement batch inside the ambient transaction).
func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.FundingApplication) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.FundingApplication) error {
	return r.db.WithContext(ctx).Omit("Proposals").Save(a).Error
}

func (r *ApplicationRepository) SaveProposals(ctx context.Context, proposals []appDomain.Proposal) error {
	for i := range proposals {
		if err := r.db.WithContext(ctx).Save(&proposals[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.FundingApplication, error) {
	var out appDomain.FundingApplication
	res := r.db.WithContext(ctx).
		Preload("Proposals").
		Where("application_id = ?", applicationID).
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*appDomain.FundingApplication, error) {
	var out appDomain.FundingApplication
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_id = ?", applicationID).
		First(&out)
	if res.Error != nil {
		return &out, res.Error
	}
	// Preload cannot ride along with FOR UPDATE on all drivers; fetch the
	// proposals with a second query inside the same transaction.
	err := r.db.WithContext(ctx).
		Where("application_ref = ?", out.ID).
		Order("id ASC").
		Find(&out.Proposals).Error
	return &out, err
}

func (r *ApplicationRepository) ListByPhysician(ctx context.Context, physicianID string) ([]appDomain.FundingApplication, error) {
	var out []appDomain.FundingApplication
	res := r.db.WithContext(ctx).
		Preload("Proposals").
		Where("physician_id = ?", physicianID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
