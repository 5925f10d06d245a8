package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	userDomain "whitecoat-backend/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

// UpsertPhysicianProfile inserts or refreshes the per-user intake snapshot.
func (r *UserRepository) UpsertPhysicianProfile(ctx context.Context, p *userDomain.PhysicianProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_ref"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"degree", "specialty", "years_in_practice",
				"estimated_income", "medical_school_debt", "updated_at",
			}),
		}).
		Create(p).Error
}
