package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Dependents are soft deleted together with their parent. Join rows have no
// deleted_at, so links to a removed branch or service are dropped.

func branchIDsOf(tx *gorm.DB, userID string) *gorm.DB {
	return tx.Model(&models.Branch{}).Select("id").Where("user_id = ?", userID)
}

func serviceIDsOf(tx *gorm.DB, userID string) *gorm.DB {
	return tx.Model(&models.Service{}).Select("id").Where("user_id = ?", userID)
}

func cascadeUser(tx *gorm.DB, id string) error {
	if err := tx.Where("branch_id IN (?)", branchIDsOf(tx, id)).Delete(&models.Client{}).Error; err != nil {
		return fmt.Errorf("delete clients: %w", err)
	}

	if err := tx.Exec(
		"DELETE FROM branchs_services WHERE branch_id IN (?) OR service_id IN (?)",
		branchIDsOf(tx, id), serviceIDsOf(tx, id),
	).Error; err != nil {
		return fmt.Errorf("unlink services: %w", err)
	}

	for _, m := range []any{&models.Branch{}, &models.Service{}, &models.UserPhoto{}} {
		if err := tx.Where("user_id = ?", id).Delete(m).Error; err != nil {
			return fmt.Errorf("delete %T: %w", m, err)
		}
	}
	return nil
}

func cascadeBranch(tx *gorm.DB, id string) error {
	if err := tx.Where("branch_id = ?", id).Delete(&models.Client{}).Error; err != nil {
		return fmt.Errorf("delete clients: %w", err)
	}
	return tx.Exec("DELETE FROM branchs_services WHERE branch_id = ?", id).Error
}

func cascadeService(tx *gorm.DB, id string) error {
	return tx.Exec("DELETE FROM branchs_services WHERE service_id = ?", id).Error
}
