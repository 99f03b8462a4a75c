// file: internals/scheduler/lease_expiry.go
package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	leaseModel "propertyhub_backend/internals/features/property/leases/model"
	unitModel "propertyhub_backend/internals/features/property/units/model"

	"gorm.io/gorm"
)

// StartLeaseExpiryScheduler sweeps active leases whose end date has passed,
// marks them expired and vacates their units. Runs once per interval
// (LEASE_EXPIRY_SWEEP_HOURS, default 24).
func StartLeaseExpiryScheduler(db *gorm.DB) {
	go func() {
		sweepHours := 24
		if val := os.Getenv("LEASE_EXPIRY_SWEEP_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				sweepHours = parsed
			}
		}

		for {
			log.Println("[LEASE-SWEEP] Checking for expired leases...")

			now := time.Now().UTC()

			var expired []leaseModel.Lease
			if err := db.
				Where("lease_status = ? AND lease_end_date IS NOT NULL AND lease_end_date < ?", leaseModel.LeaseStatusActive, now).
				Limit(200).
				Find(&expired).Error; err != nil {
				log.Printf("[LEASE-SWEEP ERROR] Failed to fetch expired leases: %v", err)
			} else if len(expired) > 0 {
				for i := range expired {
					l := &expired[i]
					err := db.Transaction(func(tx *gorm.DB) error {
						if err := tx.Model(&leaseModel.Lease{}).
							Where("lease_id = ? AND lease_status = ?", l.LeaseID, leaseModel.LeaseStatusActive).
							Updates(map[string]interface{}{
								"lease_status":     leaseModel.LeaseStatusExpired,
								"lease_updated_at": now,
							}).Error; err != nil {
							return err
						}
						// free the unit unless another active lease already claimed it
						var claimed int64
						if err := tx.Model(&leaseModel.Lease{}).
							Where("lease_unit_id = ? AND lease_status = ?", l.LeaseUnitID, leaseModel.LeaseStatusActive).
							Count(&claimed).Error; err != nil {
							return err
						}
						if claimed == 0 {
							if err := tx.Model(&unitModel.Unit{}).
								Where("unit_id = ? AND unit_status = ?", l.LeaseUnitID, unitModel.UnitStatusOccupied).
								Updates(map[string]interface{}{
									"unit_status":     unitModel.UnitStatusVacant,
									"unit_updated_at": now,
								}).Error; err != nil {
								return err
							}
						}
						return nil
					})
					if err != nil {
						log.Printf("[LEASE-SWEEP ERROR] Failed to expire lease %s: %v", l.LeaseID, err)
					}
				}
				log.Printf("[LEASE-SWEEP] %d lease(s) marked expired", len(expired))
			} else {
				log.Println("[LEASE-SWEEP] No leases to expire")
			}

			time.Sleep(time.Duration(sweepHours) * time.Hour)
		}
	}()
}
