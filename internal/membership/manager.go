// Package membership maintains the Project<->User and Task<->User join
// relations. All multi-step mutations run inside a single transaction so a
// crash cannot leave partial state behind.
package membership

import (
	"errors"

	"gorm.io/gorm"

	"github.com/taskhive/taskhive/db"
	"github.com/taskhive/taskhive/internal/models"
	"github.com/taskhive/taskhive/internal/types"
)

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	result := make([]uint, 0, len(ids))

	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}

	return result
}

func projectExists(tx *gorm.DB, projectID uint) error {
	var project models.Project

	if err := tx.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.ErrNotFound
		}
		return err
	}

	return nil
}

func usersExist(tx *gorm.DB, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}

	var count int64

	if err := tx.Model(&models.User{}).Where("id IN ?", userIDs).Count(&count).Error; err != nil {
		return err
	}

	if count != int64(len(userIDs)) {
		return types.ErrNotFound
	}

	return nil
}

// SetProjectMembers replaces the full member set of a project. Existing
// memberships are cleared before the given users are inserted, duplicates
// in the input collapse to one row per user.
func SetProjectMembers(projectID uint, userIDs []uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := projectExists(tx, projectID); err != nil {
			return err
		}

		ids := uniqueIDs(userIDs)

		if err := usersExist(tx, ids); err != nil {
			return err
		}

		if err := tx.Unscoped().Where("project_id = ?", projectID).Delete(&models.ProjectMembership{}).Error; err != nil {
			return err
		}

		for _, userID := range ids {
			membership := models.ProjectMembership{UserID: userID, ProjectID: projectID}

			if err := tx.Create(&membership).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// AddUserToProject inserts a single membership. Membership is a set, so
// adding an existing member is a no-op.
func AddUserToProject(projectID uint, userID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := projectExists(tx, projectID); err != nil {
			return err
		}

		if err := usersExist(tx, []uint{userID}); err != nil {
			return err
		}

		var existing models.ProjectMembership

		err := tx.Where("project_id = ? AND user_id = ?", projectID, userID).First(&existing).Error

		if err == nil {
			return nil
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		membership := models.ProjectMembership{UserID: userID, ProjectID: projectID}
		return tx.Create(&membership).Error
	})
}

// DeleteProject removes a project together with its memberships, tasks and
// task assignments, in dependency order.
func DeleteProject(projectID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var project models.Project

		if err := tx.First(&project, projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return err
		}

		var taskIDs []uint

		if err := tx.Model(&models.Task{}).Where("project_id = ?", projectID).Pluck("id", &taskIDs).Error; err != nil {
			return err
		}

		if len(taskIDs) > 0 {
			if err := tx.Unscoped().Where("task_id IN ?", taskIDs).Delete(&models.TaskAssignment{}).Error; err != nil {
				return err
			}

			if err := tx.Unscoped().Where("project_id = ?", projectID).Delete(&models.Task{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Unscoped().Where("project_id = ?", projectID).Delete(&models.ProjectMembership{}).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&project).Error
	})
}

// DeleteTask removes a task and its assignments.
func DeleteTask(taskID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var task models.Task

		if err := tx.First(&task, taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return err
		}

		if err := tx.Unscoped().Where("task_id = ?", taskID).Delete(&models.TaskAssignment{}).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&task).Error
	})
}

// SetTaskAssignees replaces the full assignee set of a task, with the same
// semantics as SetProjectMembers.
func SetTaskAssignees(taskID uint, userIDs []uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		return SetTaskAssigneesTx(tx, taskID, userIDs)
	})
}

// SetTaskAssigneesTx is SetTaskAssignees running on the caller's
// transaction, so task creation and assignment commit or roll back as one.
func SetTaskAssigneesTx(tx *gorm.DB, taskID uint, userIDs []uint) error {
	var task models.Task

	if err := tx.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.ErrNotFound
		}
		return err
	}

	ids := uniqueIDs(userIDs)

	if err := usersExist(tx, ids); err != nil {
		return err
	}

	if err := tx.Unscoped().Where("task_id = ?", taskID).Delete(&models.TaskAssignment{}).Error; err != nil {
		return err
	}

	for _, userID := range ids {
		assignment := models.TaskAssignment{UserID: userID, TaskID: taskID}

		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}
	}

	return nil
}
