package services

import "github.com/devfolio/devfolio/internal/models"

// CanView reports whether the actor may open a project's detail view.
// Private projects are visible to their owner only. actorID 0 means
// unauthenticated.
func CanView(actorID uint, project *models.Project) bool {
	return project.IsPublic || actorID == project.OwnerID
}

// CanMutate reports whether the actor may update, delete, or change the
// visibility of a project. Only the owner may mutate.
func CanMutate(actorID uint, project *models.Project) bool {
	return actorID == project.OwnerID
}
