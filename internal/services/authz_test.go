package services

import (
	"testing"

	"github.com/devfolio/devfolio/internal/models"
)

func TestCanView(t *testing.T) {
	public := &models.Project{OwnerID: 1, IsPublic: true}
	private := &models.Project{OwnerID: 1, IsPublic: false}

	tests := []struct {
		name    string
		actorID uint
		project *models.Project
		want    bool
	}{
		{"anonymous sees public", 0, public, true},
		{"stranger sees public", 2, public, true},
		{"owner sees public", 1, public, true},
		{"anonymous blocked from private", 0, private, false},
		{"stranger blocked from private", 2, private, false},
		{"owner sees private", 1, private, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanView(tt.actorID, tt.project); got != tt.want {
				t.Fatalf("CanView(%d) = %v, want %v", tt.actorID, got, tt.want)
			}
		})
	}
}

func TestCanMutate(t *testing.T) {
	project := &models.Project{OwnerID: 1, IsPublic: true}

	if !CanMutate(1, project) {
		t.Fatal("owner should be able to mutate")
	}
	if CanMutate(2, project) {
		t.Fatal("non-owner should not be able to mutate")
	}
	if CanMutate(0, project) {
		t.Fatal("anonymous actor should not be able to mutate")
	}
}
