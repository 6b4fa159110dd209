package services

import (
	"net/http"
	"testing"
)

func TestToggleStar_StarThenUnstar(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	foo := createUser(t, db, "foo")
	bar := createUser(t, db, "bar")
	project := createProject(t, db, foo.ID, "Portfolio Site", true)

	result, err := svc.ToggleStar(bar.ID, project.ID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !result.Starred || result.Count != 1 {
		t.Fatalf("unexpected star result: %+v", result)
	}

	result, err = svc.ToggleStar(bar.ID, project.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if result.Starred || result.Count != 0 {
		t.Fatalf("unexpected unstar result: %+v", result)
	}
}

func TestToggleStar_OwnerMayStarOwnProject(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	foo := createUser(t, db, "foo")
	project := createProject(t, db, foo.ID, "Portfolio Site", true)

	result, err := svc.ToggleStar(foo.ID, project.ID)
	if err != nil {
		t.Fatalf("owner star failed: %v", err)
	}
	if !result.Starred || result.Count != 1 {
		t.Fatalf("unexpected star result: %+v", result)
	}
}

func TestToggleStar_PrivateProject(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	foo := createUser(t, db, "foo")
	bar := createUser(t, db, "bar")
	project := createProject(t, db, foo.ID, "Secret Project", false)

	_, err := svc.ToggleStar(bar.ID, project.ID)
	assertAppError(t, err, http.StatusForbidden)

	count, err := svc.StarCount(project.ID)
	if err != nil {
		t.Fatalf("StarCount failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected zero stars on private project, got %d", count)
	}

	// The owner can still star it.
	result, err := svc.ToggleStar(foo.ID, project.ID)
	if err != nil {
		t.Fatalf("owner star failed: %v", err)
	}
	if !result.Starred {
		t.Fatalf("unexpected star result: %+v", result)
	}
}

func TestToggleStar_ProjectNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	foo := createUser(t, db, "foo")

	_, err := svc.ToggleStar(foo.ID, 9999)
	assertAppError(t, err, http.StatusNotFound)
}

func TestRecordView_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	foo := createUser(t, db, "foo")
	bar := createUser(t, db, "bar")
	project := createProject(t, db, foo.ID, "Portfolio Site", true)

	for i := 0; i < 3; i++ {
		if err := svc.RecordView(bar.ID, project); err != nil {
			t.Fatalf("RecordView %d failed: %v", i, err)
		}
	}

	count, err := svc.ViewerCount(project.ID)
	if err != nil {
		t.Fatalf("ViewerCount failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 viewer after repeated views, got %d", count)
	}
}

func TestRecordView_OwnerNeverRecorded(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	foo := createUser(t, db, "foo")
	project := createProject(t, db, foo.ID, "Portfolio Site", true)

	if err := svc.RecordView(foo.ID, project); err != nil {
		t.Fatalf("RecordView failed: %v", err)
	}

	count, err := svc.ViewerCount(project.ID)
	if err != nil {
		t.Fatalf("ViewerCount failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected owner view to be ignored, got %d viewers", count)
	}
}

func TestRecordView_AnonymousAndBlockedActors(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	foo := createUser(t, db, "foo")
	bar := createUser(t, db, "bar")
	private := createProject(t, db, foo.ID, "Secret Project", false)

	if err := svc.RecordView(0, private); err != nil {
		t.Fatalf("anonymous RecordView failed: %v", err)
	}
	if err := svc.RecordView(bar.ID, private); err != nil {
		t.Fatalf("blocked RecordView failed: %v", err)
	}

	count, err := svc.ViewerCount(private.ID)
	if err != nil {
		t.Fatalf("ViewerCount failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no viewers recorded, got %d", count)
	}
}

func TestHasStarred(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	foo := createUser(t, db, "foo")
	bar := createUser(t, db, "bar")
	project := createProject(t, db, foo.ID, "Portfolio Site", true)

	if _, err := svc.ToggleStar(bar.ID, project.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	starred, err := svc.HasStarred(bar.ID, project.ID)
	if err != nil {
		t.Fatalf("HasStarred failed: %v", err)
	}
	if !starred {
		t.Fatal("expected bar to have starred the project")
	}

	starred, err = svc.HasStarred(foo.ID, project.ID)
	if err != nil {
		t.Fatalf("HasStarred failed: %v", err)
	}
	if starred {
		t.Fatal("expected foo not to have starred the project")
	}
}
