package services

import "testing"

func TestGetStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db)
	projects := NewProjectService(db)
	engagement := NewEngagementService(db)
	reviews := NewReviewService(db)

	foo := createUser(t, db, "foo")
	bar := createUser(t, db, "bar")
	public := createProject(t, db, foo.ID, "Public", true)
	createProject(t, db, foo.ID, "Private", false)

	if _, err := engagement.ToggleStar(bar.ID, public.ID); err != nil {
		t.Fatalf("star failed: %v", err)
	}
	if _, err := reviews.Add(bar.ID, public.ID, "Nice"); err != nil {
		t.Fatalf("review failed: %v", err)
	}

	stats, err := svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.Users != 2 || stats.Projects != 2 || stats.PublicProjects != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.Reviews != 1 || stats.Stars != 1 {
		t.Fatalf("unexpected engagement counts: %+v", stats)
	}

	// Deleting a project shrinks the counters with it.
	if err := projects.Delete(foo.ID, public.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	stats, err = svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.Projects != 1 || stats.PublicProjects != 0 || stats.Stars != 0 || stats.Reviews != 0 {
		t.Fatalf("unexpected counts after delete: %+v", stats)
	}
}
