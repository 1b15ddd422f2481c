package domain

import "testing"

func TestCanCreateBook(t *testing.T) {
	admin := &User{ID: "a1", Role: RoleAdmin}
	user := &User{ID: "u1", Role: RoleUser}

	if !CanCreateBook(admin) {
		t.Fatalf("admin should be allowed to create books")
	}
	if CanCreateBook(user) {
		t.Fatalf("regular user should not be allowed to create books")
	}
	if CanCreateBook(nil) {
		t.Fatalf("nil actor should not be allowed to create books")
	}
}

func TestCanModifyBook(t *testing.T) {
	if !CanModifyBook(&User{ID: "a1", Role: RoleAdmin}) {
		t.Fatalf("admin should be allowed to modify books")
	}
	if CanModifyBook(&User{ID: "u1", Role: RoleUser}) {
		t.Fatalf("regular user should not be allowed to modify books")
	}
}

func TestCanCreateReview(t *testing.T) {
	actor := &User{ID: "u1", Role: RoleUser}
	book := &Book{ID: "b1"}

	if !CanCreateReview(actor, book) {
		t.Fatalf("authenticated user should be allowed to review an existing book")
	}
	if CanCreateReview(actor, nil) {
		t.Fatalf("reviewing an absent book should be denied")
	}
	if CanCreateReview(nil, book) {
		t.Fatalf("nil actor should be denied")
	}
}

func TestCanModifyReview_OwnerOnly(t *testing.T) {
	owner := &User{ID: "u1", Role: RoleUser}
	other := &User{ID: "u2", Role: RoleUser}
	admin := &User{ID: "a1", Role: RoleAdmin}
	review := &Review{ID: "r1", UserID: "u1"}

	if !CanModifyReview(owner, review) {
		t.Fatalf("owner should be allowed to modify own review")
	}
	if CanModifyReview(other, review) {
		t.Fatalf("non-owner should not be allowed to modify review")
	}
	// Admin does not bypass ownership on update, only on delete.
	if CanModifyReview(admin, review) {
		t.Fatalf("admin should not bypass ownership on modify")
	}
}

func TestCanDeleteReview_OwnerOrAdmin(t *testing.T) {
	owner := &User{ID: "u1", Role: RoleUser}
	other := &User{ID: "u2", Role: RoleUser}
	admin := &User{ID: "a1", Role: RoleAdmin}
	review := &Review{ID: "r1", UserID: "u1"}

	if !CanDeleteReview(owner, review) {
		t.Fatalf("owner should be allowed to delete own review")
	}
	if !CanDeleteReview(admin, review) {
		t.Fatalf("admin should be allowed to delete any review")
	}
	if CanDeleteReview(other, review) {
		t.Fatalf("non-owner non-admin should not be allowed to delete review")
	}
	if CanDeleteReview(nil, review) {
		t.Fatalf("nil actor should be denied")
	}
}
