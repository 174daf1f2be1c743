package service

import (
	"context"
	stderrors "errors"
	"testing"

	"go.uber.org/zap"
)

func TestGetMeIncludesRoleProfile(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(f.repo, zap.NewNop())

	me, err := svc.GetMe(context.Background(), f.professorUser.UserID)
	if err != nil {
		t.Fatalf("GetMe: %v", err)
	}
	if me.Professor == nil {
		t.Fatal("professor profile missing")
	}
	if me.Professor.ID != f.professor.ProfessorID {
		t.Errorf("professor id = %q, want %q", me.Professor.ID, f.professor.ProfessorID)
	}
	if me.Student != nil || me.Institution != nil {
		t.Errorf("unexpected extra profiles attached")
	}
}

func TestGetMeUnknownUser(t *testing.T) {
	f := newFixture(t)
	svc := NewUserService(f.repo, zap.NewNop())

	_, err := svc.GetMe(context.Background(), "no-such-user")
	if !stderrors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
