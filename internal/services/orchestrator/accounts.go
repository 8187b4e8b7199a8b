package orchestrator

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/accounts"
	"github.com/KirkDiggler/moodmeet/internal/services/sessions"
)

// SignUp registers an account; the caller must be logged out
func (s *service) SignUp(ctx context.Context, input *SignUpInput) (_ *models.PublicUser, err error) {
	ctx, end := s.start(ctx, "SignUp")
	defer end(&err)

	if err := s.sessions.AssertLoggedOut(ctx, &sessions.AssertLoggedOutInput{Token: input.Token}); err != nil {
		return nil, err
	}

	user, err := s.accounts.Create(ctx, &accounts.CreateInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}

	return user.Public(), nil
}

// LogIn checks credentials and opens a session
func (s *service) LogIn(ctx context.Context, input *LogInInput) (_ *LogInOutput, err error) {
	ctx, end := s.start(ctx, "LogIn")
	defer end(&err)

	if err := s.sessions.AssertLoggedOut(ctx, &sessions.AssertLoggedOutInput{Token: input.Token}); err != nil {
		return nil, err
	}

	user, err := s.accounts.Authenticate(ctx, &accounts.AuthenticateInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Start(ctx, &sessions.StartInput{UserID: user.ID})
	if err != nil {
		return nil, err
	}

	return &LogInOutput{
		Token: session.ID,
		User:  user.Public(),
	}, nil
}

// LogOut closes the caller's session
func (s *service) LogOut(ctx context.Context, input *SessionInput) (err error) {
	ctx, end := s.start(ctx, "LogOut")
	defer end(&err)

	return s.sessions.End(ctx, &sessions.EndInput{Token: input.Token})
}

// CurrentUser returns the caller's account
func (s *service) CurrentUser(ctx context.Context, input *SessionInput) (_ *models.PublicUser, err error) {
	ctx, end := s.start(ctx, "CurrentUser")
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	user, err := s.accounts.Get(ctx, &accounts.GetInput{UserID: userID})
	if err != nil {
		return nil, err
	}

	return user.Public(), nil
}

// GetUser looks an account up by username
func (s *service) GetUser(ctx context.Context, input *GetUserInput) (_ *models.PublicUser, err error) {
	ctx, end := s.start(ctx, "GetUser")
	defer end(&err)

	user, err := s.accounts.GetByUsername(ctx, &accounts.GetByUsernameInput{Username: input.Username})
	if err != nil {
		return nil, err
	}

	return user.Public(), nil
}

// ListUsers returns every account
func (s *service) ListUsers(ctx context.Context) (_ []*models.PublicUser, err error) {
	ctx, end := s.start(ctx, "ListUsers")
	defer end(&err)

	users, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	return publicUsers(users), nil
}

func (s *service) UpdateUsername(ctx context.Context, input *UpdateUsernameInput) (_ *models.PublicUser, err error) {
	ctx, end := s.start(ctx, "UpdateUsername")
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	user, err := s.accounts.UpdateUsername(ctx, &accounts.UpdateUsernameInput{
		UserID:   userID,
		Username: input.Username,
	})
	if err != nil {
		return nil, err
	}

	return user.Public(), nil
}

func (s *service) UpdatePassword(ctx context.Context, input *UpdatePasswordInput) (err error) {
	ctx, end := s.start(ctx, "UpdatePassword")
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return err
	}

	return s.accounts.UpdatePassword(ctx, &accounts.UpdatePasswordInput{
		UserID:          userID,
		CurrentPassword: input.CurrentPassword,
		NewPassword:     input.NewPassword,
	})
}

// DeleteAccount ends every session of the caller and then removes the
// account. Documents that reference the user are left in place.
func (s *service) DeleteAccount(ctx context.Context, input *SessionInput) (err error) {
	ctx, end := s.start(ctx, "DeleteAccount")
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return err
	}

	if _, err := s.sessions.EndAllForUser(ctx, &sessions.EndAllForUserInput{UserID: userID}); err != nil {
		return err
	}

	if err := s.accounts.Delete(ctx, &accounts.DeleteInput{UserID: userID}); err != nil {
		return err
	}

	s.publish(ctx, models.ActivityDeleteAccount, userID, "", "")
	return nil
}
