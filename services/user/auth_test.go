package user

import (
	"testing"

	"lokseva/config"
	"lokseva/database/repository/mocks"
	"lokseva/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, repo *mocks.MockUserRepository, notifier *mocks.MockNotificationService) (*DefaultUserService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	config.AppConfig.SessionTTLHours = 24
	return &DefaultUserService{
		Repo:     repo,
		Sessions: client,
		OTPStore: client,
		Notifier: notifier,
	}, mr
}

func validRegister() models.RegisterInput {
	return models.RegisterInput{
		Name:     "Ravi Kumar",
		Email:    "ravi@gmail.com",
		Phone:    "9876543210",
		Password: "s3cret!pass",
		Role:     models.RoleUser,
	}
}

func TestRegister_Success(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	notifier := new(mocks.MockNotificationService)
	service, _ := newTestService(t, repo, notifier)

	repo.On("GetByEmail", "ravi@gmail.com").Return(nil, nil)
	repo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Run(func(args mock.Arguments) {
		account := args.Get(0).(*models.User)
		assert.False(t, account.IsVerified)
		assert.Equal(t, models.StatusActive, account.Status)
		assert.NotEqual(t, "s3cret!pass", account.PasswordHash)
	})
	notifier.On("SendOTPEmail", "ravi@gmail.com", mock.AnythingOfType("string")).Return(nil)

	err := service.Register(validRegister())

	assert.NoError(t, err)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRegister_InputValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.RegisterInput)
		want   string
	}{
		{"missing name", func(in *models.RegisterInput) { in.Name = "" }, "All fields are required."},
		{"non gmail", func(in *models.RegisterInput) { in.Email = "ravi@example.com" }, "Only @gmail.com emails allowed."},
		{"short phone", func(in *models.RegisterInput) { in.Phone = "12345" }, "Phone must be 10 digits."},
		{"alpha phone", func(in *models.RegisterInput) { in.Phone = "98765abcde" }, "Phone must be 10 digits."},
		{"weak password", func(in *models.RegisterInput) { in.Password = "password" }, "Password needs 8+ chars, number & special char."},
		{"short password", func(in *models.RegisterInput) { in.Password = "a1!" }, "Password needs 8+ chars, number & special char."},
		{"bad role", func(in *models.RegisterInput) { in.Role = "admin" }, "Role must be user or provider."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mocks.MockUserRepository)
			service, _ := newTestService(t, repo, new(mocks.MockNotificationService))

			in := validRegister()
			tc.mutate(&in)
			err := service.Register(in)

			var ae AuthError
			assert.ErrorAs(t, err, &ae)
			assert.Equal(t, tc.want, ae.Msg)
			repo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestRegister_AlreadyVerified(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	service, _ := newTestService(t, repo, new(mocks.MockNotificationService))

	repo.On("GetByEmail", "ravi@gmail.com").Return(&models.User{ID: "U1", IsVerified: true}, nil)

	err := service.Register(validRegister())

	var ae AuthError
	assert.ErrorAs(t, err, &ae)
	assert.Equal(t, "Email already registered. Please login.", ae.Msg)
}

func TestRegister_UnverifiedAccountIsReplaced(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	notifier := new(mocks.MockNotificationService)
	service, _ := newTestService(t, repo, notifier)

	repo.On("GetByEmail", "ravi@gmail.com").Return(&models.User{ID: "U1", IsVerified: false}, nil)
	repo.On("UpdateSetDocument", "U1", mock.Anything).Return(nil)
	notifier.On("SendOTPEmail", "ravi@gmail.com", mock.Anything).Return(nil)

	err := service.Register(validRegister())

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything)
	repo.AssertExpectations(t)
}

func TestVerifyOTP_Success(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	service, mr := newTestService(t, repo, new(mocks.MockNotificationService))

	mr.Set("otp:ravi@gmail.com", "123456")
	repo.On("GetByEmail", "ravi@gmail.com").Return(&models.User{ID: "U1", Role: models.RoleProvider}, nil)
	repo.On("UpdateSetDocument", "U1", bson.M{"isVerified": true}).Return(nil)

	role, err := service.VerifyOTP("ravi@gmail.com", "123456")

	assert.NoError(t, err)
	assert.Equal(t, models.RoleProvider, role)
	// The code is single-use.
	assert.False(t, mr.Exists("otp:ravi@gmail.com"))
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	service, mr := newTestService(t, repo, new(mocks.MockNotificationService))

	mr.Set("otp:ravi@gmail.com", "123456")
	repo.On("GetByEmail", "ravi@gmail.com").Return(&models.User{ID: "U1"}, nil)

	_, err := service.VerifyOTP("ravi@gmail.com", "999999")

	var ae AuthError
	assert.ErrorAs(t, err, &ae)
	repo.AssertNotCalled(t, "UpdateSetDocument", mock.Anything, mock.Anything)
}

func TestVerifyOTP_UnknownEmail(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	service, _ := newTestService(t, repo, new(mocks.MockNotificationService))

	repo.On("GetByEmail", "ghost@gmail.com").Return(nil, nil)

	_, err := service.VerifyOTP("ghost@gmail.com", "123456")

	var ae AuthError
	assert.ErrorAs(t, err, &ae)
	assert.Equal(t, "User not found.", ae.Msg)
}

func TestResendOTP(t *testing.T) {
	t.Run("unverified account gets a new code", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		notifier := new(mocks.MockNotificationService)
		service, _ := newTestService(t, repo, notifier)

		repo.On("GetByEmail", "ravi@gmail.com").Return(&models.User{ID: "U1", IsVerified: false}, nil)
		notifier.On("SendOTPEmail", "ravi@gmail.com", mock.Anything).Return(nil)

		assert.NoError(t, service.ResendOTP("ravi@gmail.com"))
		notifier.AssertExpectations(t)
	})

	t.Run("already verified", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		service, _ := newTestService(t, repo, new(mocks.MockNotificationService))

		repo.On("GetByEmail", "ravi@gmail.com").Return(&models.User{ID: "U1", IsVerified: true}, nil)

		err := service.ResendOTP("ravi@gmail.com")
		var ae AuthError
		assert.ErrorAs(t, err, &ae)
		assert.Equal(t, "Already verified.", ae.Msg)
	})
}

func verifiedAccount(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return &models.User{
		ID:           "U1",
		Name:         "Ravi Kumar",
		Email:        "ravi@gmail.com",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		Status:       models.StatusActive,
		IsVerified:   true,
	}
}

func TestLogin_Success(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	service, _ := newTestService(t, repo, new(mocks.MockNotificationService))

	repo.On("GetByEmail", "ravi@gmail.com").Return(verifiedAccount(t, "s3cret!pass"), nil)

	auth, err := service.Login(models.LoginInput{Email: "ravi@gmail.com", Password: "s3cret!pass", Role: models.RoleUser})

	assert.NoError(t, err)
	assert.Equal(t, "U1", auth.UserID)
	assert.NotEmpty(t, auth.Token)

	// The token must resolve back to the account.
	session, err := service.SessionInfo(auth.Token)
	assert.NoError(t, err)
	if assert.NotNil(t, session) {
		assert.Equal(t, "U1", session.UserID)
		assert.Equal(t, models.RoleUser, session.Role)
	}
}

func TestLogin_Failures(t *testing.T) {
	cases := []struct {
		name    string
		account *models.User
		input   models.LoginInput
		want    string
	}{
		{
			"unknown email",
			nil,
			models.LoginInput{Email: "ravi@gmail.com", Password: "x", Role: models.RoleUser},
			"Email not registered.",
		},
		{
			"role mismatch",
			&models.User{Role: models.RoleUser, IsVerified: true, Status: models.StatusActive},
			models.LoginInput{Email: "ravi@gmail.com", Password: "x", Role: models.RoleProvider},
			"No provider account found.",
		},
		{
			"unverified",
			&models.User{Role: models.RoleUser, IsVerified: false, Status: models.StatusActive},
			models.LoginInput{Email: "ravi@gmail.com", Password: "x", Role: models.RoleUser},
			"Please verify your email first.",
		},
		{
			"blocked",
			&models.User{Role: models.RoleUser, IsVerified: true, Status: models.StatusBlocked},
			models.LoginInput{Email: "ravi@gmail.com", Password: "x", Role: models.RoleUser},
			"Your account has been blocked. Contact admin.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mocks.MockUserRepository)
			service, _ := newTestService(t, repo, new(mocks.MockNotificationService))

			if tc.account == nil {
				repo.On("GetByEmail", tc.input.Email).Return(nil, nil)
			} else {
				repo.On("GetByEmail", tc.input.Email).Return(tc.account, nil)
			}

			auth, err := service.Login(tc.input)

			assert.Nil(t, auth)
			var ae AuthError
			assert.ErrorAs(t, err, &ae)
			assert.Equal(t, tc.want, ae.Msg)
		})
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	service, _ := newTestService(t, repo, new(mocks.MockNotificationService))

	repo.On("GetByEmail", "ravi@gmail.com").Return(verifiedAccount(t, "s3cret!pass"), nil)

	auth, err := service.Login(models.LoginInput{Email: "ravi@gmail.com", Password: "wrong", Role: models.RoleUser})

	assert.Nil(t, auth)
	var ae AuthError
	assert.ErrorAs(t, err, &ae)
	assert.Equal(t, "Incorrect password.", ae.Msg)
}

func TestLogout_DestroysSession(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	service, _ := newTestService(t, repo, new(mocks.MockNotificationService))

	repo.On("GetByEmail", "ravi@gmail.com").Return(verifiedAccount(t, "s3cret!pass"), nil)

	auth, err := service.Login(models.LoginInput{Email: "ravi@gmail.com", Password: "s3cret!pass", Role: models.RoleUser})
	assert.NoError(t, err)

	assert.NoError(t, service.Logout(auth.Token))

	session, err := service.SessionInfo(auth.Token)
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionInfo_EmptyToken(t *testing.T) {
	service, _ := newTestService(t, new(mocks.MockUserRepository), new(mocks.MockNotificationService))

	session, err := service.SessionInfo("")

	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestSetUserStatus(t *testing.T) {
	t.Run("block", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		service, _ := newTestService(t, repo, new(mocks.MockNotificationService))

		repo.On("UpdateSetDocument", "U1", mock.Anything).Return(nil)
		repo.On("GetByID", "U1").Return(&models.User{ID: "U1", Status: models.StatusBlocked}, nil)

		updated, err := service.SetUserStatus("U1", models.StatusBlocked)

		assert.NoError(t, err)
		assert.Equal(t, models.StatusBlocked, updated.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		service, _ := newTestService(t, repo, new(mocks.MockNotificationService))

		_, err := service.SetUserStatus("U1", "suspended")

		var ae AuthError
		assert.ErrorAs(t, err, &ae)
		repo.AssertNotCalled(t, "UpdateSetDocument", mock.Anything, mock.Anything)
	})
}
