package service

import (
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Shriii19/TaskFlow/internal/apperrors"
	"github.com/Shriii19/TaskFlow/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	duplicateErr := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}

	tests := []struct {
		name          string
		username      string
		email         string
		password      string
		role          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "a@x.com",
			password: "Secret123",
			role:     "team_member",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "missing username",
			username:      "   ",
			email:         "a@x.com",
			password:      "Secret123",
			role:          "team_member",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrIncompleteRequest,
		},
		{
			name:          "missing email",
			username:      "alice",
			email:         "",
			password:      "Secret123",
			role:          "team_member",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrIncompleteRequest,
		},
		{
			name:          "missing password",
			username:      "alice",
			email:         "a@x.com",
			password:      "",
			role:          "team_member",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrIncompleteRequest,
		},
		{
			name:          "missing role",
			username:      "alice",
			email:         "a@x.com",
			password:      "Secret123",
			role:          "",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrIncompleteRequest,
		},
		{
			name:          "unknown role rejected",
			username:      "alice",
			email:         "a@x.com",
			password:      "Secret123",
			role:          "superuser",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidRole,
		},
		{
			name:     "duplicate email",
			username: "alice",
			email:    "taken@x.com",
			password: "Secret123",
			role:     "team_member",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(duplicateErr)
			},
			expectedError: apperrors.ErrDuplicateCredential,
		},
		{
			name:     "store failure",
			username: "alice",
			email:    "a@x.com",
			password: "Secret123",
			role:     "team_member",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrInvalidDB)
			},
			expectedError: apperrors.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, nil)
			user, err := svc.Register(context.Background(), tt.username, tt.email, tt.password, tt.role)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
				// The stored hash must verify against the submitted plaintext.
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_StripsMarkup(t *testing.T) {
	mockRepo := new(MockUserRepository)
	var stored *model.User
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.User)
		}).
		Return(nil)

	svc := NewAuthService(mockRepo, nil)
	user, err := svc.Register(context.Background(), "<b>Bob</b>", "b@x.com", "Secret123", "team_member")

	assert.NoError(t, err)
	assert.Equal(t, "Bob", user.Username)
	assert.Equal(t, "Bob", stored.Username)
}

func TestAuthService_Register_NoWriteOnIncompleteInput(t *testing.T) {
	mockRepo := new(MockUserRepository)

	svc := NewAuthService(mockRepo, nil)
	_, err := svc.Register(context.Background(), "alice", "a@x.com", "", "team_member")

	assert.ErrorIs(t, err, apperrors.ErrIncompleteRequest)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.DefaultCost)
	existing := &model.User{
		ID:           7,
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: string(hash),
		Role:         model.RoleTeamMember,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "a@x.com",
			password: "Secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(existing, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "ghost@x.com",
			password: "Secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrAuthFailed,
		},
		{
			name:     "wrong password",
			email:    "a@x.com",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(existing, nil)
			},
			expectedError: apperrors.ErrAuthFailed,
		},
		{
			name:          "missing email",
			email:         "",
			password:      "Secret123",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrIncompleteRequest,
		},
		{
			name:          "missing password",
			email:         "a@x.com",
			password:      "",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrIncompleteRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, nil)
			user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(7), user.ID)
				assert.Equal(t, "alice", user.Username)
				assert.Equal(t, model.RoleTeamMember, user.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Unknown-email and wrong-password failures must be indistinguishable.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.DefaultCost)
	existing := &model.User{Email: "a@x.com", PasswordHash: string(hash)}

	unknownRepo := new(MockUserRepository)
	unknownRepo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, gorm.ErrRecordNotFound)
	_, errUnknown := NewAuthService(unknownRepo, nil).Login(context.Background(), "ghost@x.com", "Secret123")

	wrongRepo := new(MockUserRepository)
	wrongRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(existing, nil)
	_, errWrong := NewAuthService(wrongRepo, nil).Login(context.Background(), "a@x.com", "wrong")

	assert.Equal(t, errUnknown, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

// fakeUserRepo is an in-memory repository used for round-trip coverage.
type fakeUserRepo struct {
	byEmail map[string]*model.User
	nextID  uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*model.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	}
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.byEmail[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(f.byEmail))
	for _, u := range f.byEmail {
		cp := *u
		cp.PasswordHash = ""
		out = append(out, cp)
	}
	return out, nil
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil)
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "a@x.com", "Secret123", "team_member")
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	user, err := svc.Login(ctx, "a@x.com", "Secret123")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, model.RoleTeamMember, user.Role)

	_, err = svc.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrAuthFailed)

	// A second registration of the same email hits the store's uniqueness
	// guarantee and surfaces the distinct duplicate error.
	_, err = svc.Register(ctx, "alice2", "a@x.com", "Other456", "team_member")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateCredential)
}
